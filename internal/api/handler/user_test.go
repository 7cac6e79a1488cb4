package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/kol-manager-api/internal/domain"
	"github.com/vfg2006/kol-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/kol-manager-api/pkg/apiErrors"
)

func TestGetUserHandler(t *testing.T) {
	params := httprouter.Params{{Key: "id", Value: "7"}}

	t.Run("Usuário encontrado", func(t *testing.T) {
		service := newMockAuthenticator(t)
		service.EXPECT().GetUserProfile(7).Return(&domain.User{ID: 7, Name: "Maria"}, nil)

		recorder := httptest.NewRecorder()
		req := authRequest(http.MethodGet, "/v1/users/7", "", nil, params)

		GetUser(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"name":"Maria"`)
	})

	t.Run("Usuário inexistente retorna 404", func(t *testing.T) {
		service := newMockAuthenticator(t)
		service.EXPECT().GetUserProfile(7).Return(nil, nil)

		recorder := httptest.NewRecorder()
		req := authRequest(http.MethodGet, "/v1/users/7", "", nil, params)

		GetUser(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, apiErrors.ErrUserNotFound, decodeAPIError(t, recorder).Code)
	})

	t.Run("ID não numérico", func(t *testing.T) {
		service := newMockAuthenticator(t)

		recorder := httptest.NewRecorder()
		req := authRequest(http.MethodGet, "/v1/users/abc", "", nil,
			httprouter.Params{{Key: "id", Value: "abc"}})

		GetUser(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, recorder).Code)
	})
}

func TestCreateUserHandler(t *testing.T) {
	body := `{"name":"Maria","lastname":"Silva","email":"maria@empresa.com","password":"Senha@123"}`

	tests := []struct {
		name         string
		serviceErr   error
		expectedCode int
		expectedErr  string
	}{
		{
			name:         "Usuário criado com sucesso",
			serviceErr:   nil,
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Email já cadastrado",
			serviceErr:   authenticating.NewAuthError(authenticating.ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "maria@empresa.com"),
			expectedCode: http.StatusBadRequest,
			expectedErr:  apiErrors.ErrUserAlreadyExists,
		},
		{
			name:         "Dados obrigatórios ausentes",
			serviceErr:   authenticating.ErrMissingRequiredData,
			expectedCode: http.StatusBadRequest,
			expectedErr:  apiErrors.ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newMockAuthenticator(t)
			call := service.EXPECT().CreateUser(gomock.Any())
			if tt.serviceErr != nil {
				call.Return(nil, tt.serviceErr)
			} else {
				call.Return(&domain.User{ID: 10, Name: "Maria"}, nil)
			}

			recorder := httptest.NewRecorder()
			req := authRequest(http.MethodPost, "/v1/users", body, nil, nil)

			CreateUser(service).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedCode, recorder.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decodeAPIError(t, recorder).Code)
			}
		})
	}
}

func TestUpdateUserHandler(t *testing.T) {
	params := httprouter.Params{{Key: "id", Value: "7"}}

	t.Run("Usuário edita o próprio perfil", func(t *testing.T) {
		service := newMockAuthenticator(t)
		service.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(req *domain.UpdateUserRequest) error {
			assert.Equal(t, 7, req.ID)
			assert.Equal(t, "Maria", *req.Name)
			return nil
		})

		recorder := httptest.NewRecorder()
		req := authRequest(http.MethodPatch, "/v1/users/7", `{"name":"Maria"}`,
			&domain.Claims{UserID: 7, UserRoleID: domain.RoleOperator}, params)

		UpdateUser(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Operador não edita terceiros", func(t *testing.T) {
		service := newMockAuthenticator(t)

		recorder := httptest.NewRecorder()
		req := authRequest(http.MethodPatch, "/v1/users/7", `{"name":"Maria"}`,
			&domain.Claims{UserID: 9, UserRoleID: domain.RoleOperator}, params)

		UpdateUser(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeAPIError(t, recorder).Code)
	})

	t.Run("Operador não altera o próprio papel", func(t *testing.T) {
		service := newMockAuthenticator(t)

		recorder := httptest.NewRecorder()
		req := authRequest(http.MethodPatch, "/v1/users/7", `{"role_id":1}`,
			&domain.Claims{UserID: 7, UserRoleID: domain.RoleOperator}, params)

		UpdateUser(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeAPIError(t, recorder).Code)
	})

	t.Run("Administrador altera o papel de terceiros", func(t *testing.T) {
		service := newMockAuthenticator(t)
		service.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(req *domain.UpdateUserRequest) error {
			assert.Equal(t, 7, req.ID)
			assert.Equal(t, domain.RoleAdmin, *req.RoleID)
			return nil
		})

		recorder := httptest.NewRecorder()
		req := authRequest(http.MethodPatch, "/v1/users/7", `{"role_id":1}`,
			&domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}, params)

		UpdateUser(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
