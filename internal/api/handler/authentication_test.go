package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/kol-manager-api/internal/domain"
	"github.com/vfg2006/kol-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/kol-manager-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/kol-manager-api/pkg/apiErrors"
	"github.com/vfg2006/kol-manager-api/pkg/middleware"
)

func newMockAuthenticator(t *testing.T) *mocks.MockAuthenticator {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return mocks.NewMockAuthenticator(ctrl)
}

// authRequest monta uma requisição com claims e parâmetros de rota no contexto
func authRequest(method, target, body string, claims *domain.Claims, params httprouter.Params) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))

	ctx := req.Context()
	if claims != nil {
		ctx = context.WithValue(ctx, middleware.ContextKeyUser, claims)
	}
	if params != nil {
		ctx = context.WithValue(ctx, httprouter.ParamsKey, params)
	}

	return req.WithContext(ctx)
}

func decodeAPIError(t *testing.T, recorder *httptest.ResponseRecorder) apiErrors.APIError {
	var apiErr apiErrors.APIError
	assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
	return apiErr
}

func TestLoginHandler(t *testing.T) {
	t.Run("Credenciais válidas - retorna o token", func(t *testing.T) {
		service := newMockAuthenticator(t)
		service.EXPECT().LoginUser("maria@empresa.com", "Senha@123").Return("token-jwt", nil)

		recorder := httptest.NewRecorder()
		req := authRequest(http.MethodPost, "/v1/login", `{"email":"maria@empresa.com","password":"Senha@123"}`, nil, nil)

		Login(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp LoginResponse
		assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "token-jwt", resp.Token)
	})

	t.Run("Senha incorreta - código de credenciais inválidas", func(t *testing.T) {
		service := newMockAuthenticator(t)
		service.EXPECT().LoginUser("maria@empresa.com", "errada").Return("",
			authenticating.NewUserAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, 7, "Senha incorreta"))

		recorder := httptest.NewRecorder()
		req := authRequest(http.MethodPost, "/v1/login", `{"email":"maria@empresa.com","password":"errada"}`, nil, nil)

		Login(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeAPIError(t, recorder).Code)
	})

	t.Run("Corpo inválido", func(t *testing.T) {
		service := newMockAuthenticator(t)

		recorder := httptest.NewRecorder()
		req := authRequest(http.MethodPost, "/v1/login", `{invalido`, nil, nil)

		Login(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, recorder).Code)
	})
}

func TestChangePasswordHandler(t *testing.T) {
	claims := &domain.Claims{UserID: 7, UserRoleID: domain.RoleOperator}
	params := httprouter.Params{{Key: "id", Value: "7"}}

	tests := []struct {
		name         string
		serviceErr   error
		expectedCode int
		expectedErr  string
	}{
		{
			name:         "Senha alterada com sucesso",
			serviceErr:   nil,
			expectedCode: http.StatusOK,
		},
		{
			name:         "Senha atual incorreta",
			serviceErr:   authenticating.ErrCurrentPasswordMismatch,
			expectedCode: http.StatusUnauthorized,
			expectedErr:  apiErrors.ErrInvalidCredentials,
		},
		{
			name:         "Nova senha fraca",
			serviceErr:   authenticating.ErrWeakPassword,
			expectedCode: http.StatusBadRequest,
			expectedErr:  apiErrors.ErrInvalidFormat,
		},
		{
			name:         "Usuário não encontrado",
			serviceErr:   authenticating.ErrUserNotFound,
			expectedCode: http.StatusNotFound,
			expectedErr:  apiErrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newMockAuthenticator(t)
			service.EXPECT().ChangePassword(7, "Senha@123", "NovaSenha@456").Return(tt.serviceErr)

			recorder := httptest.NewRecorder()
			req := authRequest(http.MethodPost, "/v1/users/7/change-password",
				`{"current_password":"Senha@123","new_password":"NovaSenha@456"}`, claims, params)

			ChangePassword(service).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedCode, recorder.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decodeAPIError(t, recorder).Code)
			}
		})
	}

	t.Run("Troca de senha de outro usuário é recusada sem chamar o serviço", func(t *testing.T) {
		service := newMockAuthenticator(t)

		recorder := httptest.NewRecorder()
		req := authRequest(http.MethodPost, "/v1/users/9/change-password",
			`{"current_password":"Senha@123","new_password":"NovaSenha@456"}`,
			claims, httprouter.Params{{Key: "id", Value: "9"}})

		ChangePassword(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeAPIError(t, recorder).Code)
	})
}

func TestGeneratePasswordHandler(t *testing.T) {
	adminClaims := &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}
	params := httprouter.Params{{Key: "id", Value: "2"}}

	t.Run("Administrador gera senha para o alvo", func(t *testing.T) {
		service := newMockAuthenticator(t)
		service.EXPECT().GenerateStrongPassword(1, 2).Return("Forte@123", nil)

		recorder := httptest.NewRecorder()
		req := authRequest(http.MethodPost, "/v1/users/2/generate-password", "", adminClaims, params)

		GeneratePassword(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp GeneratePasswordResponse
		assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "Forte@123", resp.Password)
	})

	t.Run("Solicitante sem privilégio de administrador", func(t *testing.T) {
		service := newMockAuthenticator(t)
		service.EXPECT().GenerateStrongPassword(3, 2).Return("", authenticating.ErrNoAdminPrivileges)

		recorder := httptest.NewRecorder()
		req := authRequest(http.MethodPost, "/v1/users/2/generate-password", "",
			&domain.Claims{UserID: 3, UserRoleID: domain.RoleOperator}, params)

		GeneratePassword(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeAPIError(t, recorder).Code)
	})
}
