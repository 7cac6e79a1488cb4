package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/kol-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/kol-manager-api/internal/domain"
)

const (
	brandProfilesTable = "brand_profiles bp"
)

type BrandProfileRepository interface {
	Create(brand *domain.BrandProfile) error
	Update(brand *domain.BrandProfile) error
	GetByID(brandID string) (*domain.BrandProfile, error)
	List() ([]*domain.BrandProfile, error)
	Delete(brandID string) error
}

type brandProfileRepository struct {
	conn *postgres.Connection
}

func NewBrandProfileRepository(conn *postgres.Connection) BrandProfileRepository {
	return &brandProfileRepository{
		conn: conn,
	}
}

func (r *brandProfileRepository) Create(brand *domain.BrandProfile) error {
	profileJSON, err := json.Marshal(brand)
	if err != nil {
		return fmt.Errorf("erro ao serializar perfil de marca para JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert("brand_profiles").
		Columns("id", "name", "profile").
		Values(brand.ID, brand.Name, profileJSON).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *brandProfileRepository) Update(brand *domain.BrandProfile) error {
	profileJSON, err := json.Marshal(brand)
	if err != nil {
		return fmt.Errorf("erro ao serializar perfil de marca para JSON: %w", err)
	}

	query, args, err := squirrel.
		Update("brand_profiles").
		Set("name", brand.Name).
		Set("profile", profileJSON).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": brand.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *brandProfileRepository) GetByID(brandID string) (*domain.BrandProfile, error) {
	query, args, err := squirrel.
		Select("bp.profile").
		From(brandProfilesTable).
		Where(squirrel.Eq{"bp.id": brandID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var profileJSON []byte
	err = r.conn.QueryRow(query, args...).Scan(&profileJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar perfil de marca: %w", err)
	}

	brand := &domain.BrandProfile{}
	if err := json.Unmarshal(profileJSON, brand); err != nil {
		return nil, fmt.Errorf("erro ao desserializar perfil de marca: %w", err)
	}

	return brand, nil
}

func (r *brandProfileRepository) List() ([]*domain.BrandProfile, error) {
	query, args, err := squirrel.
		Select("bp.profile").
		From(brandProfilesTable).
		OrderBy("bp.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	brands := make([]*domain.BrandProfile, 0)
	for rows.Next() {
		var profileJSON []byte
		if err := rows.Scan(&profileJSON); err != nil {
			return nil, fmt.Errorf("erro ao escanear perfil de marca: %w", err)
		}

		brand := &domain.BrandProfile{}
		if err := json.Unmarshal(profileJSON, brand); err != nil {
			return nil, fmt.Errorf("erro ao desserializar perfil de marca: %w", err)
		}
		brands = append(brands, brand)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return brands, nil
}

func (r *brandProfileRepository) Delete(brandID string) error {
	query, args, err := squirrel.
		Delete("brand_profiles").
		Where(squirrel.Eq{"id": brandID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
