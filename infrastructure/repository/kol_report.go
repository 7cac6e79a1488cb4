// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/kol-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/kol-manager-api/internal/domain"
)

const (
	kolReportsTable = "kol_reports kr"
)

type KolReportRepository interface {
	GetByKolID(kolID string) (*domain.StandardizedKOLReport, error)
	ListRecent(limit int) ([]*domain.StandardizedKOLReport, error)
	ListStaleBefore(cutoff time.Time) ([]*domain.StandardizedKOLReport, error)
	SaveOrUpdate(report *domain.StandardizedKOLReport) error
}

type kolReportRepository struct {
	conn *postgres.Connection
}

func NewKolReportRepository(conn *postgres.Connection) KolReportRepository {
	return &kolReportRepository{
		conn: conn,
	}
}

func (r *kolReportRepository) GetByKolID(kolID string) (*domain.StandardizedKOLReport, error) {
	query, args, err := squirrel.
		Select("kr.report").
		From(kolReportsTable).
		Where(squirrel.Eq{"kr.kol_id": kolID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var reportJSON []byte
	err = r.conn.QueryRow(query, args...).Scan(&reportJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar relatório: %w", err)
	}

	return unmarshalReport(reportJSON)
}

func (r *kolReportRepository) ListRecent(limit int) ([]*domain.StandardizedKOLReport, error) {
	query, args, err := squirrel.
		Select("kr.report").
		From(kolReportsTable).
		OrderBy("kr.updated_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryReports(query, args)
}

// ListStaleBefore retorna relatórios não atualizados desde o corte, usados
// pelo agendador de reprocessamento
func (r *kolReportRepository) ListStaleBefore(cutoff time.Time) ([]*domain.StandardizedKOLReport, error) {
	query, args, err := squirrel.
		Select("kr.report").
		From(kolReportsTable).
		Where(squirrel.Lt{"kr.updated_at": cutoff}).
		OrderBy("kr.updated_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryReports(query, args)
}

func (r *kolReportRepository) SaveOrUpdate(report *domain.StandardizedKOLReport) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("erro ao serializar relatório para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("kol_reports").
		Columns("kol_id", "platform", "report").
		Values(report.KolID, string(report.Platform), reportJSON).
		Suffix(`
			ON CONFLICT (kol_id) DO UPDATE SET
				platform = EXCLUDED.platform,
				report = EXCLUDED.report,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *kolReportRepository) queryReports(query string, args []any) ([]*domain.StandardizedKOLReport, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.StandardizedKOLReport, 0)
	for rows.Next() {
		var reportJSON []byte
		if err := rows.Scan(&reportJSON); err != nil {
			return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
		}

		report, err := unmarshalReport(reportJSON)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

func unmarshalReport(reportJSON []byte) (*domain.StandardizedKOLReport, error) {
	report := &domain.StandardizedKOLReport{}
	if err := json.Unmarshal(reportJSON, report); err != nil {
		return nil, fmt.Errorf("erro ao desserializar relatório: %w", err)
	}
	return report, nil
}
