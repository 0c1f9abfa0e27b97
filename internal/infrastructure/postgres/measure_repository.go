package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/plastigest/planta-api/internal/domain/entity"
	"github.com/plastigest/planta-api/internal/domain/repository"
)

var _ repository.MeasureRepository = (*MeasureRepo)(nil)

// MeasureRepo implementación del puerto MeasureRepository sobre PostgreSQL.
// El catálogo de medidas se administra por fuera (seed); aquí solo se lee.
type MeasureRepo struct {
	q Querier
}

// NewMeasureRepository construye el adaptador de lectura del catálogo de medidas.
func NewMeasureRepository(q Querier) *MeasureRepo {
	return &MeasureRepo{q: q}
}

// GetByID obtiene una medida por ID.
func (r *MeasureRepo) GetByID(id int64) (*entity.Measure, error) {
	query := `
		SELECT id, name, unit, created_at, updated_at
		FROM measures WHERE id = $1`
	var m entity.Measure
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.Unit, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get measure: %w", err)
	}
	return &m, nil
}

// List lista el catálogo de medidas.
func (r *MeasureRepo) List() ([]*entity.Measure, error) {
	query := `
		SELECT id, name, unit, created_at, updated_at
		FROM measures ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list measures: %w", err)
	}
	defer rows.Close()
	var list []*entity.Measure
	for rows.Next() {
		var m entity.Measure
		if err := rows.Scan(&m.ID, &m.Name, &m.Unit, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan measure: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
