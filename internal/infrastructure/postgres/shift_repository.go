package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/plastigest/planta-api/internal/domain/entity"
	"github.com/plastigest/planta-api/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

// ShiftRepo implementación del puerto ShiftRepository sobre PostgreSQL.
type ShiftRepo struct {
	q Querier
}

// NewShiftRepository construye el adaptador de persistencia para turnos.
func NewShiftRepository(q Querier) *ShiftRepo {
	return &ShiftRepo{q: q}
}

// Create persiste un nuevo turno y asigna el ID generado.
func (r *ShiftRepo) Create(shift *entity.Shift) error {
	query := `
		INSERT INTO shifts (name, start_time, end_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		shift.Name, shift.StartTime, shift.EndTime, shift.CreatedAt, shift.UpdatedAt,
	).Scan(&shift.ID)
	if err != nil {
		return fmt.Errorf("insert shift: %w", err)
	}
	return nil
}

// GetByID obtiene un turno por ID.
func (r *ShiftRepo) GetByID(id int64) (*entity.Shift, error) {
	query := `
		SELECT id, name, start_time, end_time, created_at, updated_at
		FROM shifts WHERE id = $1`
	var s entity.Shift
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shift: %w", err)
	}
	return &s, nil
}

// Update actualiza un turno existente.
func (r *ShiftRepo) Update(shift *entity.Shift) error {
	query := `
		UPDATE shifts SET name = $2, start_time = $3, end_time = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		shift.ID, shift.Name, shift.StartTime, shift.EndTime, shift.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update shift: %w", err)
	}
	return nil
}

// List lista todos los turnos.
func (r *ShiftRepo) List() ([]*entity.Shift, error) {
	query := `
		SELECT id, name, start_time, end_time, created_at, updated_at
		FROM shifts ORDER BY start_time`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shift
	for rows.Next() {
		var s entity.Shift
		if err := rows.Scan(&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina un turno por ID.
func (r *ShiftRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shift: %w", err)
	}
	return nil
}
