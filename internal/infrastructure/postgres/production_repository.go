package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/plastigest/planta-api/internal/domain/entity"
	"github.com/plastigest/planta-api/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo implementación del puerto ProductionRepository sobre
// PostgreSQL (usable con pool o tx).
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

// CreateEvent persiste un evento de producción y asigna el ID generado.
func (r *ProductionRepo) CreateEvent(ev *entity.ProductionEvent) error {
	query := `
		INSERT INTO production_events (transaction_id, product_id, machine_id, user_id, shift_id, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		ev.TransactionID, ev.ProductID, ev.MachineID, ev.UserID, ev.ShiftID, ev.Date, ev.CreatedAt,
	).Scan(&ev.ID)
	if err != nil {
		return fmt.Errorf("insert production event: %w", err)
	}
	return nil
}

// CreateMeasure persiste una medida de un evento de producción.
func (r *ProductionRepo) CreateMeasure(m *entity.ProductionMeasure) error {
	query := `
		INSERT INTO production_measures (production_id, measure_id, quantity)
		VALUES ($1, $2, $3) RETURNING id`
	err := r.q.QueryRow(context.Background(), query, m.ProductionID, m.MeasureID, m.Quantity).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert production measure: %w", err)
	}
	return nil
}

// GetEvent obtiene un evento de producción por ID.
func (r *ProductionRepo) GetEvent(id int64) (*entity.ProductionEvent, error) {
	query := `
		SELECT id, transaction_id, product_id, machine_id, user_id, shift_id, date, created_at
		FROM production_events WHERE id = $1`
	var ev entity.ProductionEvent
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&ev.ID, &ev.TransactionID, &ev.ProductID, &ev.MachineID, &ev.UserID, &ev.ShiftID, &ev.Date, &ev.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production event: %w", err)
	}
	return &ev, nil
}

// ListMeasures lista las medidas de un evento de producción.
func (r *ProductionRepo) ListMeasures(productionID int64) ([]*entity.ProductionMeasure, error) {
	query := `
		SELECT id, production_id, measure_id, quantity
		FROM production_measures WHERE production_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, productionID)
	if err != nil {
		return nil, fmt.Errorf("list production measures: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductionMeasure
	for rows.Next() {
		var m entity.ProductionMeasure
		if err := rows.Scan(&m.ID, &m.ProductionID, &m.MeasureID, &m.Quantity); err != nil {
			return nil, fmt.Errorf("scan production measure: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListEvents lista eventos de producción, más recientes primero.
func (r *ProductionRepo) ListEvents(limit, offset int) ([]*entity.ProductionEvent, error) {
	query := `
		SELECT id, transaction_id, product_id, machine_id, user_id, shift_id, date, created_at
		FROM production_events ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list production events: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductionEvent
	for rows.Next() {
		var ev entity.ProductionEvent
		if err := rows.Scan(&ev.ID, &ev.TransactionID, &ev.ProductID, &ev.MachineID,
			&ev.UserID, &ev.ShiftID, &ev.Date, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan production event: %w", err)
		}
		list = append(list, &ev)
	}
	return list, rows.Err()
}

// CountEvents cuenta los eventos de producción.
func (r *ProductionRepo) CountEvents() (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM production_events`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count production events: %w", err)
	}
	return total, nil
}
