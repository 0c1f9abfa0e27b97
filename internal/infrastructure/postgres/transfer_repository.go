package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/plastigest/planta-api/internal/domain/entity"
	"github.com/plastigest/planta-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación del puerto TransferRepository sobre PostgreSQL.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// CreateTransfer persiste la cabecera del traslado y asigna el ID generado.
func (r *TransferRepo) CreateTransfer(t *entity.Transfer) error {
	query := `
		INSERT INTO transfers (transaction_id, source_warehouse_id, dest_warehouse_id, user_id, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		t.TransactionID, t.SourceWarehouseID, t.DestWarehouseID, t.UserID, t.Note, t.CreatedAt,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// CreateLine persiste una línea del traslado.
func (r *TransferRepo) CreateLine(line *entity.TransferLine) error {
	query := `
		INSERT INTO transfer_lines (transfer_id, lot_id, product_id, invoice_id, quantity)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		line.TransferID, line.LotID, line.ProductID, line.InvoiceID, line.Quantity,
	).Scan(&line.ID)
	if err != nil {
		return fmt.Errorf("insert transfer line: %w", err)
	}
	return nil
}

// GetByID obtiene un traslado con sus líneas.
func (r *TransferRepo) GetByID(id int64) (*entity.Transfer, error) {
	query := `
		SELECT id, transaction_id, source_warehouse_id, dest_warehouse_id, user_id, note, created_at
		FROM transfers WHERE id = $1`
	var t entity.Transfer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.TransactionID, &t.SourceWarehouseID, &t.DestWarehouseID, &t.UserID, &t.Note, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	lines, err := r.listLines(t.ID)
	if err != nil {
		return nil, err
	}
	t.Lines = lines
	return &t, nil
}

// List lista traslados, más recientes primero (sin líneas).
func (r *TransferRepo) List(limit, offset int) ([]*entity.Transfer, error) {
	query := `
		SELECT id, transaction_id, source_warehouse_id, dest_warehouse_id, user_id, note, created_at
		FROM transfers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(&t.ID, &t.TransactionID, &t.SourceWarehouseID, &t.DestWarehouseID,
			&t.UserID, &t.Note, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Count cuenta los traslados registrados.
func (r *TransferRepo) Count() (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM transfers`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count transfers: %w", err)
	}
	return total, nil
}

func (r *TransferRepo) listLines(transferID int64) ([]entity.TransferLine, error) {
	query := `
		SELECT id, transfer_id, lot_id, product_id, invoice_id, quantity
		FROM transfer_lines WHERE transfer_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, transferID)
	if err != nil {
		return nil, fmt.Errorf("list transfer lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.TransferLine
	for rows.Next() {
		var l entity.TransferLine
		if err := rows.Scan(&l.ID, &l.TransferID, &l.LotID, &l.ProductID, &l.InvoiceID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan transfer line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
