package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/plastigest/planta-api/internal/domain/entity"
	"github.com/plastigest/planta-api/internal/domain/repository"
)

var _ repository.InventoryLotRepository = (*InventoryLotRepo)(nil)

// InventoryLotRepo implementación del puerto InventoryLotRepository sobre
// PostgreSQL (usable con pool o tx). Los métodos ForUpdate solo tienen sentido
// dentro de una transacción.
type InventoryLotRepo struct {
	q Querier
}

// NewInventoryLotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryLotRepository(q Querier) *InventoryLotRepo {
	return &InventoryLotRepo{q: q}
}

// Create persiste un nuevo lote y asigna el ID generado.
func (r *InventoryLotRepo) Create(lot *entity.InventoryLot) error {
	query := `
		INSERT INTO inventory_lots (product_id, warehouse_id, invoice_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		lot.ProductID, lot.WarehouseID, lot.InvoiceID, lot.Quantity, lot.CreatedAt, lot.UpdatedAt,
	).Scan(&lot.ID)
	if err != nil {
		return fmt.Errorf("insert inventory lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *InventoryLotRepo) GetByID(id int64) (*entity.InventoryLot, error) {
	query := `
		SELECT id, product_id, warehouse_id, invoice_id, quantity, created_at, updated_at
		FROM inventory_lots WHERE id = $1`
	return r.getOne(query, id)
}

// ListByWarehouse lista los lotes de una bodega con código y nombre del producto.
func (r *InventoryLotRepo) ListByWarehouse(warehouseID int64) ([]*entity.InventoryLot, error) {
	query := `
		SELECT l.id, l.product_id, l.warehouse_id, l.invoice_id, l.quantity,
		       p.code, p.name, l.created_at, l.updated_at
		FROM inventory_lots l
		JOIN products p ON p.id = l.product_id
		WHERE l.warehouse_id = $1
		ORDER BY p.name, l.id`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list lots by warehouse: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryLot
	for rows.Next() {
		var l entity.InventoryLot
		if err := rows.Scan(&l.ID, &l.ProductID, &l.WarehouseID, &l.InvoiceID, &l.Quantity,
			&l.ProductCode, &l.ProductName, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// GetForUpdate bloquea el lote para actualizarlo (SELECT FOR UPDATE).
func (r *InventoryLotRepo) GetForUpdate(id int64) (*entity.InventoryLot, error) {
	query := `
		SELECT id, product_id, warehouse_id, invoice_id, quantity, created_at, updated_at
		FROM inventory_lots WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

// FindAtWarehouseForUpdate busca (con bloqueo) el lote del mismo producto y
// factura en la bodega dada; nil si no existe.
func (r *InventoryLotRepo) FindAtWarehouseForUpdate(productID, invoiceID, warehouseID int64) (*entity.InventoryLot, error) {
	query := `
		SELECT id, product_id, warehouse_id, invoice_id, quantity, created_at, updated_at
		FROM inventory_lots
		WHERE product_id = $1 AND invoice_id = $2 AND warehouse_id = $3
		FOR UPDATE`
	var l entity.InventoryLot
	err := r.q.QueryRow(context.Background(), query, productID, invoiceID, warehouseID).Scan(
		&l.ID, &l.ProductID, &l.WarehouseID, &l.InvoiceID, &l.Quantity, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find lot at warehouse: %w", err)
	}
	return &l, nil
}

// Update actualiza la cantidad de un lote existente.
func (r *InventoryLotRepo) Update(lot *entity.InventoryLot) error {
	query := `
		UPDATE inventory_lots SET quantity = $2, updated_at = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, lot.ID, lot.Quantity, lot.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update inventory lot: %w", err)
	}
	return nil
}

// Delete elimina un lote por ID.
func (r *InventoryLotRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_lots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory lot: %w", err)
	}
	return nil
}

func (r *InventoryLotRepo) getOne(query string, id int64) (*entity.InventoryLot, error) {
	var l entity.InventoryLot
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.ProductID, &l.WarehouseID, &l.InvoiceID, &l.Quantity, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory lot: %w", err)
	}
	return &l, nil
}
