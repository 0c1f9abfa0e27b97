package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plastigest/planta-api/internal/application/production"
	"github.com/plastigest/planta-api/internal/application/transfer"
	"github.com/plastigest/planta-api/internal/domain/repository"
)

// Ensure TxRunner implements production.TxRunner y transfer.TxRunner.
var _ production.TxRunner = (*TxRunner)(nil)
var _ transfer.TxRunner = (*TransferTxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL con el
// repositorio de producción atado a la tx (evento + medidas atómicos).
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con el repo atado a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(prodRepo repository.ProductionRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// TransferTxRunner ejecuta el lote de traslado dentro de una transacción:
// cualquier línea que falle revierte el lote completo.
type TransferTxRunner struct {
	pool *pgxpool.Pool
}

// NewTransferTxRunner construye el runner con el pool.
func NewTransferTxRunner(pool *pgxpool.Pool) *TransferTxRunner {
	return &TransferTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TransferTxRunner) Run(ctx context.Context, fn func(
	lotRepo repository.InventoryLotRepository,
	transferRepo repository.TransferRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewInventoryLotRepository(tx), NewTransferRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
