package transfer

import (
	"context"

	"github.com/plastigest/planta-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. El lote de traslado es todo-o-nada: cualquier
// línea que falle revierte la transacción completa, de modo que una aplicación
// parcial del traslado no es posible.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		lotRepo repository.InventoryLotRepository,
		transferRepo repository.TransferRepository,
	) error) error
}
