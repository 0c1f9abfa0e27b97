package repository

import "github.com/plastigest/planta-api/internal/domain/entity"

// TransferRepository define el puerto de persistencia para traslados entre
// bodegas. CreateTransfer asigna el ID generado; las líneas se insertan una a
// una dentro de la misma transacción que ajusta los lotes.
type TransferRepository interface {
	CreateTransfer(t *entity.Transfer) error
	CreateLine(line *entity.TransferLine) error
	GetByID(id int64) (*entity.Transfer, error)
	List(limit, offset int) ([]*entity.Transfer, error)
	Count() (int, error)
}
