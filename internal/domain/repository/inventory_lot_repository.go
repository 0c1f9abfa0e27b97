package repository

import (
	"github.com/plastigest/planta-api/internal/domain/entity"
)

// InventoryLotRepository define el puerto de persistencia para lotes de
// inventario. GetForUpdate y FindAtWarehouseForUpdate bloquean la fila
// (SELECT FOR UPDATE) y solo tienen sentido dentro de una transacción.
type InventoryLotRepository interface {
	Create(lot *entity.InventoryLot) error
	GetByID(id int64) (*entity.InventoryLot, error)
	// ListByWarehouse lista los lotes de una bodega con datos del producto
	// (cantidad autoritativa para la validación de traslados).
	ListByWarehouse(warehouseID int64) ([]*entity.InventoryLot, error)
	// GetForUpdate bloquea el lote para actualizarlo dentro de la transacción.
	GetForUpdate(id int64) (*entity.InventoryLot, error)
	// FindAtWarehouseForUpdate busca (con bloqueo) el lote de destino que
	// corresponde al mismo producto y factura en otra bodega; nil si no existe.
	FindAtWarehouseForUpdate(productID, invoiceID, warehouseID int64) (*entity.InventoryLot, error)
	Update(lot *entity.InventoryLot) error
	Delete(id int64) error
}
