package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryLot representa un lote de inventario: una cantidad de un producto,
// en una bodega, con trazabilidad a la factura de origen.
// ProductCode y ProductName se llenan en listados (join con products); la
// cantidad autoritativa es siempre Quantity según la base de datos.
type InventoryLot struct {
	ID          int64
	ProductID   int64
	WarehouseID int64
	InvoiceID   int64
	Quantity    decimal.Decimal
	ProductCode string
	ProductName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
