package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer representa un traslado de lotes entre dos bodegas, ejecutado como
// un lote atómico: o se aplican todas las líneas o ninguna.
type Transfer struct {
	ID                int64
	TransactionID     string // agrupa todas las líneas del traslado
	SourceWarehouseID int64
	DestWarehouseID   int64
	UserID            int64
	Note              string
	CreatedAt         time.Time
	Lines             []TransferLine
}

// TransferLine es una línea del traslado: un lote de origen y la cantidad movida.
type TransferLine struct {
	ID         int64
	TransferID int64
	LotID      int64
	ProductID  int64
	InvoiceID  int64
	Quantity   decimal.Decimal
}
