package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionEvent representra un evento de producción: qué producto se produjo,
// en qué máquina, por qué operador y en qué turno. Las cantidades registradas
// viven en ProductionMeasure (una fila por medida).
type ProductionEvent struct {
	ID            int64
	TransactionID string // agrupa evento + medidas creados en la misma operación
	ProductID     int64
	MachineID     int64
	UserID        int64
	ShiftID       int64
	Date          time.Time
	CreatedAt     time.Time
}

// ProductionMeasure es una medida registrada para un evento de producción.
type ProductionMeasure struct {
	ID           int64
	ProductionID int64
	MeasureID    int64
	Quantity     decimal.Decimal
}
