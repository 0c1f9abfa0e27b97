package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto terminado o material de la planta.
// GroupID clasifica el producto según el proceso que lo produce
// (peletizado, aglutinado, extrusión); determina en qué máquinas es seleccionable.
type Product struct {
	ID          int64
	Code        string // código único de producto
	Name        string
	GroupID     int64 // grupo de producto (clasificación por proceso)
	Price       decimal.Decimal
	UnitMeasure string // kg, m, unidad
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
