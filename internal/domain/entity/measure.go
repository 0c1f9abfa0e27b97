package entity

import "time"

// Measure representa una medida de producción del catálogo (ej. peso en kg,
// metros lineales). Qué medidas se exigen en un registro de producción
// depende del tipo de máquina (ver internal/domain/production).
type Measure struct {
	ID        int64
	Name      string
	Unit      string // kg, m
	CreatedAt time.Time
	UpdatedAt time.Time
}
