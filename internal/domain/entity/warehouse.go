package entity

import "time"

// Warehouse representa una bodega de la planta donde se almacenan lotes de inventario.
type Warehouse struct {
	ID        int64
	Name      string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
