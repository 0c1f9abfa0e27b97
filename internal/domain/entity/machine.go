package entity

import "time"

// MachineType representa una categoría de máquina de la planta
// (ej. "Extrusora", "Peletizadora", "Aglutinadora"). El nombre del tipo
// determina qué productos y qué medidas aplican al registrar producción.
type MachineType struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Estados válidos para Machine.
const (
	MachineActive      = "activa"
	MachineMaintenance = "mantenimiento"
	MachineRetired     = "retirada"
)

// Machine representa una máquina concreta de producción, perteneciente a un tipo.
type Machine struct {
	ID            int64
	MachineTypeID int64
	Name          string
	Status        string // activa, mantenimiento, retirada
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
