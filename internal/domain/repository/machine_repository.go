package repository

import "github.com/plastigest/planta-api/internal/domain/entity"

// MachineTypeRepository define el puerto de persistencia para MachineType.
type MachineTypeRepository interface {
	Create(mt *entity.MachineType) error
	GetByID(id int64) (*entity.MachineType, error)
	Update(mt *entity.MachineType) error
	List() ([]*entity.MachineType, error)
	Delete(id int64) error
}

// MachineRepository define el puerto de persistencia para Machine.
type MachineRepository interface {
	Create(machine *entity.Machine) error
	GetByID(id int64) (*entity.Machine, error)
	Update(machine *entity.Machine) error
	// ListByType lista las máquinas de un tipo (lista dependiente del asistente).
	ListByType(machineTypeID int64) ([]*entity.Machine, error)
	List(limit, offset int) ([]*entity.Machine, error)
	Count() (int, error)
	Delete(id int64) error
}
