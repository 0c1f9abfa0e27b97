package repository

import "github.com/plastigest/planta-api/internal/domain/entity"

// ShiftRepository define el puerto de persistencia para Shift.
type ShiftRepository interface {
	Create(shift *entity.Shift) error
	GetByID(id int64) (*entity.Shift, error)
	Update(shift *entity.Shift) error
	List() ([]*entity.Shift, error)
	Delete(id int64) error
}
