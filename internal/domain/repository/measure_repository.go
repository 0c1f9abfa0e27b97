package repository

import "github.com/plastigest/planta-api/internal/domain/entity"

// MeasureRepository define el puerto de lectura del catálogo de medidas.
type MeasureRepository interface {
	GetByID(id int64) (*entity.Measure, error)
	List() ([]*entity.Measure, error)
}
