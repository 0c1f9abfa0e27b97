package repository

import "github.com/plastigest/planta-api/internal/domain/entity"

// ProductionRepository define el puerto de persistencia para eventos de
// producción y sus medidas. CreateEvent asigna el ID generado al evento.
type ProductionRepository interface {
	CreateEvent(ev *entity.ProductionEvent) error
	CreateMeasure(m *entity.ProductionMeasure) error
	GetEvent(id int64) (*entity.ProductionEvent, error)
	ListMeasures(productionID int64) ([]*entity.ProductionMeasure, error)
	ListEvents(limit, offset int) ([]*entity.ProductionEvent, error)
	CountEvents() (int, error)
}
