package repository

import "github.com/plastigest/planta-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	Count() (int, error)
	// ListByGroup lista los productos seleccionables para un grupo de proceso.
	ListByGroup(groupID int64) ([]*entity.Product, error)
	Delete(id int64) error
}
