package repository

import "github.com/plastigest/planta-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	Count() (int, error)
	// ListByRole lista usuarios activos con un rol dado (ej. operadores de planta).
	ListByRole(role string) ([]*entity.User, error)
}
