package usecase

import (
	"github.com/plastigest/planta-api/internal/application/dto"
	"github.com/plastigest/planta-api/internal/domain/entity"
	"github.com/plastigest/planta-api/internal/domain/repository"
)

// UserUseCase casos de uso de lectura de usuarios (la creación pasa por auth).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(page dto.PageRequest) (*dto.UserListResponse, error) {
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(page.Limite, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserDTO, 0, len(list))
	for _, u := range list {
		items = append(items, toUserDTO(u))
	}
	return &dto.UserListResponse{
		Success:    true,
		Usuarios:   items,
		Pagination: dto.NewPagination(page, total),
	}, nil
}

// ListOperators lista los operadores activos (paso "operador" del asistente).
func (uc *UserUseCase) ListOperators() (*dto.UserListResponse, error) {
	list, err := uc.repo.ListByRole(entity.RoleOperador)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserDTO, 0, len(list))
	for _, u := range list {
		items = append(items, toUserDTO(u))
	}
	return &dto.UserListResponse{Success: true, Usuarios: items}, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserDTO, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	d := toUserDTO(user)
	return &d, nil
}

func toUserDTO(u *entity.User) dto.UserDTO {
	return dto.UserDTO{
		ID:     u.ID,
		Email:  u.Email,
		Nombre: u.Name,
		Rol:    u.Role,
		Estado: u.Status,
	}
}
