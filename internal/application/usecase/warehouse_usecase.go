package usecase

import (
	"time"

	"github.com/plastigest/planta-api/internal/application/dto"
	"github.com/plastigest/planta-api/internal/domain"
	"github.com/plastigest/planta-api/internal/domain/entity"
	"github.com/plastigest/planta-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para bodegas.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create crea una nueva bodega.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseDTO, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		Name:      in.Nombre,
		Location:  in.Ubicacion,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseDTO(warehouse), nil
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(id int64) (*dto.WarehouseDTO, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	return toWarehouseDTO(warehouse), nil
}

// Update actualiza una bodega.
func (uc *WarehouseUseCase) Update(id int64, in dto.UpdateWarehouseRequest) (*dto.WarehouseDTO, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		warehouse.Name = *in.Nombre
	}
	if in.Ubicacion != nil {
		warehouse.Location = *in.Ubicacion
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseDTO(warehouse), nil
}

// List lista bodegas con paginación.
func (uc *WarehouseUseCase) List(page dto.PageRequest) (*dto.WarehouseListResponse, error) {
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(page.Limite, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseDTO, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseDTO(w))
	}
	return &dto.WarehouseListResponse{
		Success:    true,
		Bodegas:    items,
		Pagination: dto.NewPagination(page, total),
	}, nil
}

// Delete elimina una bodega por ID.
func (uc *WarehouseUseCase) Delete(id int64) error {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toWarehouseDTO(w *entity.Warehouse) *dto.WarehouseDTO {
	if w == nil {
		return nil
	}
	return &dto.WarehouseDTO{
		ID:        w.ID,
		Nombre:    w.Name,
		Ubicacion: w.Location,
	}
}
