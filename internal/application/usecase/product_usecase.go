package usecase

import (
	"time"

	"github.com/plastigest/planta-api/internal/application/dto"
	"github.com/plastigest/planta-api/internal/domain"
	"github.com/plastigest/planta-api/internal/domain/entity"
	"github.com/plastigest/planta-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductDTO, error) {
	if in.Codigo == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		Code:        in.Codigo,
		Name:        in.Nombre,
		GroupID:     in.Grupo,
		Price:       in.Precio,
		UnitMeasure: in.Unidad,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductDTO(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductDTO, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductDTO(product), nil
}

// Update actualiza un producto.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductDTO, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Codigo != nil {
		product.Code = *in.Codigo
	}
	if in.Nombre != nil {
		product.Name = *in.Nombre
	}
	if in.Grupo != nil {
		product.GroupID = *in.Grupo
	}
	if in.Precio != nil {
		product.Price = *in.Precio
	}
	if in.Unidad != nil {
		product.UnitMeasure = *in.Unidad
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductDTO(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(page dto.PageRequest) (*dto.ProductListResponse, error) {
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(page.Limite, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductDTO, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductDTO(p))
	}
	return &dto.ProductListResponse{
		Success:    true,
		Productos:  items,
		Pagination: dto.NewPagination(page, total),
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id int64) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductDTO(p *entity.Product) *dto.ProductDTO {
	if p == nil {
		return nil
	}
	return &dto.ProductDTO{
		ID:     p.ID,
		Codigo: p.Code,
		Nombre: p.Name,
		Grupo:  p.GroupID,
		Precio: p.Price,
		Unidad: p.UnitMeasure,
	}
}
