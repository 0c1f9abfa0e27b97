package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Codigo string          `json:"codigo"`
	Nombre string          `json:"nombre"`
	Grupo  int64           `json:"id_grupo"`
	Precio decimal.Decimal `json:"precio"`
	Unidad string          `json:"unidad"`
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	Codigo *string          `json:"codigo"`
	Nombre *string          `json:"nombre"`
	Grupo  *int64           `json:"id_grupo"`
	Precio *decimal.Decimal `json:"precio"`
	Unidad *string          `json:"unidad"`
}

// ProductDTO salida de un producto.
type ProductDTO struct {
	ID     int64           `json:"id_producto"`
	Codigo string          `json:"codigo"`
	Nombre string          `json:"nombre"`
	Grupo  int64           `json:"id_grupo"`
	Precio decimal.Decimal `json:"precio"`
	Unidad string          `json:"unidad"`
}

// ProductResponse respuesta de un producto individual.
type ProductResponse struct {
	Success  bool       `json:"success"`
	Producto ProductDTO `json:"producto"`
}

// ProductListResponse lista de productos. En listados filtrados por grupo
// (asistente de producción) la paginación no aplica y va en cero.
type ProductListResponse struct {
	Success    bool         `json:"success"`
	Productos  []ProductDTO `json:"productos"`
	Pagination Pagination   `json:"paginacion,omitempty"`
}
