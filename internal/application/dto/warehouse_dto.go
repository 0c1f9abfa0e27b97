package dto

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Nombre    string `json:"nombre"`
	Ubicacion string `json:"ubicacion"`
}

// UpdateWarehouseRequest entrada para actualizar una bodega.
type UpdateWarehouseRequest struct {
	Nombre    *string `json:"nombre"`
	Ubicacion *string `json:"ubicacion"`
}

// WarehouseDTO salida de una bodega.
type WarehouseDTO struct {
	ID        int64  `json:"id_bodega"`
	Nombre    string `json:"nombre"`
	Ubicacion string `json:"ubicacion"`
}

// WarehouseResponse respuesta de una bodega individual.
type WarehouseResponse struct {
	Success bool         `json:"success"`
	Bodega  WarehouseDTO `json:"bodega"`
}

// WarehouseListResponse lista paginada de bodegas.
type WarehouseListResponse struct {
	Success    bool           `json:"success"`
	Bodegas    []WarehouseDTO `json:"bodegas"`
	Pagination Pagination     `json:"paginacion"`
}
