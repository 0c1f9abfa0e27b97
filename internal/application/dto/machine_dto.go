package dto

// MachineTypeDTO salida de un tipo de máquina.
type MachineTypeDTO struct {
	ID     int64  `json:"id_tipo_maquina"`
	Nombre string `json:"nombre"`
}

// MachineTypeListResponse lista de tipos de máquina.
type MachineTypeListResponse struct {
	Success      bool             `json:"success"`
	TiposMaquina []MachineTypeDTO `json:"tipos_maquina"`
}

// CreateMachineTypeRequest entrada para crear un tipo de máquina.
type CreateMachineTypeRequest struct {
	Nombre string `json:"nombre"`
}

// MachineDTO salida de una máquina.
type MachineDTO struct {
	ID            int64  `json:"id_maquina"`
	IDTipoMaquina int64  `json:"id_tipo_maquina"`
	Nombre        string `json:"nombre"`
	Estado        string `json:"estado"`
}

// MachineResponse respuesta de una máquina individual.
type MachineResponse struct {
	Success bool       `json:"success"`
	Maquina MachineDTO `json:"maquina"`
}

// MachineListResponse lista de máquinas (filtrable por tipo).
type MachineListResponse struct {
	Success    bool         `json:"success"`
	Maquinas   []MachineDTO `json:"maquinas"`
	Pagination Pagination   `json:"paginacion,omitempty"`
}

// CreateMachineRequest entrada para crear una máquina.
type CreateMachineRequest struct {
	IDTipoMaquina int64  `json:"id_tipo_maquina"`
	Nombre        string `json:"nombre"`
	Estado        string `json:"estado"`
}

// UpdateMachineRequest entrada para actualizar una máquina.
type UpdateMachineRequest struct {
	IDTipoMaquina *int64  `json:"id_tipo_maquina"`
	Nombre        *string `json:"nombre"`
	Estado        *string `json:"estado"`
}
