package dto

import "github.com/shopspring/decimal"

// MeasureDTO una medida del catálogo.
type MeasureDTO struct {
	ID     int64  `json:"id_medida"`
	Nombre string `json:"nombre"`
	Unidad string `json:"unidad"`
}

// MeasureListResponse catálogo de medidas. Cuando el listado se filtra por
// tipo de máquina, contiene solo las medidas requeridas para ese tipo.
type MeasureListResponse struct {
	Success bool         `json:"success"`
	Medidas []MeasureDTO `json:"medidas"`
}

// MedidaInput una medida registrada en el envío de producción.
type MedidaInput struct {
	IDMedida int64           `json:"id_medida"`
	Cantidad decimal.Decimal `json:"cantidad"`
}

// RegisterProductionRequest body para POST /api/produccion.
// IDTurno en cero significa "usar el turno vigente". FechaHora vacía significa
// "ahora" (formato RFC 3339 cuando viene).
type RegisterProductionRequest struct {
	IDProducto int64         `json:"id_producto"`
	IDMaquina  int64         `json:"id_maquina"`
	IDUsuario  int64         `json:"id_usuario"`
	IDTurno    int64         `json:"id_turno"`
	FechaHora  string        `json:"fecha_hora"`
	Medidas    []MedidaInput `json:"medidas"`
}

// ProductionEventDTO salida de un evento de producción.
type ProductionEventDTO struct {
	ID         int64         `json:"id_produccion"`
	IDProducto int64         `json:"id_producto"`
	IDMaquina  int64         `json:"id_maquina"`
	IDUsuario  int64         `json:"id_usuario"`
	IDTurno    int64         `json:"id_turno"`
	FechaHora  string        `json:"fecha_hora"`
	Medidas    []MedidaInput `json:"medidas,omitempty"`
}

// ProductionResponse respuesta del registro de producción.
type ProductionResponse struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message,omitempty"`
	Produccion ProductionEventDTO `json:"produccion"`
}

// ProductionListResponse lista paginada de eventos de producción.
type ProductionListResponse struct {
	Success     bool                 `json:"success"`
	Producciones []ProductionEventDTO `json:"producciones"`
	Pagination  Pagination           `json:"paginacion"`
}
