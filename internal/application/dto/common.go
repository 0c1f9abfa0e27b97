package dto

// PageRequest paginación para listados (query params pagina/limite).
type PageRequest struct {
	Pagina int `query:"pagina"`
	Limite int `query:"limite"`
}

// DefaultPage aplica valores por defecto si Pagina/Limite no vienen.
func (p *PageRequest) DefaultPage() {
	if p.Pagina <= 0 {
		p.Pagina = 1
	}
	if p.Limite <= 0 || p.Limite > 100 {
		p.Limite = 20
	}
}

// Offset devuelve el desplazamiento SQL equivalente a la página solicitada.
func (p PageRequest) Offset() int {
	return (p.Pagina - 1) * p.Limite
}

// Pagination metadatos de página en respuestas de listado.
type Pagination struct {
	PaginaActual   int `json:"paginaActual"`
	TotalPaginas   int `json:"totalPaginas"`
	TotalRegistros int `json:"totalRegistros"`
	Limite         int `json:"limite"`
}

// NewPagination calcula los metadatos a partir del total y la página pedida.
func NewPagination(page PageRequest, total int) Pagination {
	pages := total / page.Limite
	if total%page.Limite != 0 {
		pages++
	}
	if pages == 0 {
		pages = 1
	}
	return Pagination{
		PaginaActual:   page.Pagina,
		TotalPaginas:   pages,
		TotalRegistros: total,
		Limite:         page.Limite,
	}
}

// StatusResponse respuesta mínima de una mutación.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse cuerpo de error HTTP. Success siempre es false; Code permite
// distinguir la causa sin depender del texto del mensaje.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewError construye un ErrorResponse.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Code: code, Message: message}
}
