package dto

// ShiftDTO salida de un turno. Actual marca el turno vigente que el servidor
// designa según la hora; el cliente lo usa como valor por defecto.
type ShiftDTO struct {
	ID         int64  `json:"id_turno"`
	Nombre     string `json:"nombre"`
	HoraInicio string `json:"hora_inicio"`
	HoraFin    string `json:"hora_fin"`
	Actual     bool   `json:"actual"`
}

// ShiftListResponse lista de turnos con el vigente marcado.
type ShiftListResponse struct {
	Success bool       `json:"success"`
	Turnos  []ShiftDTO `json:"turnos"`
}

// CreateShiftRequest entrada para crear un turno.
type CreateShiftRequest struct {
	Nombre     string `json:"nombre"`
	HoraInicio string `json:"hora_inicio"`
	HoraFin    string `json:"hora_fin"`
}
