package entity

import "time"

// Shift representa un turno de trabajo de la planta. StartTime y EndTime son
// horas locales en formato "15:04"; un turno nocturno cruza la medianoche
// (StartTime > EndTime).
type Shift struct {
	ID        int64
	Name      string
	StartTime string // "06:00"
	EndTime   string // "14:00"
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contains indica si el instante dado cae dentro de la ventana del turno.
// El límite inferior es inclusivo y el superior exclusivo, de modo que dos
// turnos contiguos no se solapan en el instante de cambio.
func (s Shift) Contains(now time.Time) bool {
	start, err := time.Parse("15:04", s.StartTime)
	if err != nil {
		return false
	}
	end, err := time.Parse("15:04", s.EndTime)
	if err != nil {
		return false
	}
	minute := now.Hour()*60 + now.Minute()
	startMin := start.Hour()*60 + start.Minute()
	endMin := end.Hour()*60 + end.Minute()
	if startMin <= endMin {
		return minute >= startMin && minute < endMin
	}
	// turno nocturno: cruza la medianoche
	return minute >= startMin || minute < endMin
}
