package usecase

import (
	"time"

	"github.com/plastigest/planta-api/internal/application/dto"
	"github.com/plastigest/planta-api/internal/domain"
	"github.com/plastigest/planta-api/internal/domain/entity"
	"github.com/plastigest/planta-api/internal/domain/repository"
)

// ShiftUseCase casos de uso para turnos. El servidor designa el turno vigente
// según la hora; el cliente lo usa como valor por defecto al registrar.
type ShiftUseCase struct {
	repo repository.ShiftRepository
	now  func() time.Time
}

// NewShiftUseCase construye el caso de uso.
func NewShiftUseCase(repo repository.ShiftRepository) *ShiftUseCase {
	return &ShiftUseCase{repo: repo, now: time.Now}
}

// List lista los turnos marcando el vigente.
func (uc *ShiftUseCase) List() (*dto.ShiftListResponse, error) {
	shifts, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	now := uc.now()
	items := make([]dto.ShiftDTO, 0, len(shifts))
	for _, s := range shifts {
		items = append(items, dto.ShiftDTO{
			ID:         s.ID,
			Nombre:     s.Name,
			HoraInicio: s.StartTime,
			HoraFin:    s.EndTime,
			Actual:     s.Contains(now),
		})
	}
	return &dto.ShiftListResponse{Success: true, Turnos: items}, nil
}

// Create crea un turno.
func (uc *ShiftUseCase) Create(in dto.CreateShiftRequest) (*dto.ShiftDTO, error) {
	if in.Nombre == "" || in.HoraInicio == "" || in.HoraFin == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse("15:04", in.HoraInicio); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse("15:04", in.HoraFin); err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	shift := &entity.Shift{
		Name:      in.Nombre,
		StartTime: in.HoraInicio,
		EndTime:   in.HoraFin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(shift); err != nil {
		return nil, err
	}
	return &dto.ShiftDTO{
		ID:         shift.ID,
		Nombre:     shift.Name,
		HoraInicio: shift.StartTime,
		HoraFin:    shift.EndTime,
		Actual:     shift.Contains(now),
	}, nil
}
