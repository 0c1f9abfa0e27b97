package usecase

import (
	"time"

	"github.com/plastigest/planta-api/internal/application/dto"
	"github.com/plastigest/planta-api/internal/domain"
	"github.com/plastigest/planta-api/internal/domain/entity"
	"github.com/plastigest/planta-api/internal/domain/repository"
)

// MachineUseCase casos de uso CRUD para tipos de máquina y máquinas.
type MachineUseCase struct {
	typeRepo    repository.MachineTypeRepository
	machineRepo repository.MachineRepository
}

// NewMachineUseCase construye el caso de uso.
func NewMachineUseCase(typeRepo repository.MachineTypeRepository, machineRepo repository.MachineRepository) *MachineUseCase {
	return &MachineUseCase{typeRepo: typeRepo, machineRepo: machineRepo}
}

// ListTypes lista todos los tipos de máquina.
func (uc *MachineUseCase) ListTypes() (*dto.MachineTypeListResponse, error) {
	types, err := uc.typeRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MachineTypeDTO, 0, len(types))
	for _, t := range types {
		items = append(items, dto.MachineTypeDTO{ID: t.ID, Nombre: t.Name})
	}
	return &dto.MachineTypeListResponse{Success: true, TiposMaquina: items}, nil
}

// CreateType crea un tipo de máquina.
func (uc *MachineUseCase) CreateType(in dto.CreateMachineTypeRequest) (*dto.MachineTypeDTO, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	mt := &entity.MachineType{Name: in.Nombre, CreatedAt: now, UpdatedAt: now}
	if err := uc.typeRepo.Create(mt); err != nil {
		return nil, err
	}
	return &dto.MachineTypeDTO{ID: mt.ID, Nombre: mt.Name}, nil
}

// Create crea una máquina. El tipo debe existir.
func (uc *MachineUseCase) Create(in dto.CreateMachineRequest) (*dto.MachineDTO, error) {
	if in.Nombre == "" || in.IDTipoMaquina == 0 {
		return nil, domain.ErrInvalidInput
	}
	mt, err := uc.typeRepo.GetByID(in.IDTipoMaquina)
	if err != nil {
		return nil, err
	}
	if mt == nil {
		return nil, domain.ErrNotFound
	}
	status := in.Estado
	if status == "" {
		status = entity.MachineActive
	}
	now := time.Now()
	machine := &entity.Machine{
		MachineTypeID: in.IDTipoMaquina,
		Name:          in.Nombre,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.machineRepo.Create(machine); err != nil {
		return nil, err
	}
	return toMachineDTO(machine), nil
}

// GetByID obtiene una máquina por ID.
func (uc *MachineUseCase) GetByID(id int64) (*dto.MachineDTO, error) {
	machine, err := uc.machineRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, nil
	}
	return toMachineDTO(machine), nil
}

// Update actualiza una máquina.
func (uc *MachineUseCase) Update(id int64, in dto.UpdateMachineRequest) (*dto.MachineDTO, error) {
	machine, err := uc.machineRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, domain.ErrNotFound
	}
	if in.IDTipoMaquina != nil {
		mt, err := uc.typeRepo.GetByID(*in.IDTipoMaquina)
		if err != nil {
			return nil, err
		}
		if mt == nil {
			return nil, domain.ErrNotFound
		}
		machine.MachineTypeID = *in.IDTipoMaquina
	}
	if in.Nombre != nil {
		machine.Name = *in.Nombre
	}
	if in.Estado != nil {
		machine.Status = *in.Estado
	}
	machine.UpdatedAt = time.Now()
	if err := uc.machineRepo.Update(machine); err != nil {
		return nil, err
	}
	return toMachineDTO(machine), nil
}

// List lista máquinas con paginación.
func (uc *MachineUseCase) List(page dto.PageRequest) (*dto.MachineListResponse, error) {
	total, err := uc.machineRepo.Count()
	if err != nil {
		return nil, err
	}
	list, err := uc.machineRepo.List(page.Limite, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.MachineDTO, 0, len(list))
	for _, m := range list {
		items = append(items, *toMachineDTO(m))
	}
	return &dto.MachineListResponse{
		Success:    true,
		Maquinas:   items,
		Pagination: dto.NewPagination(page, total),
	}, nil
}

// Delete elimina una máquina por ID.
func (uc *MachineUseCase) Delete(id int64) error {
	machine, err := uc.machineRepo.GetByID(id)
	if err != nil {
		return err
	}
	if machine == nil {
		return domain.ErrNotFound
	}
	return uc.machineRepo.Delete(id)
}

func toMachineDTO(m *entity.Machine) *dto.MachineDTO {
	if m == nil {
		return nil
	}
	return &dto.MachineDTO{
		ID:            m.ID,
		IDTipoMaquina: m.MachineTypeID,
		Nombre:        m.Name,
		Estado:        m.Status,
	}
}
