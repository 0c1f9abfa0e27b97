package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/plastigest/planta-api/internal/domain"
	"github.com/plastigest/planta-api/internal/domain/entity"
	domprod "github.com/plastigest/planta-api/internal/domain/production"
	"github.com/plastigest/planta-api/internal/domain/repository"
)

// UseCase resuelve las consultas de opciones del asistente de producción
// (máquinas por tipo, productos por grupo derivado, medidas requeridas, turno
// vigente) y registra eventos de producción de forma transaccional.
type UseCase struct {
	txRunner        TxRunner
	prodRepo        repository.ProductionRepository // lecturas fuera de tx
	productRepo     repository.ProductRepository
	machineRepo     repository.MachineRepository
	machineTypeRepo repository.MachineTypeRepository
	userRepo        repository.UserRepository
	shiftRepo       repository.ShiftRepository
	measureRepo     repository.MeasureRepository
	now             func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	prodRepo repository.ProductionRepository,
	productRepo repository.ProductRepository,
	machineRepo repository.MachineRepository,
	machineTypeRepo repository.MachineTypeRepository,
	userRepo repository.UserRepository,
	shiftRepo repository.ShiftRepository,
	measureRepo repository.MeasureRepository,
) *UseCase {
	return &UseCase{
		txRunner:        txRunner,
		prodRepo:        prodRepo,
		productRepo:     productRepo,
		machineRepo:     machineRepo,
		machineTypeRepo: machineTypeRepo,
		userRepo:        userRepo,
		shiftRepo:       shiftRepo,
		measureRepo:     measureRepo,
		now:             time.Now,
	}
}

// MachinesForType lista las máquinas del tipo elegido (lista dependiente del
// primer paso del asistente).
func (uc *UseCase) MachinesForType(machineTypeID int64) ([]*entity.Machine, error) {
	mt, err := uc.machineTypeRepo.GetByID(machineTypeID)
	if err != nil {
		return nil, err
	}
	if mt == nil {
		return nil, domain.ErrNotFound
	}
	return uc.machineRepo.ListByType(machineTypeID)
}

// ProductsForMachineType lista los productos seleccionables para el tipo de
// máquina: los del grupo derivado del nombre del tipo. Un tipo sin grupo
// derivable produce una lista vacía, no un error.
func (uc *UseCase) ProductsForMachineType(machineTypeID int64) ([]*entity.Product, error) {
	mt, err := uc.machineTypeRepo.GetByID(machineTypeID)
	if err != nil {
		return nil, err
	}
	if mt == nil {
		return nil, domain.ErrNotFound
	}
	group, ok := domprod.ProductGroup(mt.Name)
	if !ok {
		return []*entity.Product{}, nil
	}
	return uc.productRepo.ListByGroup(group)
}

// MeasuresForMachineType devuelve las medidas requeridas para el tipo de
// máquina, en el orden que define la regla, resueltas contra el catálogo.
func (uc *UseCase) MeasuresForMachineType(machineTypeID int64) ([]*entity.Measure, error) {
	mt, err := uc.machineTypeRepo.GetByID(machineTypeID)
	if err != nil {
		return nil, err
	}
	if mt == nil {
		return nil, domain.ErrNotFound
	}
	required := domprod.RequiredMeasures(mt.Name)
	out := make([]*entity.Measure, 0, len(required))
	for _, id := range required {
		m, err := uc.measureRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, domain.ErrNotFound
		}
		out = append(out, m)
	}
	return out, nil
}

// MeasureCatalog devuelve el catálogo completo de medidas.
func (uc *UseCase) MeasureCatalog() ([]*entity.Measure, error) {
	return uc.measureRepo.List()
}

// CurrentShift devuelve el turno vigente según la hora dada.
func (uc *UseCase) CurrentShift(now time.Time) (*entity.Shift, error) {
	shifts, err := uc.shiftRepo.List()
	if err != nil {
		return nil, err
	}
	for _, s := range shifts {
		if s.Contains(now) {
			return s, nil
		}
	}
	return nil, domain.ErrNoCurrentShift
}

// MeasureInput una medida del registro, ya numérica.
type MeasureInput struct {
	MeasureID int64
	Quantity  decimal.Decimal
}

// RegisterInput entrada para registrar un evento de producción.
// ShiftID en cero usa el turno vigente; Date en cero usa la hora actual.
type RegisterInput struct {
	ProductID int64
	MachineID int64
	UserID    int64
	ShiftID   int64
	Date      time.Time
	Measures  []MeasureInput
}

// Register valida las referencias, descarta en silencio las medidas con
// cantidad no positiva y crea el evento con sus medidas en una sola
// transacción. En caso de error no se persiste nada.
func (uc *UseCase) Register(ctx context.Context, in RegisterInput) (*entity.ProductionEvent, []entity.ProductionMeasure, error) {
	if in.ProductID == 0 || in.MachineID == 0 || in.UserID == 0 {
		return nil, nil, domain.ErrInvalidInput
	}

	machine, err := uc.machineRepo.GetByID(in.MachineID)
	if err != nil {
		return nil, nil, err
	}
	if machine == nil {
		return nil, nil, domain.ErrNotFound
	}
	mt, err := uc.machineTypeRepo.GetByID(machine.MachineTypeID)
	if err != nil {
		return nil, nil, err
	}
	if mt == nil {
		return nil, nil, domain.ErrNotFound
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, domain.ErrNotFound
	}
	// El producto debe pertenecer al grupo que corresponde al tipo de máquina.
	if group, ok := domprod.ProductGroup(mt.Name); ok && product.GroupID != group {
		return nil, nil, domain.ErrInvalidInput
	}

	operator, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, nil, err
	}
	if operator == nil {
		return nil, nil, domain.ErrUserNotFound
	}

	now := uc.now()
	date := in.Date
	if date.IsZero() {
		date = now
	}

	shiftID := in.ShiftID
	if shiftID == 0 {
		shift, err := uc.CurrentShift(date)
		if err != nil {
			return nil, nil, err
		}
		shiftID = shift.ID
	} else {
		shift, err := uc.shiftRepo.GetByID(shiftID)
		if err != nil {
			return nil, nil, err
		}
		if shift == nil {
			return nil, nil, domain.ErrNotFound
		}
	}

	// Solo cantidades estrictamente positivas entran al registro.
	measures := make([]MeasureInput, 0, len(in.Measures))
	for _, m := range in.Measures {
		if m.Quantity.GreaterThan(decimal.Zero) {
			measures = append(measures, m)
		}
	}

	ev := &entity.ProductionEvent{
		TransactionID: uuid.New().String(),
		ProductID:     in.ProductID,
		MachineID:     in.MachineID,
		UserID:        in.UserID,
		ShiftID:       shiftID,
		Date:          date,
		CreatedAt:     now,
	}
	var created []entity.ProductionMeasure

	err = uc.txRunner.Run(ctx, func(prodRepo repository.ProductionRepository) error {
		if err := prodRepo.CreateEvent(ev); err != nil {
			return err
		}
		for _, m := range measures {
			pm := &entity.ProductionMeasure{
				ProductionID: ev.ID,
				MeasureID:    m.MeasureID,
				Quantity:     m.Quantity,
			}
			if err := prodRepo.CreateMeasure(pm); err != nil {
				return err
			}
			created = append(created, *pm)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return ev, created, nil
}

// ListEvents lista eventos de producción con paginación.
func (uc *UseCase) ListEvents(limit, offset int) ([]*entity.ProductionEvent, int, error) {
	total, err := uc.prodRepo.CountEvents()
	if err != nil {
		return nil, 0, err
	}
	events, err := uc.prodRepo.ListEvents(limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// MeasuresForEvent lista las medidas registradas de un evento.
func (uc *UseCase) MeasuresForEvent(productionID int64) ([]*entity.ProductionMeasure, error) {
	return uc.prodRepo.ListMeasures(productionID)
}
