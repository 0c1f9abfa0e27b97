package production_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plastigest/planta-api/internal/application/production"
	"github.com/plastigest/planta-api/internal/domain"
	"github.com/plastigest/planta-api/internal/domain/entity"
	domprod "github.com/plastigest/planta-api/internal/domain/production"
	"github.com/plastigest/planta-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memProductionRepo struct {
	nextID   int64
	events   []*entity.ProductionEvent
	measures []*entity.ProductionMeasure
	failAt   int // falla CreateMeasure en la n-ésima llamada (0 = nunca)
	calls    int
}

func (r *memProductionRepo) CreateEvent(ev *entity.ProductionEvent) error {
	r.nextID++
	ev.ID = r.nextID
	cp := *ev
	r.events = append(r.events, &cp)
	return nil
}

func (r *memProductionRepo) CreateMeasure(m *entity.ProductionMeasure) error {
	r.calls++
	if r.failAt > 0 && r.calls == r.failAt {
		return assert.AnError
	}
	r.nextID++
	m.ID = r.nextID
	cp := *m
	r.measures = append(r.measures, &cp)
	return nil
}

func (r *memProductionRepo) GetEvent(id int64) (*entity.ProductionEvent, error) {
	for _, ev := range r.events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return nil, nil
}

func (r *memProductionRepo) ListMeasures(productionID int64) ([]*entity.ProductionMeasure, error) {
	var out []*entity.ProductionMeasure
	for _, m := range r.measures {
		if m.ProductionID == productionID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memProductionRepo) ListEvents(limit, offset int) ([]*entity.ProductionEvent, error) {
	return r.events, nil
}

func (r *memProductionRepo) CountEvents() (int, error) { return len(r.events), nil }

// memTxRunner simula la transacción: ante error descarta lo escrito.
type memTxRunner struct {
	repo *memProductionRepo
}

func (tr *memTxRunner) Run(ctx context.Context, fn func(repository.ProductionRepository) error) error {
	snapEvents := len(tr.repo.events)
	snapMeasures := len(tr.repo.measures)
	if err := fn(tr.repo); err != nil {
		tr.repo.events = tr.repo.events[:snapEvents]
		tr.repo.measures = tr.repo.measures[:snapMeasures]
		return err
	}
	return nil
}

type memProductRepo struct{ products map[int64]*entity.Product }

func (r *memProductRepo) Create(p *entity.Product) error  { return nil }
func (r *memProductRepo) Update(p *entity.Product) error  { return nil }
func (r *memProductRepo) Delete(id int64) error           { return nil }
func (r *memProductRepo) Count() (int, error)             { return len(r.products), nil }
func (r *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) ListByGroup(groupID int64) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.GroupID == groupID {
			out = append(out, p)
		}
	}
	return out, nil
}

type memMachineRepo struct{ machines map[int64]*entity.Machine }

func (r *memMachineRepo) Create(m *entity.Machine) error { return nil }
func (r *memMachineRepo) Update(m *entity.Machine) error { return nil }
func (r *memMachineRepo) Delete(id int64) error          { return nil }
func (r *memMachineRepo) Count() (int, error)            { return len(r.machines), nil }
func (r *memMachineRepo) GetByID(id int64) (*entity.Machine, error) {
	return r.machines[id], nil
}
func (r *memMachineRepo) List(limit, offset int) ([]*entity.Machine, error) { return nil, nil }
func (r *memMachineRepo) ListByType(machineTypeID int64) ([]*entity.Machine, error) {
	var out []*entity.Machine
	for _, m := range r.machines {
		if m.MachineTypeID == machineTypeID {
			out = append(out, m)
		}
	}
	return out, nil
}

type memMachineTypeRepo struct{ types map[int64]*entity.MachineType }

func (r *memMachineTypeRepo) Create(mt *entity.MachineType) error { return nil }
func (r *memMachineTypeRepo) Update(mt *entity.MachineType) error { return nil }
func (r *memMachineTypeRepo) Delete(id int64) error               { return nil }
func (r *memMachineTypeRepo) GetByID(id int64) (*entity.MachineType, error) {
	return r.types[id], nil
}
func (r *memMachineTypeRepo) List() ([]*entity.MachineType, error) { return nil, nil }

type memUserRepo struct{ users map[int64]*entity.User }

func (r *memUserRepo) Create(u *entity.User) error               { return nil }
func (r *memUserRepo) Update(u *entity.User) error               { return nil }
func (r *memUserRepo) Count() (int, error)                       { return len(r.users), nil }
func (r *memUserRepo) GetByID(id int64) (*entity.User, error)    { return r.users[id], nil }
func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) { return nil, nil }
func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }
func (r *memUserRepo) ListByRole(role string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

type memShiftRepo struct{ shifts []*entity.Shift }

func (r *memShiftRepo) Create(s *entity.Shift) error { return nil }
func (r *memShiftRepo) Update(s *entity.Shift) error { return nil }
func (r *memShiftRepo) Delete(id int64) error        { return nil }
func (r *memShiftRepo) GetByID(id int64) (*entity.Shift, error) {
	for _, s := range r.shifts {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}
func (r *memShiftRepo) List() ([]*entity.Shift, error) { return r.shifts, nil }

type memMeasureRepo struct{ measures map[int64]*entity.Measure }

func (r *memMeasureRepo) GetByID(id int64) (*entity.Measure, error) { return r.measures[id], nil }
func (r *memMeasureRepo) List() ([]*entity.Measure, error) {
	var out []*entity.Measure
	for _, m := range r.measures {
		out = append(out, m)
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Arnés
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc       *production.UseCase
	prodRepo *memProductionRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	prodRepo := &memProductionRepo{}
	uc := production.NewUseCase(
		&memTxRunner{repo: prodRepo},
		prodRepo,
		&memProductRepo{products: map[int64]*entity.Product{
			30: {ID: 30, Code: "MAN-12", Name: "Manguera 1/2", GroupID: domprod.GroupExtrusion},
			31: {ID: 31, Code: "PEL-01", Name: "Pellet PET", GroupID: domprod.GroupPeletizado},
		}},
		&memMachineRepo{machines: map[int64]*entity.Machine{
			10: {ID: 10, MachineTypeID: 1, Name: "Extrusora 1", Status: entity.MachineActive},
			11: {ID: 11, MachineTypeID: 2, Name: "Peletizadora A", Status: entity.MachineActive},
		}},
		&memMachineTypeRepo{types: map[int64]*entity.MachineType{
			1: {ID: 1, Name: "Extrusora"},
			2: {ID: 2, Name: "Peletizadora"},
			3: {ID: 3, Name: "Molino"},
		}},
		&memUserRepo{users: map[int64]*entity.User{
			20: {ID: 20, Name: "Juan", Role: entity.RoleOperador, Status: "active"},
		}},
		&memShiftRepo{shifts: []*entity.Shift{
			{ID: 1, Name: "Mañana", StartTime: "06:00", EndTime: "14:00"},
			{ID: 2, Name: "Tarde", StartTime: "14:00", EndTime: "22:00"},
		}},
		&memMeasureRepo{measures: map[int64]*entity.Measure{
			domprod.MedidaPeso:   {ID: domprod.MedidaPeso, Name: "Peso", Unit: "kg"},
			domprod.MedidaMetros: {ID: domprod.MedidaMetros, Name: "Metros", Unit: "m"},
		}},
	)
	return &fixture{uc: uc, prodRepo: prodRepo}
}

func at(hhmm string) time.Time {
	ts, err := time.Parse("2006-01-02 15:04", "2026-03-10 "+hhmm)
	if err != nil {
		panic(err)
	}
	return ts
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas de opciones
// ──────────────────────────────────────────────────────────────────────────────

func TestMachinesForType(t *testing.T) {
	f := newFixture(t)
	machines, err := f.uc.MachinesForType(1)
	require.NoError(t, err)
	require.Len(t, machines, 1)
	assert.Equal(t, "Extrusora 1", machines[0].Name)
}

func TestMachinesForType_TipoInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.MachinesForType(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductsForMachineType_FiltraPorGrupoDerivado(t *testing.T) {
	f := newFixture(t)

	products, err := f.uc.ProductsForMachineType(1) // Extrusora → grupo 15
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Manguera 1/2", products[0].Name)

	products, err = f.uc.ProductsForMachineType(2) // Peletizadora → grupo 20
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Pellet PET", products[0].Name)
}

func TestProductsForMachineType_TipoSinGrupoDevuelveVacio(t *testing.T) {
	f := newFixture(t)
	products, err := f.uc.ProductsForMachineType(3) // Molino: sin grupo derivable
	require.NoError(t, err)
	assert.Empty(t, products, "un tipo sin grupo produce lista vacía, no error")
}

func TestMeasuresForMachineType_ResueltasEnOrden(t *testing.T) {
	f := newFixture(t)
	measures, err := f.uc.MeasuresForMachineType(1)
	require.NoError(t, err)
	require.Len(t, measures, 2)
	assert.Equal(t, "Peso", measures[0].Name)
	assert.Equal(t, "Metros", measures[1].Name)
}

func TestCurrentShift(t *testing.T) {
	f := newFixture(t)

	shift, err := f.uc.CurrentShift(at("09:30"))
	require.NoError(t, err)
	assert.Equal(t, "Mañana", shift.Name)

	// Límite inferior inclusivo, superior exclusivo: a las 14:00 rige Tarde.
	shift, err = f.uc.CurrentShift(at("14:00"))
	require.NoError(t, err)
	assert.Equal(t, "Tarde", shift.Name)

	_, err = f.uc.CurrentShift(at("23:30"))
	assert.ErrorIs(t, err, domain.ErrNoCurrentShift)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de producción
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaEventoYMedidas(t *testing.T) {
	f := newFixture(t)

	ev, measures, err := f.uc.Register(context.Background(), production.RegisterInput{
		ProductID: 30,
		MachineID: 10,
		UserID:    20,
		ShiftID:   1,
		Date:      at("09:00"),
		Measures: []production.MeasureInput{
			{MeasureID: domprod.MedidaPeso, Quantity: decimal.RequireFromString("12.5")},
			{MeasureID: domprod.MedidaMetros, Quantity: decimal.RequireFromString("80")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, ev)
	assert.NotZero(t, ev.ID)
	assert.NotEmpty(t, ev.TransactionID, "el evento lleva un transaction_id que agrupa sus medidas")

	require.Len(t, measures, 2)
	for _, m := range measures {
		assert.Equal(t, ev.ID, m.ProductionID)
	}
	assert.Len(t, f.prodRepo.events, 1)
	assert.Len(t, f.prodRepo.measures, 2)
}

func TestRegister_DescartaMedidasNoPositivas(t *testing.T) {
	f := newFixture(t)

	_, measures, err := f.uc.Register(context.Background(), production.RegisterInput{
		ProductID: 30,
		MachineID: 10,
		UserID:    20,
		ShiftID:   1,
		Date:      at("09:00"),
		Measures: []production.MeasureInput{
			{MeasureID: domprod.MedidaPeso, Quantity: decimal.RequireFromString("12.5")},
			{MeasureID: domprod.MedidaMetros, Quantity: decimal.Zero},
		},
	})
	require.NoError(t, err)
	require.Len(t, measures, 1, "la medida en cero se descarta en silencio")
	assert.Equal(t, domprod.MedidaPeso, measures[0].MeasureID)
}

func TestRegister_TurnoCeroUsaElVigente(t *testing.T) {
	f := newFixture(t)

	ev, _, err := f.uc.Register(context.Background(), production.RegisterInput{
		ProductID: 30,
		MachineID: 10,
		UserID:    20,
		ShiftID:   0,
		Date:      at("15:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), ev.ShiftID, "a las 15:00 rige el turno Tarde")
}

func TestRegister_SinTurnoVigenteFalla(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.uc.Register(context.Background(), production.RegisterInput{
		ProductID: 30,
		MachineID: 10,
		UserID:    20,
		ShiftID:   0,
		Date:      at("23:30"),
	})
	assert.ErrorIs(t, err, domain.ErrNoCurrentShift)
	assert.Empty(t, f.prodRepo.events, "nada se persiste si el registro falla")
}

func TestRegister_ProductoDeOtroGrupoFalla(t *testing.T) {
	f := newFixture(t)

	// Pellet PET (grupo peletizado) en una extrusora.
	_, _, err := f.uc.Register(context.Background(), production.RegisterInput{
		ProductID: 31,
		MachineID: 10,
		UserID:    20,
		ShiftID:   1,
		Date:      at("09:00"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_ReferenciasInexistentes(t *testing.T) {
	f := newFixture(t)
	base := production.RegisterInput{ProductID: 30, MachineID: 10, UserID: 20, ShiftID: 1, Date: at("09:00")}

	in := base
	in.MachineID = 99
	_, _, err := f.uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	in = base
	in.ProductID = 99
	_, _, err = f.uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	in = base
	in.UserID = 99
	_, _, err = f.uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	in = base
	in.ShiftID = 99
	_, _, err = f.uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_FalloEnUnaMedidaRevierteTodo(t *testing.T) {
	f := newFixture(t)
	f.prodRepo.failAt = 2 // la segunda medida falla dentro de la tx

	_, _, err := f.uc.Register(context.Background(), production.RegisterInput{
		ProductID: 30,
		MachineID: 10,
		UserID:    20,
		ShiftID:   1,
		Date:      at("09:00"),
		Measures: []production.MeasureInput{
			{MeasureID: domprod.MedidaPeso, Quantity: decimal.RequireFromString("1")},
			{MeasureID: domprod.MedidaMetros, Quantity: decimal.RequireFromString("2")},
		},
	})
	require.Error(t, err)
	assert.Empty(t, f.prodRepo.events, "la transacción revierte el evento")
	assert.Empty(t, f.prodRepo.measures, "la transacción revierte las medidas ya insertadas")
}
