package production

import (
	"github.com/plastigest/planta-api/internal/domain"
)

// Step es el paso actual del asistente de registro de producción.
// La secuencia es lineal y sin saltos; cada selección exige confirmación
// explícita antes de avanzar.
type Step int

const (
	StepMachineType Step = iota
	StepMachine
	StepOperator
	StepProduct
	StepMeasures
)

// String devuelve el nombre del paso para logs y mensajes.
func (s Step) String() string {
	switch s {
	case StepMachineType:
		return "tipo_maquina"
	case StepMachine:
		return "maquina"
	case StepOperator:
		return "operador"
	case StepProduct:
		return "producto"
	case StepMeasures:
		return "medidas"
	}
	return "desconocido"
}

// Option es un elemento seleccionable en un paso (tipo de máquina, máquina,
// operador o producto).
type Option struct {
	ID   int64
	Name string
}

// Selection es la foto del estado confirmado del asistente.
type Selection struct {
	MachineTypeID   int64
	MachineTypeName string
	MachineID       int64
	OperatorID      int64
	ProductID       int64
	Measures        []MeasureEntry
}

// Wizard es el asistente de registro de producción: una máquina de estados
// explícita con selección en dos fases (Stage → Confirm | Cancel).
//
// Confirmar un tipo de máquina distinto al ya confirmado invalida la máquina
// y el producto elegidos y reconcilia las medidas con el conjunto requerido
// por el nuevo tipo; re-confirmar el mismo tipo conserva todo. Retroceder con
// Back nunca pierde datos por sí solo.
type Wizard struct {
	step   Step
	staged *Option

	sel Selection

	activeMeasure int // índice de la medida en edición con el teclado; -1 si ninguna
}

// NewWizard crea un asistente vacío en el primer paso.
func NewWizard() *Wizard {
	return &Wizard{step: StepMachineType, activeMeasure: -1}
}

// Step devuelve el paso actual.
func (w *Wizard) Step() Step { return w.step }

// Selection devuelve una copia del estado confirmado.
func (w *Wizard) Selection() Selection {
	out := w.sel
	out.Measures = append([]MeasureEntry(nil), w.sel.Measures...)
	return out
}

// Stage propone una opción para el paso actual sin confirmarla todavía.
// En el paso de medidas no hay opciones que seleccionar.
func (w *Wizard) Stage(opt Option) error {
	if w.step == StepMeasures {
		return domain.ErrInvalidInput
	}
	staged := opt
	w.staged = &staged
	return nil
}

// Staged devuelve la opción propuesta pendiente de confirmación, si existe.
func (w *Wizard) Staged() (Option, bool) {
	if w.staged == nil {
		return Option{}, false
	}
	return *w.staged, true
}

// Cancel descarta la opción propuesta; el paso no cambia.
func (w *Wizard) Cancel() { w.staged = nil }

// Confirm compromete la opción propuesta en el modelo y avanza exactamente un
// paso. Sin opción propuesta no hay nada que confirmar.
func (w *Wizard) Confirm() error {
	if w.staged == nil {
		return domain.ErrInvalidInput
	}
	opt := *w.staged
	w.staged = nil

	switch w.step {
	case StepMachineType:
		w.commitMachineType(opt)
	case StepMachine:
		w.sel.MachineID = opt.ID
	case StepOperator:
		w.sel.OperatorID = opt.ID
	case StepProduct:
		w.sel.ProductID = opt.ID
	default:
		return domain.ErrInvalidInput
	}

	w.step++
	if w.step == StepMeasures {
		// Entrada al paso de medidas: asegurar que la lista refleja el
		// conjunto requerido por el tipo de máquina vigente.
		w.sel.Measures = Reconcile(w.sel.Measures, RequiredMeasures(w.sel.MachineTypeName))
		w.activeMeasure = -1
	}
	return nil
}

// commitMachineType aplica la regla de invalidación: un tipo distinto limpia
// máquina y producto y reconcilia las medidas; el mismo tipo conserva todo.
func (w *Wizard) commitMachineType(opt Option) {
	if w.sel.MachineTypeID == opt.ID && w.sel.MachineTypeName == opt.Name {
		return
	}
	w.sel.MachineTypeID = opt.ID
	w.sel.MachineTypeName = opt.Name
	w.sel.MachineID = 0
	w.sel.ProductID = 0
	w.sel.Measures = Reconcile(w.sel.Measures, RequiredMeasures(opt.Name))
}

// Back retrocede un paso. Los datos ya confirmados se conservan; solo una
// confirmación posterior distinta los invalida.
func (w *Wizard) Back() error {
	if w.step == StepMachineType {
		return domain.ErrInvalidInput
	}
	w.staged = nil
	w.step--
	return nil
}

// ── Edición de cantidades (teclado numérico) ─────────────────────────────────

// SetActiveMeasure marca la medida que recibe la entrada del teclado.
// Solo válido en el paso de medidas y para una medida presente en la lista.
func (w *Wizard) SetActiveMeasure(measureID int64) error {
	if w.step != StepMeasures {
		return domain.ErrInvalidInput
	}
	for i, e := range w.sel.Measures {
		if e.MeasureID == measureID {
			w.activeMeasure = i
			return nil
		}
	}
	return domain.ErrNotFound
}

// ActiveMeasure devuelve el ID de la medida activa, si hay una.
func (w *Wizard) ActiveMeasure() (int64, bool) {
	if w.activeMeasure < 0 || w.activeMeasure >= len(w.sel.Measures) {
		return 0, false
	}
	return w.sel.Measures[w.activeMeasure].MeasureID, true
}

// AppendDigit agrega un dígito (o el punto decimal) a la medida activa.
func (w *Wizard) AppendDigit(d rune) error {
	if w.activeMeasure < 0 {
		return domain.ErrInvalidInput
	}
	if (d < '0' || d > '9') && d != '.' {
		return domain.ErrInvalidInput
	}
	w.sel.Measures[w.activeMeasure].Quantity += string(d)
	return nil
}

// Backspace elimina el último carácter de la medida activa.
func (w *Wizard) Backspace() error {
	if w.activeMeasure < 0 {
		return domain.ErrInvalidInput
	}
	q := w.sel.Measures[w.activeMeasure].Quantity
	if q != "" {
		w.sel.Measures[w.activeMeasure].Quantity = q[:len(q)-1]
	}
	return nil
}

// ClearEntry vacía la cantidad de la medida activa.
func (w *Wizard) ClearEntry() error {
	if w.activeMeasure < 0 {
		return domain.ErrInvalidInput
	}
	w.sel.Measures[w.activeMeasure].Quantity = ""
	return nil
}

// ── Envío ────────────────────────────────────────────────────────────────────

// CanSubmit indica si la selección está completa (máquina, operador y
// producto confirmados). El turno vigente lo resuelve el caso de uso al
// registrar; si no hay turno, el registro falla allá.
func (w *Wizard) CanSubmit() bool {
	return w.sel.MachineID != 0 && w.sel.OperatorID != 0 && w.sel.ProductID != 0
}

// Payload construye las medidas a enviar: solo cantidades positivas parseables.
func (w *Wizard) Payload() []MeasureQuantity {
	return BuildPayload(w.sel.Measures)
}

// Reset vuelve el asistente al primer paso con todos los campos vacíos.
// Se invoca únicamente tras un registro exitoso; en caso de fallo el estado
// se conserva intacto para reintentar.
func (w *Wizard) Reset() {
	*w = Wizard{step: StepMachineType, activeMeasure: -1}
}
