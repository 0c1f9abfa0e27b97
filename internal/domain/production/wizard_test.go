package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plastigest/planta-api/internal/domain/production"
)

var (
	optExtrusoraTipo    = production.Option{ID: 1, Name: "Extrusora"}
	optPeletizadoraTipo = production.Option{ID: 2, Name: "Peletizadora"}
	optMaquina          = production.Option{ID: 10, Name: "Extrusora 1"}
	optOperador         = production.Option{ID: 20, Name: "Juan"}
	optProducto         = production.Option{ID: 30, Name: "Manguera 1/2"}
)

// avanza el asistente hasta el paso de medidas con el tipo dado.
func wizardAtMeasures(t *testing.T, machineType production.Option) *production.Wizard {
	t.Helper()
	w := production.NewWizard()
	for _, opt := range []production.Option{machineType, optMaquina, optOperador, optProducto} {
		require.NoError(t, w.Stage(opt))
		require.NoError(t, w.Confirm())
	}
	require.Equal(t, production.StepMeasures, w.Step())
	return w
}

// ──────────────────────────────────────────────────────────────────────────────
// Selección en dos fases
// ──────────────────────────────────────────────────────────────────────────────

func TestWizard_StageNoCompromete(t *testing.T) {
	w := production.NewWizard()
	require.NoError(t, w.Stage(optExtrusoraTipo))

	staged, ok := w.Staged()
	assert.True(t, ok)
	assert.Equal(t, optExtrusoraTipo, staged)

	// Sin confirmar, el modelo sigue vacío y el paso no avanza.
	assert.Equal(t, production.StepMachineType, w.Step())
	assert.Zero(t, w.Selection().MachineTypeID)
}

func TestWizard_CancelDescartaLaPropuesta(t *testing.T) {
	w := production.NewWizard()
	require.NoError(t, w.Stage(optExtrusoraTipo))
	w.Cancel()

	_, ok := w.Staged()
	assert.False(t, ok)
	assert.Equal(t, production.StepMachineType, w.Step())
	assert.Zero(t, w.Selection().MachineTypeID)
}

func TestWizard_ConfirmComprometeYAvanzaUnPaso(t *testing.T) {
	w := production.NewWizard()
	require.NoError(t, w.Stage(optExtrusoraTipo))
	require.NoError(t, w.Confirm())

	assert.Equal(t, production.StepMachine, w.Step())
	assert.Equal(t, optExtrusoraTipo.ID, w.Selection().MachineTypeID)

	_, ok := w.Staged()
	assert.False(t, ok, "confirmar consume la propuesta")
}

func TestWizard_ConfirmSinPropuestaFalla(t *testing.T) {
	w := production.NewWizard()
	assert.Error(t, w.Confirm())
}

func TestWizard_SecuenciaCompletaHastaMedidas(t *testing.T) {
	w := wizardAtMeasures(t, optExtrusoraTipo)

	sel := w.Selection()
	assert.Equal(t, optMaquina.ID, sel.MachineID)
	assert.Equal(t, optOperador.ID, sel.OperatorID)
	assert.Equal(t, optProducto.ID, sel.ProductID)

	// Al entrar al paso de medidas la lista refleja el conjunto requerido.
	require.Len(t, sel.Measures, 2)
	assert.Equal(t, production.MedidaPeso, sel.Measures[0].MeasureID)
	assert.Equal(t, production.MedidaMetros, sel.Measures[1].MeasureID)
	assert.True(t, w.CanSubmit())
}

// ──────────────────────────────────────────────────────────────────────────────
// Retroceso e invalidación
// ──────────────────────────────────────────────────────────────────────────────

func TestWizard_BackConservaDatos(t *testing.T) {
	w := wizardAtMeasures(t, optExtrusoraTipo)

	require.NoError(t, w.Back()) // medidas → producto
	require.NoError(t, w.Back()) // producto → operador
	assert.Equal(t, production.StepOperator, w.Step())

	sel := w.Selection()
	assert.Equal(t, optProducto.ID, sel.ProductID, "retroceder no borra el producto confirmado")
	assert.Equal(t, optOperador.ID, sel.OperatorID)
}

func TestWizard_BackEnPrimerPasoFalla(t *testing.T) {
	w := production.NewWizard()
	assert.Error(t, w.Back())
}

func TestWizard_ReconfirmarMismoTipoConservaTodo(t *testing.T) {
	w := wizardAtMeasures(t, optExtrusoraTipo)
	require.NoError(t, w.SetActiveMeasure(production.MedidaPeso))
	require.NoError(t, w.AppendDigit('9'))

	// Volver al primer paso y re-confirmar el mismo tipo.
	for w.Step() != production.StepMachineType {
		require.NoError(t, w.Back())
	}
	require.NoError(t, w.Stage(optExtrusoraTipo))
	require.NoError(t, w.Confirm())

	sel := w.Selection()
	assert.Equal(t, optMaquina.ID, sel.MachineID, "el mismo tipo no invalida la máquina")
	assert.Equal(t, optProducto.ID, sel.ProductID)
	require.Len(t, sel.Measures, 2)
	assert.Equal(t, "9", sel.Measures[0].Quantity, "la cantidad tecleada sobrevive")
}

func TestWizard_ConfirmarOtroTipoInvalidaMaquinaYProducto(t *testing.T) {
	w := wizardAtMeasures(t, optExtrusoraTipo)
	require.NoError(t, w.SetActiveMeasure(production.MedidaPeso))
	require.NoError(t, w.AppendDigit('5'))

	for w.Step() != production.StepMachineType {
		require.NoError(t, w.Back())
	}
	require.NoError(t, w.Stage(optPeletizadoraTipo))
	require.NoError(t, w.Confirm())

	sel := w.Selection()
	assert.Equal(t, optPeletizadoraTipo.ID, sel.MachineTypeID)
	assert.Zero(t, sel.MachineID, "otro tipo invalida la máquina elegida")
	assert.Zero(t, sel.ProductID, "otro tipo invalida el producto elegido")
	assert.Equal(t, optOperador.ID, sel.OperatorID, "el operador no depende del tipo")

	// Las medidas se reconcilian: peso sobrevive con su cantidad, metros cae.
	require.Len(t, sel.Measures, 1)
	assert.Equal(t, production.MedidaPeso, sel.Measures[0].MeasureID)
	assert.Equal(t, "5", sel.Measures[0].Quantity)

	assert.False(t, w.CanSubmit(), "con máquina y producto invalidados no se puede enviar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Teclado numérico
// ──────────────────────────────────────────────────────────────────────────────

func TestWizard_TecladoEditaLaMedidaActiva(t *testing.T) {
	w := wizardAtMeasures(t, optExtrusoraTipo)

	require.NoError(t, w.SetActiveMeasure(production.MedidaPeso))
	id, ok := w.ActiveMeasure()
	require.True(t, ok)
	assert.Equal(t, production.MedidaPeso, id)

	require.NoError(t, w.AppendDigit('1'))
	require.NoError(t, w.AppendDigit('2'))
	require.NoError(t, w.AppendDigit('.'))
	require.NoError(t, w.AppendDigit('5'))
	assert.Equal(t, "12.5", w.Selection().Measures[0].Quantity)

	require.NoError(t, w.Backspace())
	assert.Equal(t, "12.", w.Selection().Measures[0].Quantity)

	require.NoError(t, w.ClearEntry())
	assert.Equal(t, "", w.Selection().Measures[0].Quantity)
	require.NoError(t, w.Backspace(), "backspace sobre cantidad vacía no falla")
}

func TestWizard_TecladoRechazaCaracteresNoNumericos(t *testing.T) {
	w := wizardAtMeasures(t, optExtrusoraTipo)
	require.NoError(t, w.SetActiveMeasure(production.MedidaPeso))
	assert.Error(t, w.AppendDigit('x'))
	assert.Error(t, w.AppendDigit('-'))
}

func TestWizard_TecladoSinMedidaActivaFalla(t *testing.T) {
	w := wizardAtMeasures(t, optExtrusoraTipo)
	assert.Error(t, w.AppendDigit('1'))
	assert.Error(t, w.Backspace())
	assert.Error(t, w.ClearEntry())
}

func TestWizard_SetActiveMeasureFueraDelPasoDeMedidasFalla(t *testing.T) {
	w := production.NewWizard()
	assert.Error(t, w.SetActiveMeasure(production.MedidaPeso))
}

func TestWizard_SetActiveMeasureDesconocidaFalla(t *testing.T) {
	w := wizardAtMeasures(t, optPeletizadoraTipo)
	assert.Error(t, w.SetActiveMeasure(production.MedidaMetros),
		"una peletizadora no registra metros")
}

// ──────────────────────────────────────────────────────────────────────────────
// Payload y reset
// ──────────────────────────────────────────────────────────────────────────────

func TestWizard_PayloadSoloCantidadesPositivas(t *testing.T) {
	w := wizardAtMeasures(t, optExtrusoraTipo)
	require.NoError(t, w.SetActiveMeasure(production.MedidaPeso))
	require.NoError(t, w.AppendDigit('7'))
	// Metros queda vacía a propósito.

	payload := w.Payload()
	require.Len(t, payload, 1)
	assert.Equal(t, production.MedidaPeso, payload[0].MeasureID)
	assert.Equal(t, "7", payload[0].Quantity.String())
}

func TestWizard_ResetVuelveAlPrimerPasoVacio(t *testing.T) {
	w := wizardAtMeasures(t, optExtrusoraTipo)
	w.Reset()

	assert.Equal(t, production.StepMachineType, w.Step())
	sel := w.Selection()
	assert.Zero(t, sel.MachineTypeID)
	assert.Zero(t, sel.MachineID)
	assert.Zero(t, sel.OperatorID)
	assert.Zero(t, sel.ProductID)
	assert.Empty(t, sel.Measures)
	assert.False(t, w.CanSubmit())
}

func TestWizard_StageEnPasoDeMedidasFalla(t *testing.T) {
	w := wizardAtMeasures(t, optExtrusoraTipo)
	assert.Error(t, w.Stage(optProducto))
}
