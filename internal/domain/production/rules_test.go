package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plastigest/planta-api/internal/domain/production"
)

// ──────────────────────────────────────────────────────────────────────────────
// ProductGroup — derivación del grupo a partir del nombre del tipo de máquina
// ──────────────────────────────────────────────────────────────────────────────

func TestProductGroup_PorNombreDeTipo(t *testing.T) {
	cases := []struct {
		name  string
		group int64
		ok    bool
	}{
		{"Peletizadora A", production.GroupPeletizado, true},
		{"peletizadora industrial 2", production.GroupPeletizado, true},
		{"Aglutinadora", production.GroupAglutinado, true},
		{"Extrusora 1", production.GroupExtrusion, true},
		{"EXTRUSORA DOBLE", production.GroupExtrusion, true},
		{"Molino", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		group, ok := production.ProductGroup(tc.name)
		assert.Equal(t, tc.ok, ok, "nombre %q", tc.name)
		assert.Equal(t, tc.group, group, "nombre %q", tc.name)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RequiredMeasures — medidas obligatorias por tipo de máquina
// ──────────────────────────────────────────────────────────────────────────────

func TestRequiredMeasures_ExtrusoraPesoYMetros(t *testing.T) {
	got := production.RequiredMeasures("Extrusora 1")
	require.Equal(t, []int64{production.MedidaPeso, production.MedidaMetros}, got,
		"una extrusora registra peso y metros, en ese orden")
}

func TestRequiredMeasures_PeletizadoraSoloPeso(t *testing.T) {
	got := production.RequiredMeasures("Peletizadora A")
	require.Equal(t, []int64{production.MedidaPeso}, got)
}

func TestRequiredMeasures_AglutinadoraSoloPeso(t *testing.T) {
	got := production.RequiredMeasures("Aglutinadora B")
	require.Equal(t, []int64{production.MedidaPeso}, got)
}

func TestRequiredMeasures_TipoDesconocidoSinMedidas(t *testing.T) {
	assert.Empty(t, production.RequiredMeasures("Molino"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Reconcile — ajuste de la lista en edición al conjunto requerido
// ──────────────────────────────────────────────────────────────────────────────

func TestReconcile_ConservaCantidadesDeLasQueSiguen(t *testing.T) {
	entries := []production.MeasureEntry{
		{MeasureID: production.MedidaPeso, Quantity: "12.5"},
		{MeasureID: production.MedidaMetros, Quantity: "80"},
	}
	// De extrusora a peletizadora: metros deja de ser requerida.
	got := production.Reconcile(entries, []int64{production.MedidaPeso})
	require.Len(t, got, 1)
	assert.Equal(t, production.MedidaPeso, got[0].MeasureID)
	assert.Equal(t, "12.5", got[0].Quantity, "la cantidad ya tecleada se conserva intacta")
}

func TestReconcile_AgregaFaltantesVaciasAlFinal(t *testing.T) {
	entries := []production.MeasureEntry{
		{MeasureID: production.MedidaPeso, Quantity: "3"},
	}
	// De peletizadora a extrusora: metros se agrega vacía al final.
	got := production.Reconcile(entries, []int64{production.MedidaPeso, production.MedidaMetros})
	require.Len(t, got, 2)
	assert.Equal(t, production.MedidaPeso, got[0].MeasureID)
	assert.Equal(t, "3", got[0].Quantity)
	assert.Equal(t, production.MedidaMetros, got[1].MeasureID)
	assert.Equal(t, "", got[1].Quantity)
}

func TestReconcile_NuncaDuplica(t *testing.T) {
	entries := []production.MeasureEntry{
		{MeasureID: production.MedidaPeso, Quantity: "1"},
		{MeasureID: production.MedidaPeso, Quantity: "2"},
	}
	got := production.Reconcile(entries, []int64{production.MedidaPeso, production.MedidaMetros})
	require.Len(t, got, 2)
	assert.Equal(t, production.MedidaPeso, got[0].MeasureID)
	assert.Equal(t, "1", got[0].Quantity, "ante duplicados sobrevive la primera entrada")
	assert.Equal(t, production.MedidaMetros, got[1].MeasureID)
}

func TestReconcile_ListaVaciaCreaTodasVacias(t *testing.T) {
	got := production.Reconcile(nil, []int64{production.MedidaPeso, production.MedidaMetros})
	require.Len(t, got, 2)
	for _, e := range got {
		assert.Equal(t, "", e.Quantity)
	}
}

func TestReconcile_EsIdempotente(t *testing.T) {
	entries := []production.MeasureEntry{
		{MeasureID: production.MedidaPeso, Quantity: "7.25"},
		{MeasureID: production.MedidaMetros, Quantity: ""},
	}
	required := []int64{production.MedidaPeso, production.MedidaMetros}
	once := production.Reconcile(entries, required)
	twice := production.Reconcile(once, required)
	assert.Equal(t, once, twice)
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildPayload — solo cantidades positivas parseables
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildPayload_DescartaVaciasYNoPositivas(t *testing.T) {
	entries := []production.MeasureEntry{
		{MeasureID: production.MedidaPeso, Quantity: "12.5"},
		{MeasureID: production.MedidaMetros, Quantity: ""},
	}
	got := production.BuildPayload(entries)
	require.Len(t, got, 1, "la medida con cantidad vacía no entra al payload")
	assert.Equal(t, production.MedidaPeso, got[0].MeasureID)
	assert.Equal(t, "12.5", got[0].Quantity.String())
}

func TestBuildPayload_CantidadesInvalidas(t *testing.T) {
	entries := []production.MeasureEntry{
		{MeasureID: 1, Quantity: "0"},
		{MeasureID: 2, Quantity: "-3"},
		{MeasureID: 3, Quantity: "abc"},
		{MeasureID: 4, Quantity: "  8 "},
		{MeasureID: 5, Quantity: "0.001"},
	}
	got := production.BuildPayload(entries)
	require.Len(t, got, 2)
	assert.Equal(t, int64(4), got[0].MeasureID, "los espacios alrededor no invalidan la cantidad")
	assert.Equal(t, int64(5), got[1].MeasureID)
}

func TestBuildPayload_SinEntradasDevuelveVacio(t *testing.T) {
	assert.Empty(t, production.BuildPayload(nil))
}
