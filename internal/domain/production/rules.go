package production

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Grupos de producto por proceso. El grupo determina qué productos son
// seleccionables al registrar producción en una máquina de ese tipo.
const (
	GroupExtrusion  int64 = 15
	GroupPeletizado int64 = 20
	GroupAglutinado int64 = 21
)

// IDs de catálogo de las medidas que las reglas conocen.
const (
	MedidaMetros int64 = 2 // metros lineales
	MedidaPeso   int64 = 5 // peso en kg
)

// ProductGroup deriva el grupo de producto a partir del nombre del tipo de
// máquina (subcadena, sin distinguir mayúsculas). Un tipo desconocido no tiene
// grupo: la lista de productos seleccionables queda vacía.
func ProductGroup(machineTypeName string) (int64, bool) {
	name := strings.ToLower(machineTypeName)
	switch {
	case strings.Contains(name, "peletizadora"):
		return GroupPeletizado, true
	case strings.Contains(name, "aglutinadora"):
		return GroupAglutinado, true
	case strings.Contains(name, "extrusora"):
		return GroupExtrusion, true
	}
	return 0, false
}

// RequiredMeasures deriva el conjunto de medidas obligatorias a partir del
// nombre del tipo de máquina. Las extrusoras registran peso y metros; las
// peletizadoras y aglutinadoras solo peso. Un tipo desconocido no exige medidas.
func RequiredMeasures(machineTypeName string) []int64 {
	name := strings.ToLower(machineTypeName)
	switch {
	case strings.Contains(name, "extrusora"):
		return []int64{MedidaPeso, MedidaMetros}
	case strings.Contains(name, "peletizadora"), strings.Contains(name, "aglutinadora"):
		return []int64{MedidaPeso}
	}
	return nil
}

// MeasureEntry es una medida en edición: la cantidad se mantiene como texto
// tal cual la teclea el operador y solo se parsea al construir el payload.
type MeasureEntry struct {
	MeasureID int64
	Quantity  string
}

// Reconcile ajusta la lista de medidas en edición al conjunto requerido:
// elimina las medidas que dejaron de ser requeridas, conserva intactas las que
// siguen siéndolo (incluida la cantidad ya tecleada) y agrega al final, con
// cantidad vacía, las requeridas que falten. Nunca duplica un MeasureID.
func Reconcile(entries []MeasureEntry, required []int64) []MeasureEntry {
	requiredSet := make(map[int64]bool, len(required))
	for _, id := range required {
		requiredSet[id] = true
	}

	out := make([]MeasureEntry, 0, len(required))
	present := make(map[int64]bool, len(entries))
	for _, e := range entries {
		if requiredSet[e.MeasureID] && !present[e.MeasureID] {
			out = append(out, e)
			present[e.MeasureID] = true
		}
	}
	for _, id := range required {
		if !present[id] {
			out = append(out, MeasureEntry{MeasureID: id})
		}
	}
	return out
}

// MeasureQuantity es una medida lista para enviar, con cantidad numérica.
type MeasureQuantity struct {
	MeasureID int64
	Quantity  decimal.Decimal
}

// BuildPayload convierte las medidas en edición al payload de envío.
// Solo se incluyen cantidades parseables estrictamente positivas; una cantidad
// vacía, no numérica o <= 0 se descarta en silencio (no es un error).
func BuildPayload(entries []MeasureEntry) []MeasureQuantity {
	out := make([]MeasureQuantity, 0, len(entries))
	for _, e := range entries {
		qty, err := decimal.NewFromString(strings.TrimSpace(e.Quantity))
		if err != nil || !qty.GreaterThan(decimal.Zero) {
			continue
		}
		out = append(out, MeasureQuantity{MeasureID: e.MeasureID, Quantity: qty})
	}
	return out
}
