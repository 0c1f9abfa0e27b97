package transfer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Line es una línea candidata del traslado: un lote seleccionado con la
// cantidad solicitada tal cual la ingresó el usuario (sin parsear) y la
// cantidad disponible autoritativa reportada por la base de datos.
type Line struct {
	LotID       int64
	ProductID   int64
	InvoiceID   int64
	ProductName string
	Requested   string
	Available   decimal.Decimal
}

// LineViolation es una violación de validación en una línea concreta,
// etiquetada con el nombre del producto para distinguir errores simultáneos.
type LineViolation struct {
	LotID       int64
	ProductName string
	Reason      string
}

// ValidationError agrupa todas las violaciones del lote de traslado.
// O bien Global describe un error de la operación completa (bodegas iguales,
// selección vacía), o bien Lines contiene una violación por cada línea
// inválida; todas se reportan juntas, no solo la primera.
type ValidationError struct {
	Global string
	Lines  []LineViolation
}

// Error compone un mensaje legible con todas las violaciones.
func (e *ValidationError) Error() string {
	if e.Global != "" {
		return e.Global
	}
	msgs := make([]string, 0, len(e.Lines))
	for _, v := range e.Lines {
		msgs = append(msgs, fmt.Sprintf("%s: %s", v.ProductName, v.Reason))
	}
	return strings.Join(msgs, "; ")
}

// ValidatedLine es una línea validada con su cantidad ya numérica, lista para
// ejecutar.
type ValidatedLine struct {
	LotID     int64
	ProductID int64
	InvoiceID int64
	Quantity  decimal.Decimal
}

// PrecheckWarehouses aplica solo los chequeos globales (bodegas definidas y
// distintas, selección no vacía). Permite rechazar la operación antes de
// resolver las líneas contra los lotes reales. Devuelve nil si pasan.
func PrecheckWarehouses(sourceWarehouseID, destWarehouseID int64, selected int) error {
	if sourceWarehouseID == 0 || destWarehouseID == 0 || sourceWarehouseID == destWarehouseID {
		return &ValidationError{Global: "la bodega de origen y la de destino deben estar definidas y ser distintas"}
	}
	if selected == 0 {
		return &ValidationError{Global: "seleccione al menos un lote para trasladar"}
	}
	return nil
}

// Validate valida el lote de traslado completo antes de tocar la base de datos.
//
// Orden de chequeos:
//  1. Bodegas de origen y destino definidas y distintas (un solo mensaje).
//  2. Al menos un lote seleccionado (un solo mensaje).
//  3. Por cada línea: la cantidad parsea como número, es > 0 y no supera la
//     cantidad disponible del lote. Se evalúan todas las líneas y todas las
//     violaciones se devuelven juntas.
//
// Si todo pasa, devuelve las líneas con cantidades numéricas.
func Validate(sourceWarehouseID, destWarehouseID int64, lines []Line) ([]ValidatedLine, error) {
	if err := PrecheckWarehouses(sourceWarehouseID, destWarehouseID, len(lines)); err != nil {
		return nil, err
	}

	out := make([]ValidatedLine, 0, len(lines))
	var violations []LineViolation
	for _, l := range lines {
		qty, err := decimal.NewFromString(strings.TrimSpace(l.Requested))
		if err != nil || !qty.GreaterThan(decimal.Zero) {
			violations = append(violations, LineViolation{
				LotID:       l.LotID,
				ProductName: l.ProductName,
				Reason:      "la cantidad debe ser un número mayor que cero",
			})
			continue
		}
		if qty.GreaterThan(l.Available) {
			violations = append(violations, LineViolation{
				LotID:       l.LotID,
				ProductName: l.ProductName,
				Reason:      fmt.Sprintf("la cantidad %s supera el disponible %s", qty.String(), l.Available.String()),
			})
			continue
		}
		out = append(out, ValidatedLine{
			LotID:     l.LotID,
			ProductID: l.ProductID,
			InvoiceID: l.InvoiceID,
			Quantity:  qty,
		})
	}
	if len(violations) > 0 {
		return nil, &ValidationError{Lines: violations}
	}
	return out, nil
}
