package production

import (
	"context"

	"github.com/plastigest/planta-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando el
// repositorio de producción atado a esa tx. Garantiza que el evento y sus
// medidas se crean como una sola operación atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(prodRepo repository.ProductionRepository) error) error
}
