package transfer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/plastigest/planta-api/internal/domain"
	"github.com/plastigest/planta-api/internal/domain/entity"
	"github.com/plastigest/planta-api/internal/domain/repository"
	domtransfer "github.com/plastigest/planta-api/internal/domain/transfer"
)

// UseCase valida y ejecuta traslados de lotes entre bodegas.
// La validación corre completa antes de abrir la transacción; dentro de la
// transacción cada lote se bloquea y se re-verifica la cantidad disponible,
// así una carrera entre dos clientes se arbitra en la base de datos.
type UseCase struct {
	txRunner      TxRunner
	warehouseRepo repository.WarehouseRepository
	lotRepo       repository.InventoryLotRepository // lecturas fuera de tx
	transferRepo  repository.TransferRepository     // lecturas fuera de tx
	now           func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	warehouseRepo repository.WarehouseRepository,
	lotRepo repository.InventoryLotRepository,
	transferRepo repository.TransferRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		warehouseRepo: warehouseRepo,
		lotRepo:       lotRepo,
		transferRepo:  transferRepo,
		now:           time.Now,
	}
}

// ListLots lista los lotes de una bodega con su cantidad disponible
// autoritativa. El cliente re-consulta este listado después de cada traslado
// en lugar de ajustar cantidades localmente.
func (uc *UseCase) ListLots(warehouseID int64) ([]*entity.InventoryLot, error) {
	wh, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	return uc.lotRepo.ListByWarehouse(warehouseID)
}

// RequestedLine una línea solicitada: el lote marcado y la cantidad tal cual
// la ingresó el usuario.
type RequestedLine struct {
	LotID    int64
	Quantity string
}

// ExecuteInput entrada para ejecutar un traslado.
type ExecuteInput struct {
	SourceWarehouseID int64
	DestWarehouseID   int64
	UserID            int64
	Note              string
	Lines             []RequestedLine
}

// Execute valida el lote de traslado completo y, si pasa, lo aplica en una
// sola transacción: resta de cada lote de origen (con bloqueo de fila) y suma
// en el lote correspondiente de la bodega de destino, creándolo si no existe.
//
// Una validación fallida devuelve *transfer.ValidationError con todas las
// violaciones sin tocar la base de datos.
func (uc *UseCase) Execute(ctx context.Context, in ExecuteInput) (*entity.Transfer, error) {
	// Chequeos globales primero (bodegas definidas y distintas, selección no
	// vacía); las líneas se resuelven contra los lotes reales de la bodega.
	if verr := domtransfer.PrecheckWarehouses(in.SourceWarehouseID, in.DestWarehouseID, len(in.Lines)); verr != nil {
		return nil, verr
	}

	srcWh, err := uc.warehouseRepo.GetByID(in.SourceWarehouseID)
	if err != nil {
		return nil, err
	}
	dstWh, err := uc.warehouseRepo.GetByID(in.DestWarehouseID)
	if err != nil {
		return nil, err
	}
	if srcWh == nil || dstWh == nil {
		return nil, domain.ErrNotFound
	}

	lots, err := uc.lotRepo.ListByWarehouse(in.SourceWarehouseID)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*entity.InventoryLot, len(lots))
	for _, l := range lots {
		byID[l.ID] = l
	}

	lines := make([]domtransfer.Line, 0, len(in.Lines))
	for _, req := range in.Lines {
		lot, ok := byID[req.LotID]
		if !ok {
			return nil, domain.ErrNotFound
		}
		lines = append(lines, domtransfer.Line{
			LotID:       lot.ID,
			ProductID:   lot.ProductID,
			InvoiceID:   lot.InvoiceID,
			ProductName: lot.ProductName,
			Requested:   req.Quantity,
			Available:   lot.Quantity,
		})
	}

	validated, err := domtransfer.Validate(in.SourceWarehouseID, in.DestWarehouseID, lines)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	t := &entity.Transfer{
		TransactionID:     uuid.New().String(),
		SourceWarehouseID: in.SourceWarehouseID,
		DestWarehouseID:   in.DestWarehouseID,
		UserID:            in.UserID,
		Note:              in.Note,
		CreatedAt:         now,
	}

	err = uc.txRunner.Run(ctx, func(
		lotRepo repository.InventoryLotRepository,
		transferRepo repository.TransferRepository,
	) error {
		if err := transferRepo.CreateTransfer(t); err != nil {
			return err
		}
		for _, line := range validated {
			if err := uc.applyLine(lotRepo, in, line, now); err != nil {
				return err
			}
			tl := &entity.TransferLine{
				TransferID: t.ID,
				LotID:      line.LotID,
				ProductID:  line.ProductID,
				InvoiceID:  line.InvoiceID,
				Quantity:   line.Quantity,
			}
			if err := transferRepo.CreateLine(tl); err != nil {
				return err
			}
			t.Lines = append(t.Lines, *tl)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// applyLine resta la cantidad del lote de origen y la suma en el lote de
// destino, ambos bajo bloqueo de fila dentro de la transacción.
func (uc *UseCase) applyLine(
	lotRepo repository.InventoryLotRepository,
	in ExecuteInput,
	line domtransfer.ValidatedLine,
	now time.Time,
) error {
	origin, err := lotRepo.GetForUpdate(line.LotID)
	if err != nil {
		return err
	}
	if origin == nil || origin.WarehouseID != in.SourceWarehouseID {
		return domain.ErrNotFound
	}
	// Re-verificación bajo bloqueo: otro cliente pudo trasladar del mismo lote
	// entre la validación y el commit.
	if origin.Quantity.LessThan(line.Quantity) {
		return domain.ErrInsufficientStock
	}
	origin.Quantity = origin.Quantity.Sub(line.Quantity)
	origin.UpdatedAt = now
	if err := lotRepo.Update(origin); err != nil {
		return err
	}

	dest, err := lotRepo.FindAtWarehouseForUpdate(line.ProductID, line.InvoiceID, in.DestWarehouseID)
	if err != nil {
		return err
	}
	if dest == nil {
		dest = &entity.InventoryLot{
			ProductID:   line.ProductID,
			WarehouseID: in.DestWarehouseID,
			InvoiceID:   line.InvoiceID,
			Quantity:    line.Quantity,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return lotRepo.Create(dest)
	}
	dest.Quantity = dest.Quantity.Add(line.Quantity)
	dest.UpdatedAt = now
	return lotRepo.Update(dest)
}

// GetByID obtiene un traslado con sus líneas.
func (uc *UseCase) GetByID(id int64) (*entity.Transfer, error) {
	t, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

// List lista traslados con paginación.
func (uc *UseCase) List(limit, offset int) ([]*entity.Transfer, int, error) {
	total, err := uc.transferRepo.Count()
	if err != nil {
		return nil, 0, err
	}
	list, err := uc.transferRepo.List(limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}
