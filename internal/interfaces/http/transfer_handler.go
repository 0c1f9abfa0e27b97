package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/plastigest/planta-api/internal/application/dto"
	"github.com/plastigest/planta-api/internal/application/transfer"
	"github.com/plastigest/planta-api/internal/domain"
	"github.com/plastigest/planta-api/internal/domain/entity"
	domtransfer "github.com/plastigest/planta-api/internal/domain/transfer"
)

// TransferHandler expone el inventario por bodega y los traslados entre
// bodegas (protegido).
type TransferHandler struct {
	uc *transfer.UseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *transfer.UseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// ListLots godoc
// @Summary      Lotes de una bodega con su cantidad disponible
// @Tags         traslados
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la bodega"
// @Success      200  {object}  dto.LotListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bodegas/{id}/inventario [get]
func (h *TransferHandler) ListLots(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "id inválido"))
	}
	lots, err := h.uc.ListLots(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "bodega no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	items := make([]dto.LotDTO, 0, len(lots))
	for _, l := range lots {
		items = append(items, dto.LotDTO{
			IDInventario:   l.ID,
			IDProducto:     l.ProductID,
			IDFactura:      l.InvoiceID,
			CantidadLote:   l.Quantity,
			ProductoCodigo: l.ProductCode,
			ProductoNombre: l.ProductName,
		})
	}
	return c.JSON(dto.LotListResponse{Success: true, Inventario: items})
}

// Create godoc
// @Summary      Ejecutar un traslado de lotes entre bodegas (todo o nada)
// @Tags         traslados
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "Traslado"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/traslados [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_BODY", "cuerpo inválido"))
	}

	lines := make([]transfer.RequestedLine, 0, len(in.Traslados))
	for _, t := range in.Traslados {
		lines = append(lines, transfer.RequestedLine{LotID: t.IDInventario, Quantity: t.Cantidad.String()})
	}

	out, err := h.uc.Execute(c.Context(), transfer.ExecuteInput{
		SourceWarehouseID: in.IDBodegaOrigen,
		DestWarehouseID:   in.IDBodegaDestino,
		UserID:            in.IDUsuario,
		Note:              in.Observacion,
		Lines:             lines,
	})
	if err != nil {
		var verr *domtransfer.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", verr.Error()))
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.NewError("INSUFFICIENT_STOCK", "la cantidad disponible cambió; vuelva a consultar el inventario"))
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "bodega o lote no encontrado"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TransferResponse{
		Success:  true,
		Message:  "traslado realizado",
		Traslado: transferDTO(out),
	})
}

// GetByID obtiene un traslado con sus líneas.
// GET /api/traslados/:id
func (h *TransferHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "id inválido"))
	}
	t, err := h.uc.GetByID(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "traslado no encontrado"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.JSON(dto.TransferResponse{Success: true, Traslado: transferDTO(t)})
}

// List godoc
// @Summary      Listar traslados
// @Tags         traslados
// @Security     Bearer
// @Produce      json
// @Param        pagina  query  int  false  "Página"  default(1)
// @Param        limite  query  int  false  "Límite"  default(20)
// @Success      200     {object}  dto.TransferListResponse
// @Router       /api/traslados [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	page := pageRequest(c)
	list, total, err := h.uc.List(page.Limite, page.Offset())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	items := make([]dto.TransferDTO, 0, len(list))
	for _, t := range list {
		items = append(items, transferDTO(t))
	}
	return c.JSON(dto.TransferListResponse{
		Success:    true,
		Traslados:  items,
		Pagination: dto.NewPagination(page, total),
	})
}

func transferDTO(t *entity.Transfer) dto.TransferDTO {
	out := dto.TransferDTO{
		ID:              t.ID,
		IDBodegaOrigen:  t.SourceWarehouseID,
		IDBodegaDestino: t.DestWarehouseID,
		IDUsuario:       t.UserID,
		Observacion:     t.Note,
	}
	for _, l := range t.Lines {
		out.Traslados = append(out.Traslados, dto.TransferLineDTO{
			IDInventario: l.LotID,
			IDProducto:   l.ProductID,
			IDFactura:    l.InvoiceID,
			Cantidad:     l.Quantity,
		})
	}
	return out
}
