package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/plastigest/planta-api/internal/application/dto"
	"github.com/plastigest/planta-api/internal/application/production"
	"github.com/plastigest/planta-api/internal/domain"
	"github.com/plastigest/planta-api/internal/domain/entity"
)

// ProductionHandler expone las consultas de opciones del asistente de
// producción (listas dependientes del tipo de máquina) y el registro de
// eventos de producción (protegido).
type ProductionHandler struct {
	uc *production.UseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *production.UseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// MachinesForType godoc
// @Summary      Máquinas de un tipo (segundo paso del asistente)
// @Tags         produccion
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del tipo de máquina"
// @Success      200  {object}  dto.MachineListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tipos_maquina/{id}/maquinas [get]
func (h *ProductionHandler) MachinesForType(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "id inválido"))
	}
	machines, err := h.uc.MachinesForType(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "tipo de máquina no encontrado"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	items := make([]dto.MachineDTO, 0, len(machines))
	for _, m := range machines {
		items = append(items, dto.MachineDTO{ID: m.ID, IDTipoMaquina: m.MachineTypeID, Nombre: m.Name, Estado: m.Status})
	}
	return c.JSON(dto.MachineListResponse{Success: true, Maquinas: items})
}

// ProductsForType godoc
// @Summary      Productos seleccionables para un tipo de máquina
// @Tags         produccion
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del tipo de máquina"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tipos_maquina/{id}/productos [get]
func (h *ProductionHandler) ProductsForType(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "id inválido"))
	}
	products, err := h.uc.ProductsForMachineType(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "tipo de máquina no encontrado"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	items := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		items = append(items, dto.ProductDTO{
			ID: p.ID, Codigo: p.Code, Nombre: p.Name, Grupo: p.GroupID, Precio: p.Price, Unidad: p.UnitMeasure,
		})
	}
	return c.JSON(dto.ProductListResponse{Success: true, Productos: items})
}

// MeasuresForType godoc
// @Summary      Medidas requeridas para un tipo de máquina
// @Tags         produccion
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del tipo de máquina"
// @Success      200  {object}  dto.MeasureListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tipos_maquina/{id}/medidas [get]
func (h *ProductionHandler) MeasuresForType(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "id inválido"))
	}
	measures, err := h.uc.MeasuresForMachineType(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "tipo de máquina o medida no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.JSON(measureListResponse(measures))
}

// MeasureCatalog lista el catálogo completo de medidas.
// GET /api/medidas
func (h *ProductionHandler) MeasureCatalog(c *fiber.Ctx) error {
	measures, err := h.uc.MeasureCatalog()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.JSON(measureListResponse(measures))
}

// CurrentShift godoc
// @Summary      Turno vigente según la hora del servidor
// @Tags         produccion
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ShiftDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/turnos/actual [get]
func (h *ProductionHandler) CurrentShift(c *fiber.Ctx) error {
	shift, err := h.uc.CurrentShift(time.Now())
	if err != nil {
		if err == domain.ErrNoCurrentShift {
			return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NO_SHIFT", "ningún turno cubre la hora actual"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.JSON(dto.ShiftDTO{
		ID: shift.ID, Nombre: shift.Name, HoraInicio: shift.StartTime, HoraFin: shift.EndTime, Actual: true,
	})
}

// Register godoc
// @Summary      Registrar un evento de producción con sus medidas
// @Tags         produccion
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterProductionRequest  true  "Evento de producción"
// @Success      201   {object}  dto.ProductionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produccion [post]
func (h *ProductionHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_BODY", "cuerpo inválido"))
	}

	var date time.Time
	if in.FechaHora != "" {
		parsed, err := time.Parse(time.RFC3339, in.FechaHora)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "fecha_hora debe ser RFC 3339"))
		}
		date = parsed
	}

	measures := make([]production.MeasureInput, 0, len(in.Medidas))
	for _, m := range in.Medidas {
		measures = append(measures, production.MeasureInput{MeasureID: m.IDMedida, Quantity: m.Cantidad})
	}

	ev, created, err := h.uc.Register(c.Context(), production.RegisterInput{
		ProductID: in.IDProducto,
		MachineID: in.IDMaquina,
		UserID:    in.IDUsuario,
		ShiftID:   in.IDTurno,
		Date:      date,
		Measures:  measures,
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "datos de producción inválidos"))
		}
		if err == domain.ErrNotFound || err == domain.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "producto, máquina, operador o turno no encontrado"))
		}
		if err == domain.ErrNoCurrentShift {
			return c.Status(fiber.StatusConflict).JSON(dto.NewError("NO_SHIFT", "ningún turno cubre la hora del registro"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}

	out := productionEventDTO(ev)
	for _, m := range created {
		out.Medidas = append(out.Medidas, dto.MedidaInput{IDMedida: m.MeasureID, Cantidad: m.Quantity})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductionResponse{
		Success:    true,
		Message:    "producción registrada",
		Produccion: out,
	})
}

// List godoc
// @Summary      Listar eventos de producción
// @Tags         produccion
// @Security     Bearer
// @Produce      json
// @Param        pagina  query  int  false  "Página"  default(1)
// @Param        limite  query  int  false  "Límite"  default(20)
// @Success      200     {object}  dto.ProductionListResponse
// @Router       /api/produccion [get]
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	page := pageRequest(c)
	events, total, err := h.uc.ListEvents(page.Limite, page.Offset())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	items := make([]dto.ProductionEventDTO, 0, len(events))
	for _, ev := range events {
		items = append(items, productionEventDTO(ev))
	}
	return c.JSON(dto.ProductionListResponse{
		Success:      true,
		Producciones: items,
		Pagination:   dto.NewPagination(page, total),
	})
}

// MeasuresForEvent lista las medidas registradas de un evento.
// GET /api/produccion/:id/medidas
func (h *ProductionHandler) MeasuresForEvent(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "id inválido"))
	}
	measures, err := h.uc.MeasuresForEvent(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	items := make([]dto.MedidaInput, 0, len(measures))
	for _, m := range measures {
		items = append(items, dto.MedidaInput{IDMedida: m.MeasureID, Cantidad: m.Quantity})
	}
	return c.JSON(fiber.Map{"success": true, "medidas": items})
}

func productionEventDTO(ev *entity.ProductionEvent) dto.ProductionEventDTO {
	return dto.ProductionEventDTO{
		ID:         ev.ID,
		IDProducto: ev.ProductID,
		IDMaquina:  ev.MachineID,
		IDUsuario:  ev.UserID,
		IDTurno:    ev.ShiftID,
		FechaHora:  ev.Date.Format(time.RFC3339),
	}
}

func measureListResponse(measures []*entity.Measure) dto.MeasureListResponse {
	items := make([]dto.MeasureDTO, 0, len(measures))
	for _, m := range measures {
		items = append(items, dto.MeasureDTO{ID: m.ID, Nombre: m.Name, Unidad: m.Unit})
	}
	return dto.MeasureListResponse{Success: true, Medidas: items}
}
