package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plastigest/planta-api/internal/application/dto"
	"github.com/plastigest/planta-api/internal/application/usecase"
	"github.com/plastigest/planta-api/internal/domain"
)

// MachineHandler maneja tipos de máquina y máquinas (protegido).
type MachineHandler struct {
	uc *usecase.MachineUseCase
}

// NewMachineHandler construye el handler.
func NewMachineHandler(uc *usecase.MachineUseCase) *MachineHandler {
	return &MachineHandler{uc: uc}
}

// ListTypes godoc
// @Summary      Listar tipos de máquina
// @Tags         maquinas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MachineTypeListResponse
// @Router       /api/tipos_maquina [get]
func (h *MachineHandler) ListTypes(c *fiber.Ctx) error {
	out, err := h.uc.ListTypes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

// CreateType crea un tipo de máquina.
// POST /api/tipos_maquina
func (h *MachineHandler) CreateType(c *fiber.Ctx) error {
	var in dto.CreateMachineTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_BODY", "cuerpo inválido"))
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "nombre es requerido"))
	}
	out, err := h.uc.CreateType(in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.NewError("DUPLICATE", "ya existe un tipo de máquina con ese nombre"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Create crea una máquina.
// POST /api/maquinas
func (h *MachineHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMachineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_BODY", "cuerpo inválido"))
	}
	if in.Nombre == "" || in.IDTipoMaquina == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "nombre e id_tipo_maquina son requeridos"))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "tipo de máquina no encontrado"))
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "datos inválidos"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MachineResponse{Success: true, Maquina: *out})
}

// GetByID obtiene una máquina.
// GET /api/maquinas/:id
func (h *MachineHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "id inválido"))
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "máquina no encontrada"))
	}
	return c.JSON(dto.MachineResponse{Success: true, Maquina: *out})
}

// List godoc
// @Summary      Listar máquinas
// @Tags         maquinas
// @Security     Bearer
// @Produce      json
// @Param        pagina  query  int  false  "Página"  default(1)
// @Param        limite  query  int  false  "Límite"  default(20)
// @Success      200     {object}  dto.MachineListResponse
// @Router       /api/maquinas [get]
func (h *MachineHandler) List(c *fiber.Ctx) error {
	page := pageRequest(c)
	out, err := h.uc.List(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

// Update actualiza una máquina.
// PUT /api/maquinas/:id
func (h *MachineHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "id inválido"))
	}
	var in dto.UpdateMachineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "máquina no encontrada"))
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "datos inválidos"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.JSON(dto.MachineResponse{Success: true, Maquina: *out})
}

// Delete elimina una máquina.
// DELETE /api/maquinas/:id
func (h *MachineHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "id inválido"))
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "máquina no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.JSON(dto.StatusResponse{Success: true, Message: "máquina eliminada"})
}
