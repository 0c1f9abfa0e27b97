package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plastigest/planta-api/internal/application/dto"
	"github.com/plastigest/planta-api/internal/application/usecase"
	"github.com/plastigest/planta-api/internal/domain"
)

// ShiftHandler maneja las peticiones HTTP para turnos (protegido).
type ShiftHandler struct {
	uc *usecase.ShiftUseCase
}

// NewShiftHandler construye el handler.
func NewShiftHandler(uc *usecase.ShiftUseCase) *ShiftHandler {
	return &ShiftHandler{uc: uc}
}

// List godoc
// @Summary      Listar turnos (el vigente viene marcado con actual=true)
// @Tags         turnos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ShiftListResponse
// @Router       /api/turnos [get]
func (h *ShiftHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

// Create crea un turno.
// POST /api/turnos
func (h *ShiftHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "nombre, hora_inicio y hora_fin son requeridos (formato HH:MM)"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
