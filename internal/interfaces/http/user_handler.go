package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plastigest/planta-api/internal/application/dto"
	"github.com/plastigest/planta-api/internal/application/usecase"
)

// UserHandler maneja las consultas de usuarios (protegido).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        pagina  query  int  false  "Página"  default(1)
// @Param        limite  query  int  false  "Límite"  default(20)
// @Success      200     {object}  dto.UserListResponse
// @Router       /api/usuarios [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	page := pageRequest(c)
	out, err := h.uc.List(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

// ListOperators lista los operadores de planta (tercer paso del asistente de
// producción).
// GET /api/usuarios/operadores
func (h *UserHandler) ListOperators(c *fiber.Ctx) error {
	out, err := h.uc.ListOperators()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

// GetByID obtiene un usuario.
// GET /api/usuarios/:id
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "id inválido"))
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "usuario no encontrado"))
	}
	return c.JSON(dto.UserResponse{Success: true, Usuario: *out})
}
