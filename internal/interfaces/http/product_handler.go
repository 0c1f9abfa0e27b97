package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plastigest/planta-api/internal/application/dto"
	"github.com/plastigest/planta-api/internal/application/usecase"
	"github.com/plastigest/planta-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP para productos (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_BODY", "cuerpo inválido"))
	}
	if in.Codigo == "" || in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "codigo y nombre son requeridos"))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.NewError("DUPLICATE", "ya existe un producto con ese código"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductResponse{Success: true, Producto: *out})
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "id inválido"))
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "producto no encontrado"))
	}
	return c.JSON(dto.ProductResponse{Success: true, Producto: *out})
}

// List godoc
// @Summary      Listar productos
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        pagina  query  int  false  "Página"  default(1)
// @Param        limite  query  int  false  "Límite"  default(20)
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := pageRequest(c)
	out, err := h.uc.List(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

// Update actualiza un producto.
// PUT /api/productos/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "id inválido"))
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "producto no encontrado"))
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.NewError("DUPLICATE", "ya existe un producto con ese código"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.JSON(dto.ProductResponse{Success: true, Producto: *out})
}

// Delete elimina un producto.
// DELETE /api/productos/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "id inválido"))
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "producto no encontrado"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.JSON(dto.StatusResponse{Success: true, Message: "producto eliminado"})
}
