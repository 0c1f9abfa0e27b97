package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/plastigest/planta-api/internal/application/auth"
	"github.com/plastigest/planta-api/internal/application/dto"
	"github.com/plastigest/planta-api/internal/application/production"
	"github.com/plastigest/planta-api/internal/application/transfer"
	"github.com/plastigest/planta-api/internal/application/usecase"
	"github.com/plastigest/planta-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	WarehouseUC  *usecase.WarehouseUseCase
	ProductUC    *usecase.ProductUseCase
	MachineUC    *usecase.MachineUseCase
	UserUC       *usecase.UserUseCase
	ShiftUC      *usecase.ShiftUseCase
	ProductionUC *production.UseCase
	TransferUC   *transfer.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(entity.RoleAdmin)

	// Bodegas (protegido; mutaciones solo admin)
	warehouses := protected.Group("/bodegas")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	transferHandler := NewTransferHandler(deps.TransferUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", admin, warehouseHandler.Create)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", admin, warehouseHandler.Update)
	warehouses.Delete("/:id", admin, warehouseHandler.Delete)
	warehouses.Get("/:id/inventario", transferHandler.ListLots)

	// Productos (protegido; mutaciones solo admin)
	products := protected.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", admin, productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", admin, productHandler.Update)
	products.Delete("/:id", admin, productHandler.Delete)

	// Tipos de máquina y máquinas (protegido; mutaciones solo admin)
	machineHandler := NewMachineHandler(deps.MachineUC)
	productionHandler := NewProductionHandler(deps.ProductionUC)
	machineTypes := protected.Group("/tipos_maquina")
	machineTypes.Get("/", machineHandler.ListTypes)
	machineTypes.Post("/", admin, machineHandler.CreateType)
	machineTypes.Get("/:id/maquinas", productionHandler.MachinesForType)
	machineTypes.Get("/:id/productos", productionHandler.ProductsForType)
	machineTypes.Get("/:id/medidas", productionHandler.MeasuresForType)

	machines := protected.Group("/maquinas")
	machines.Get("/", machineHandler.List)
	machines.Post("/", admin, machineHandler.Create)
	machines.Get("/:id", machineHandler.GetByID)
	machines.Put("/:id", admin, machineHandler.Update)
	machines.Delete("/:id", admin, machineHandler.Delete)

	// Usuarios (protegido)
	users := protected.Group("/usuarios")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/operadores", userHandler.ListOperators)
	users.Get("/:id", userHandler.GetByID)

	// Turnos (protegido; mutaciones solo admin)
	shifts := protected.Group("/turnos")
	shiftHandler := NewShiftHandler(deps.ShiftUC)
	shifts.Get("/", shiftHandler.List)
	shifts.Get("/actual", productionHandler.CurrentShift)
	shifts.Post("/", admin, shiftHandler.Create)

	// Medidas (protegido)
	protected.Get("/medidas", productionHandler.MeasureCatalog)

	// Producción (protegido)
	prod := protected.Group("/produccion")
	prod.Get("/", productionHandler.List)
	prod.Post("/", productionHandler.Register)
	prod.Get("/:id/medidas", productionHandler.MeasuresForEvent)

	// Traslados (protegido; ejecutar requiere admin o bodeguero)
	transfers := protected.Group("/traslados")
	transfers.Get("/", transferHandler.List)
	transfers.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), transferHandler.Create)
	transfers.Get("/:id", transferHandler.GetByID)
}

// paramID parsea un parámetro de ruta numérico. Devuelve false si no es un
// entero positivo.
func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// pageRequest lee pagina/limite de la query con valores por defecto.
func pageRequest(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		Pagina: c.QueryInt("pagina", 1),
		Limite: c.QueryInt("limite", 20),
	}
	page.DefaultPage()
	return page
}
