package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/plastigest/planta-api/internal/application/auth"
	"github.com/plastigest/planta-api/internal/application/production"
	"github.com/plastigest/planta-api/internal/application/transfer"
	"github.com/plastigest/planta-api/internal/application/usecase"
	"github.com/plastigest/planta-api/internal/infrastructure/postgres"
	httpRouter "github.com/plastigest/planta-api/internal/interfaces/http"
	"github.com/plastigest/planta-api/pkg/config"
	"github.com/plastigest/planta-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	machineTypeRepo := postgres.NewMachineTypeRepository(pool)
	machineRepo := postgres.NewMachineRepository(pool)
	shiftRepo := postgres.NewShiftRepository(pool)
	measureRepo := postgres.NewMeasureRepository(pool)
	lotRepo := postgres.NewInventoryLotRepository(pool)
	productionRepo := postgres.NewProductionRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	machineUC := usecase.NewMachineUseCase(machineTypeRepo, machineRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	shiftUC := usecase.NewShiftUseCase(shiftRepo)

	productionUC := production.NewUseCase(
		postgres.NewTxRunner(pool),
		productionRepo, productRepo, machineRepo, machineTypeRepo,
		userRepo, shiftRepo, measureRepo,
	)
	transferUC := transfer.NewUseCase(
		postgres.NewTransferTxRunner(pool),
		warehouseRepo, lotRepo, transferRepo,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Planta API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		WarehouseUC:  warehouseUC,
		ProductUC:    productUC,
		MachineUC:    machineUC,
		UserUC:       userUC,
		ShiftUC:      shiftUC,
		ProductionUC: productionUC,
		TransferUC:   transferUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
