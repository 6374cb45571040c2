package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ramdev/inventory-api/internal/application/dto"
	"github.com/ramdev/inventory-api/internal/application/stock"
	"github.com/ramdev/inventory-api/internal/application/usecase"
	"github.com/ramdev/inventory-api/internal/infrastructure/postgres"
	httpRouter "github.com/ramdev/inventory-api/internal/interfaces/http"
	"github.com/ramdev/inventory-api/pkg/config"
	"github.com/ramdev/inventory-api/pkg/logger"
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

	pageDefaults := dto.PageDefaults{
		PageNumber:  cfg.Paging.PageNumber,
		PageSize:    cfg.Paging.PageSize,
		MaxPageSize: cfg.Paging.MaxPageSize,
	}

	productRepo := postgres.NewProductRepository(pool)
	transactionRepo := postgres.NewInventoryTransactionRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	engine := stock.NewEngine(txRunner)
	productUC := usecase.NewProductUseCase(productRepo, pageDefaults)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo, productRepo, pageDefaults)
	orderUC := usecase.NewOrderUseCase(orderRepo, productRepo, pageDefaults)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Engine:        engine,
		TransactionUC: transactionUC,
		OrderUC:       orderUC,
		ProductUC:     productUC,
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
