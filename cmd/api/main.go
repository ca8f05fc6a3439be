// @title        Adjustment Ledger API
// @version      1.0
// @description  Catálogo de productos con stock derivado de un ledger de transacciones de ajuste.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	_ "github.com/jhoicas/adjustment-ledger-api/docs"
	"github.com/jhoicas/adjustment-ledger-api/internal/application/inventory"
	"github.com/jhoicas/adjustment-ledger-api/internal/application/usecase"
	"github.com/jhoicas/adjustment-ledger-api/internal/infrastructure/catalog"
	"github.com/jhoicas/adjustment-ledger-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/adjustment-ledger-api/internal/interfaces/http"
	"github.com/jhoicas/adjustment-ledger-api/pkg/config"
	"github.com/jhoicas/adjustment-ledger-api/pkg/logger"
	"github.com/jhoicas/adjustment-ledger-api/pkg/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	tp, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar trazas")
	}
	tracer := tp.Tracer(cfg.Telemetry.ServiceName)

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, log); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
	}

	productRepo := postgres.NewProductRepository(pool)
	transactionRepo := postgres.NewAdjustmentTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	catalogClient := catalog.NewDummyJSONClient(cfg.Catalog)

	productUC := usecase.NewProductUseCase(productRepo, txRunner, catalogClient, tracer, log)
	adjustmentUC := inventory.NewAdjustmentUseCase(transactionRepo, txRunner, tracer)

	app := httpRouter.NewApp(cfg.App.Name, httpRouter.RouterDeps{
		ProductUC:    productUC,
		AdjustmentUC: adjustmentUC,
		Log:          log,
	}, fiber.Config{
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // el seed descarga el catálogo externo
		IdleTimeout:  time.Second * 60,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Adjustment Ledger API",
	}))

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
	if err := tp.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cierre de trazas")
	}

	log.Info().Msg("aplicación detenida")
}
