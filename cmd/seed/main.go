// seed importa el catálogo externo (dummyjson) en la base configurada y termina.
// Inserta cada SKU nuevo con su stock inicial como transacción de ajuste; los existentes se omiten.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que cmd/api (DATABASE_URL / DB_*, CATALOG_URL, CATALOG_LIMIT).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/adjustment-ledger-api/internal/application/usecase"
	"github.com/jhoicas/adjustment-ledger-api/internal/infrastructure/catalog"
	"github.com/jhoicas/adjustment-ledger-api/internal/infrastructure/postgres"
	"github.com/jhoicas/adjustment-ledger-api/pkg/config"
	"github.com/jhoicas/adjustment-ledger-api/pkg/logger"
	"github.com/jhoicas/adjustment-ledger-api/pkg/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() { _ = tp.Shutdown(context.Background()) }()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, log); err != nil {
			return fmt.Errorf("aplicar migraciones: %w", err)
		}
	}

	uc := usecase.NewProductUseCase(
		postgres.NewProductRepository(pool),
		postgres.NewTxRunner(pool),
		catalog.NewDummyJSONClient(cfg.Catalog),
		tp.Tracer(cfg.Telemetry.ServiceName),
		log,
	)
	summary, err := uc.SeedFromCatalog(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s (creados: %d, omitidos: %d)\n", summary.Message, summary.Created, summary.Skipped)
	return nil
}
