package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/adjustment-ledger-api/internal/application/dto"
	"github.com/jhoicas/adjustment-ledger-api/internal/application/ports"
	"github.com/jhoicas/adjustment-ledger-api/internal/domain"
	"github.com/jhoicas/adjustment-ledger-api/internal/domain/entity"
	"github.com/jhoicas/adjustment-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/adjustment-ledger-api/internal/domain/repository"
	"github.com/jhoicas/adjustment-ledger-api/pkg/logger"
	"github.com/jhoicas/adjustment-ledger-api/pkg/telemetry"
)

// SeedSuccessMessage mensaje fijo devuelto por el seed.
const SeedSuccessMessage = "Products fetched and saved successfully."

// ProductUseCase casos de uso CRUD para productos. El stock se maneja vía transacciones de ajuste.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner ports.TxRunner
	catalog  ports.CatalogSource
	tracer   trace.Tracer
	log      *logger.Logger
}

// NewProductUseCase construye el caso de uso.
// txRunner y catalog solo se usan en SeedFromCatalog.
func NewProductUseCase(
	repo repository.ProductRepository,
	txRunner ports.TxRunner,
	catalog ports.CatalogSource,
	tracer trace.Tracer,
	log *logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		repo:     repo,
		txRunner: txRunner,
		catalog:  catalog,
		tracer:   tracer,
		log:      log,
	}
}

// List lista productos paginados. Conteo y página se leen por separado, sin snapshot común.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) (_ *dto.ProductListResult, err error) {
	ctx, span := uc.tracer.Start(ctx, "ProductUseCase.List",
		trace.WithAttributes(attribute.Int("page", page.Page), attribute.Int("limit", page.Limit)))
	defer func() { telemetry.End(span, err) }()

	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResult{Items: items, TotalRecords: total}, nil
}

// GetBySKU obtiene un producto por SKU. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetBySKU(ctx context.Context, sku string) (_ *dto.ProductResponse, err error) {
	ctx, span := uc.tracer.Start(ctx, "ProductUseCase.GetBySKU", trace.WithAttributes(telemetry.SKU(sku)))
	defer func() { telemetry.End(span, err) }()

	product, err := uc.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Create crea un producto con stock 0. El duplicado lo detecta el store (domain.ErrSKUAlreadyExists).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (_ *dto.ProductResponse, err error) {
	ctx, span := uc.tracer.Start(ctx, "ProductUseCase.Create", trace.WithAttributes(telemetry.SKU(in.SKU)))
	defer func() { telemetry.End(span, err) }()

	now := time.Now()
	product := &entity.Product{
		SKU:         in.SKU,
		Title:       in.Title,
		Image:       in.Image,
		Price:       in.Price,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update reescribe todos los campos del producto sku.
// Falla con ErrProductNotFound si sku no existe y con ErrSKUAlreadyExists si el nuevo SKU pertenece a otro producto.
func (uc *ProductUseCase) Update(ctx context.Context, sku string, in dto.ProductRequest) (_ *dto.ProductResponse, err error) {
	ctx, span := uc.tracer.Start(ctx, "ProductUseCase.Update",
		trace.WithAttributes(telemetry.SKU(sku), attribute.String("new_sku", in.SKU)))
	defer func() { telemetry.End(span, err) }()

	existing, err := uc.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.SKU != sku {
		other, err := uc.repo.GetBySKU(ctx, in.SKU)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrSKUAlreadyExists
		}
	}

	product := &entity.Product{
		SKU:         in.SKU,
		Title:       in.Title,
		Image:       in.Image,
		Price:       in.Price,
		Description: in.Description,
		Stock:       existing.Stock, // el ledger sigue al SKU (ON UPDATE CASCADE)
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now(),
	}
	if err := uc.repo.Update(ctx, sku, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por SKU.
func (uc *ProductUseCase) Delete(ctx context.Context, sku string) (err error) {
	ctx, span := uc.tracer.Start(ctx, "ProductUseCase.Delete", trace.WithAttributes(telemetry.SKU(sku)))
	defer func() { telemetry.End(span, err) }()

	existing, err := uc.repo.GetBySKU(ctx, sku)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrProductNotFound
	}
	return uc.repo.Delete(ctx, sku)
}

// SeedFromCatalog importa el catálogo externo. Por cada SKU nuevo inserta el producto y su
// ajuste de stock inicial en una sola transacción; los SKU existentes se omiten.
// Si la descarga falla, devuelve ese error sin haber escrito nada.
func (uc *ProductUseCase) SeedFromCatalog(ctx context.Context) (_ *dto.SeedSummary, err error) {
	ctx, span := uc.tracer.Start(ctx, "ProductUseCase.SeedFromCatalog")
	defer func() { telemetry.End(span, err) }()

	items, err := uc.catalog.FetchCatalog(ctx)
	if err != nil {
		return nil, err
	}

	summary := &dto.SeedSummary{Message: SeedSuccessMessage}
	for _, item := range items {
		if !seedable(item) {
			uc.log.Warn().Str("sku", item.SKU).Msg("producto del catálogo inválido, se omite")
			summary.Skipped++
			continue
		}
		existing, err := uc.repo.GetBySKU(ctx, item.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			summary.Skipped++
			continue
		}
		err = uc.createWithInitialStock(ctx, item)
		if errors.Is(err, domain.ErrSKUAlreadyExists) {
			// otro proceso lo insertó entre la consulta y la tx
			summary.Skipped++
			continue
		}
		if err != nil {
			return nil, err
		}
		summary.Created++
	}

	span.SetAttributes(attribute.Int("created", summary.Created), attribute.Int("skipped", summary.Skipped))
	uc.log.Info().
		Int("catalog_items", len(items)).
		Int("created", summary.Created).
		Int("skipped", summary.Skipped).
		Msg("seed de catálogo completado")
	return summary, nil
}

func (uc *ProductUseCase) createWithInitialStock(ctx context.Context, item dto.CatalogProduct) error {
	now := time.Now()
	var description *string
	if d := strings.TrimSpace(item.Description); d != "" {
		description = &d
	}
	product := &entity.Product{
		SKU:         item.SKU,
		Title:       item.Title,
		Image:       item.Image(),
		Price:       item.Price,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		transactions repository.AdjustmentTransactionRepository,
	) error {
		if err := products.Create(ctx, product); err != nil {
			return err
		}
		// Un ajuste de cantidad 0 no es válido en el ledger.
		if item.Stock == 0 {
			return nil
		}
		return transactions.Create(ctx, &entity.AdjustmentTransaction{
			SKU:       item.SKU,
			Qty:       item.Stock,
			CreatedAt: now,
			UpdatedAt: now,
		})
	})
}

func seedable(item dto.CatalogProduct) bool {
	return strings.TrimSpace(item.SKU) != "" &&
		strings.TrimSpace(item.Title) != "" &&
		item.Price.IsPositive() &&
		inventory.CanApply(0, item.Stock)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		SKU:         p.SKU,
		Title:       p.Title,
		Image:       p.Image,
		Price:       p.Price,
		Description: p.Description,
		Stock:       p.Stock,
	}
}
