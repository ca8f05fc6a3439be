package inventory

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/adjustment-ledger-api/internal/application/dto"
	"github.com/jhoicas/adjustment-ledger-api/internal/application/ports"
	"github.com/jhoicas/adjustment-ledger-api/internal/domain"
	"github.com/jhoicas/adjustment-ledger-api/internal/domain/entity"
	"github.com/jhoicas/adjustment-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/adjustment-ledger-api/internal/domain/repository"
	"github.com/jhoicas/adjustment-ledger-api/pkg/telemetry"
)

// AdjustmentUseCase administra el ledger de transacciones de ajuste.
// Toda escritura corre en una transacción de BD que bloquea la(s) fila(s) de producto
// (SELECT FOR UPDATE) antes de leer el stock agregado, así dos escrituras sobre el
// mismo SKU no validan contra el mismo stock.
type AdjustmentUseCase struct {
	repo     repository.AdjustmentTransactionRepository
	txRunner ports.TxRunner
	tracer   trace.Tracer
}

// NewAdjustmentUseCase construye el caso de uso.
func NewAdjustmentUseCase(
	repo repository.AdjustmentTransactionRepository,
	txRunner ports.TxRunner,
	tracer trace.Tracer,
) *AdjustmentUseCase {
	return &AdjustmentUseCase{
		repo:     repo,
		txRunner: txRunner,
		tracer:   tracer,
	}
}

// List lista transacciones paginadas con su monto derivado.
func (uc *AdjustmentUseCase) List(ctx context.Context, page dto.PageRequest) (_ *dto.AdjustmentTransactionListResult, err error) {
	ctx, span := uc.tracer.Start(ctx, "AdjustmentUseCase.List",
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
	items := make([]dto.AdjustmentTransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toAdjustmentResponse(t))
	}
	return &dto.AdjustmentTransactionListResult{Items: items, TotalRecords: total}, nil
}

// GetByID obtiene una transacción. Devuelve (nil, nil) si no existe.
func (uc *AdjustmentUseCase) GetByID(ctx context.Context, id int64) (_ *dto.AdjustmentTransactionResponse, err error) {
	ctx, span := uc.tracer.Start(ctx, "AdjustmentUseCase.GetByID", trace.WithAttributes(telemetry.TransactionID(id)))
	defer func() { telemetry.End(span, err) }()

	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAdjustmentResponse(t), nil
}

// Create registra un ajuste si el stock proyectado (stock + qty) no queda negativo.
func (uc *AdjustmentUseCase) Create(ctx context.Context, in dto.AdjustmentTransactionRequest) (_ *dto.AdjustmentTransactionResponse, err error) {
	ctx, span := uc.tracer.Start(ctx, "AdjustmentUseCase.Create",
		trace.WithAttributes(telemetry.SKU(in.SKU), attribute.Int64("qty", in.Qty)))
	defer func() { telemetry.End(span, err) }()

	var created *entity.AdjustmentTransaction
	err = uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		transactions repository.AdjustmentTransactionRepository,
	) error {
		if err := products.LockBySKU(ctx, in.SKU); err != nil {
			return err
		}
		product, err := products.GetBySKU(ctx, in.SKU)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if !inventory.CanApply(product.Stock, in.Qty) {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		t := &entity.AdjustmentTransaction{
			SKU:       in.SKU,
			Qty:       in.Qty,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := transactions.Create(ctx, t); err != nil {
			return err
		}
		created = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(telemetry.TransactionID(created.ID))
	return toAdjustmentResponse(created), nil
}

// Update reemplaza sku/qty de una transacción existente validando el efecto neto:
//   - mismo SKU: stock + (qty nueva - qty anterior) >= 0
//   - SKU distinto: stock(nuevo) + qty >= 0 y stock(anterior) - qty anterior >= 0
func (uc *AdjustmentUseCase) Update(ctx context.Context, id int64, in dto.AdjustmentTransactionRequest) (_ *dto.AdjustmentTransactionResponse, err error) {
	ctx, span := uc.tracer.Start(ctx, "AdjustmentUseCase.Update",
		trace.WithAttributes(telemetry.TransactionID(id), telemetry.SKU(in.SKU), attribute.Int64("qty", in.Qty)))
	defer func() { telemetry.End(span, err) }()

	var updated *entity.AdjustmentTransaction
	err = uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		transactions repository.AdjustmentTransactionRepository,
	) error {
		existing, err := lockTransaction(ctx, products, transactions, id, in.SKU)
		if err != nil {
			return err
		}

		product, err := products.GetBySKU(ctx, in.SKU)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		if in.SKU != existing.SKU {
			if !inventory.CanApply(product.Stock, in.Qty) {
				return domain.ErrInsufficientStock
			}
			oldProduct, err := products.GetBySKU(ctx, existing.SKU)
			if err != nil {
				return err
			}
			if oldProduct == nil {
				return domain.ErrProductNotFound
			}
			if !inventory.CanRemove(oldProduct.Stock, existing.Qty) {
				return domain.ErrInsufficientStock
			}
		} else {
			delta := in.Qty - existing.Qty
			if !inventory.CanApply(product.Stock, delta) {
				return domain.ErrInsufficientStock
			}
		}

		existing.SKU = in.SKU
		existing.Qty = in.Qty
		existing.UpdatedAt = time.Now()
		if err := transactions.Update(ctx, existing); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toAdjustmentResponse(updated), nil
}

// Delete elimina una transacción si quitar su cantidad no deja el stock negativo.
func (uc *AdjustmentUseCase) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := uc.tracer.Start(ctx, "AdjustmentUseCase.Delete", trace.WithAttributes(telemetry.TransactionID(id)))
	defer func() { telemetry.End(span, err) }()

	return uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		transactions repository.AdjustmentTransactionRepository,
	) error {
		existing, err := lockTransaction(ctx, products, transactions, id)
		if err != nil {
			return err
		}
		product, err := products.GetBySKU(ctx, existing.SKU)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if !inventory.CanRemove(product.Stock, existing.Qty) {
			return domain.ErrInsufficientStock
		}
		return transactions.Delete(ctx, id)
	})
}

// lockTransaction bloquea los productos involucrados y después la fila del ledger, el mismo
// orden que sigue el cascade al renombrar o borrar un producto.
// Si el SKU cambió entre la lectura y el bloqueo se bloquea también el nuevo; con la fila
// ya tomada el SKU no puede volver a cambiar.
func lockTransaction(
	ctx context.Context,
	products repository.ProductRepository,
	transactions repository.AdjustmentTransactionRepository,
	id int64,
	extraSKUs ...string,
) (*entity.AdjustmentTransaction, error) {
	current, err := transactions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrTransactionNotFound
	}
	if err := products.LockBySKU(ctx, append([]string{current.SKU}, extraSKUs...)...); err != nil {
		return nil, err
	}
	locked, err := transactions.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if locked == nil {
		return nil, domain.ErrTransactionNotFound
	}
	if locked.SKU != current.SKU {
		if err := products.LockBySKU(ctx, append([]string{locked.SKU}, extraSKUs...)...); err != nil {
			return nil, err
		}
	}
	return locked, nil
}

func toAdjustmentResponse(t *entity.AdjustmentTransaction) *dto.AdjustmentTransactionResponse {
	if t == nil {
		return nil
	}
	return &dto.AdjustmentTransactionResponse{
		ID:     t.ID,
		SKU:    t.SKU,
		Qty:    t.Qty,
		Amount: t.Amount,
	}
}
