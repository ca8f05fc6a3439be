package repository

import (
	"context"

	"github.com/jhoicas/adjustment-ledger-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven Stock ya agregado desde el ledger de ajustes.
type ProductRepository interface {
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	Count(ctx context.Context) (int, error)
	// GetBySKU devuelve (nil, nil) si el SKU no existe.
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// LockBySKU bloquea las filas de los productos (SELECT FOR UPDATE). Solo tiene efecto dentro de una tx.
	LockBySKU(ctx context.Context, skus ...string) error
	Create(ctx context.Context, product *entity.Product) error
	// Update reescribe el producto identificado por currentSKU (product.SKU puede ser nuevo).
	Update(ctx context.Context, currentSKU string, product *entity.Product) error
	Delete(ctx context.Context, sku string) error
}
