package repository

import (
	"context"

	"github.com/jhoicas/adjustment-ledger-api/internal/domain/entity"
)

// AdjustmentTransactionRepository define el puerto de persistencia del ledger de ajustes.
// Amount se calcula en la lectura (qty * precio del producto).
type AdjustmentTransactionRepository interface {
	List(ctx context.Context, limit, offset int) ([]*entity.AdjustmentTransaction, error)
	Count(ctx context.Context) (int, error)
	// GetByID devuelve (nil, nil) si la transacción no existe.
	GetByID(ctx context.Context, id int64) (*entity.AdjustmentTransaction, error)
	// GetForUpdate como GetByID pero bloquea la fila (SELECT FOR UPDATE). Usar dentro de una tx.
	GetForUpdate(ctx context.Context, id int64) (*entity.AdjustmentTransaction, error)
	// Create asigna ID y Amount a la transacción.
	Create(ctx context.Context, tx *entity.AdjustmentTransaction) error
	Update(ctx context.Context, tx *entity.AdjustmentTransaction) error
	Delete(ctx context.Context, id int64) error
}
