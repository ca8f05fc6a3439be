package ports

import (
	"context"

	"github.com/jhoicas/adjustment-ledger-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Commit si fn devuelve nil; Rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		transactions repository.AdjustmentTransactionRepository,
	) error) error
}
