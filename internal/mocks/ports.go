package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/adjustment-ledger-api/internal/application/dto"
	"github.com/jhoicas/adjustment-ledger-api/internal/application/ports"
	"github.com/jhoicas/adjustment-ledger-api/internal/domain/repository"
)

var (
	_ ports.CatalogSource = (*CatalogSource)(nil)
	_ ports.TxRunner      = (*TxRunner)(nil)
)

// CatalogSource mock de ports.CatalogSource.
type CatalogSource struct{ mock.Mock }

func (m *CatalogSource) FetchCatalog(ctx context.Context) ([]dto.CatalogProduct, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]dto.CatalogProduct)
	return items, args.Error(1)
}

// TxRunner ejecuta fn directamente con los repositorios dados, sin BD.
// Commits cuenta las ejecuciones que terminaron sin error; Rollbacks las que fallaron.
type TxRunner struct {
	Products     repository.ProductRepository
	Transactions repository.AdjustmentTransactionRepository
	Commits      int
	Rollbacks    int
}

func (r *TxRunner) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	transactions repository.AdjustmentTransactionRepository,
) error) error {
	if err := fn(r.Products, r.Transactions); err != nil {
		r.Rollbacks++
		return err
	}
	r.Commits++
	return nil
}
