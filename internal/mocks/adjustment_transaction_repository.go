package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/adjustment-ledger-api/internal/domain/entity"
	"github.com/jhoicas/adjustment-ledger-api/internal/domain/repository"
)

var _ repository.AdjustmentTransactionRepository = (*AdjustmentTransactionRepository)(nil)

// AdjustmentTransactionRepository mock de repository.AdjustmentTransactionRepository.
type AdjustmentTransactionRepository struct{ mock.Mock }

func (m *AdjustmentTransactionRepository) List(ctx context.Context, limit, offset int) ([]*entity.AdjustmentTransaction, error) {
	args := m.Called(ctx, limit, offset)
	list, _ := args.Get(0).([]*entity.AdjustmentTransaction)
	return list, args.Error(1)
}

func (m *AdjustmentTransactionRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *AdjustmentTransactionRepository) GetByID(ctx context.Context, id int64) (*entity.AdjustmentTransaction, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*entity.AdjustmentTransaction)
	return t, args.Error(1)
}

func (m *AdjustmentTransactionRepository) GetForUpdate(ctx context.Context, id int64) (*entity.AdjustmentTransaction, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*entity.AdjustmentTransaction)
	return t, args.Error(1)
}

func (m *AdjustmentTransactionRepository) Create(ctx context.Context, t *entity.AdjustmentTransaction) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *AdjustmentTransactionRepository) Update(ctx context.Context, t *entity.AdjustmentTransaction) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *AdjustmentTransactionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
