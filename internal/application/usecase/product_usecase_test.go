package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/jhoicas/adjustment-ledger-api/internal/application/dto"
	"github.com/jhoicas/adjustment-ledger-api/internal/application/usecase"
	"github.com/jhoicas/adjustment-ledger-api/internal/domain"
	"github.com/jhoicas/adjustment-ledger-api/internal/domain/entity"
	"github.com/jhoicas/adjustment-ledger-api/internal/mocks"
	"github.com/jhoicas/adjustment-ledger-api/pkg/logger"
)

type productFixture struct {
	products     *mocks.ProductRepository
	transactions *mocks.AdjustmentTransactionRepository
	catalog      *mocks.CatalogSource
	tx           *mocks.TxRunner
	uc           *usecase.ProductUseCase
}

func newProductFixture() *productFixture {
	f := &productFixture{
		products:     new(mocks.ProductRepository),
		transactions: new(mocks.AdjustmentTransactionRepository),
		catalog:      new(mocks.CatalogSource),
	}
	f.tx = &mocks.TxRunner{Products: f.products, Transactions: f.transactions}
	f.uc = usecase.NewProductUseCase(f.products, f.tx, f.catalog, noop.NewTracerProvider().Tracer("test"), logger.Nop())
	return f
}

func validRequest(sku string) dto.ProductRequest {
	desc := "Descripción"
	return dto.ProductRequest{
		SKU:         sku,
		Title:       "Producto " + sku,
		Image:       "https://img.example.com/" + sku + ".png",
		Price:       decimal.RequireFromString("19.99"),
		Description: &desc,
	}
}

func TestProductUseCase_List(t *testing.T) {
	f := newProductFixture()
	f.products.On("Count", mock.Anything).Return(20, nil)
	f.products.On("List", mock.Anything, 8, 8).Return([]*entity.Product{
		{SKU: "SKU-9", Title: "Nueve", Price: decimal.NewFromInt(5), Stock: 3},
	}, nil)

	out, err := f.uc.List(context.Background(), dto.PageRequest{Page: 2, Limit: 8})
	require.NoError(t, err)
	assert.Equal(t, 20, out.TotalRecords)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "SKU-9", out.Items[0].SKU)
	assert.Equal(t, int64(3), out.Items[0].Stock)
}

func TestProductUseCase_List_ErrorEnConteo(t *testing.T) {
	f := newProductFixture()
	boom := errors.New("sin conexión")
	f.products.On("Count", mock.Anything).Return(0, boom)

	_, err := f.uc.List(context.Background(), dto.PageRequest{Page: 1, Limit: 8})
	assert.ErrorIs(t, err, boom)
	f.products.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductUseCase_GetBySKU_NoExiste(t *testing.T) {
	f := newProductFixture()
	f.products.On("GetBySKU", mock.Anything, "X").Return(nil, nil)

	out, err := f.uc.GetBySKU(context.Background(), "X")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductUseCase_Create_StockCero(t *testing.T) {
	f := newProductFixture()
	f.products.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
		return p.SKU == "SKU-1" && p.Stock == 0
	})).Return(nil)

	out, err := f.uc.Create(context.Background(), validRequest("SKU-1"))
	require.NoError(t, err)
	assert.Equal(t, "SKU-1", out.SKU)
	assert.Equal(t, int64(0), out.Stock)
	assert.True(t, decimal.RequireFromString("19.99").Equal(out.Price))
}

func TestProductUseCase_Create_Duplicado(t *testing.T) {
	f := newProductFixture()
	f.products.On("Create", mock.Anything, mock.Anything).Return(domain.ErrSKUAlreadyExists)

	_, err := f.uc.Create(context.Background(), validRequest("SKU-1"))
	assert.ErrorIs(t, err, domain.ErrSKUAlreadyExists)
}

func TestProductUseCase_Update_NoEncontrado(t *testing.T) {
	f := newProductFixture()
	f.products.On("GetBySKU", mock.Anything, "SKU-1").Return(nil, nil)

	_, err := f.uc.Update(context.Background(), "SKU-1", validRequest("SKU-1"))
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	f.products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductUseCase_Update_SKUDeOtroProducto(t *testing.T) {
	f := newProductFixture()
	f.products.On("GetBySKU", mock.Anything, "SKU-1").Return(&entity.Product{SKU: "SKU-1"}, nil)
	f.products.On("GetBySKU", mock.Anything, "SKU-2").Return(&entity.Product{SKU: "SKU-2"}, nil)

	_, err := f.uc.Update(context.Background(), "SKU-1", validRequest("SKU-2"))
	assert.ErrorIs(t, err, domain.ErrSKUAlreadyExists)
	f.products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

// Reenviar el mismo SKU no es conflicto.
func TestProductUseCase_Update_MismoSKU(t *testing.T) {
	f := newProductFixture()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f.products.On("GetBySKU", mock.Anything, "SKU-1").Return(&entity.Product{SKU: "SKU-1", Stock: 12, CreatedAt: created}, nil)
	f.products.On("Update", mock.Anything, "SKU-1", mock.MatchedBy(func(p *entity.Product) bool {
		return p.SKU == "SKU-1" && p.CreatedAt.Equal(created)
	})).Return(nil)

	out, err := f.uc.Update(context.Background(), "SKU-1", validRequest("SKU-1"))
	require.NoError(t, err)
	assert.Equal(t, int64(12), out.Stock)
	assert.Equal(t, "Producto SKU-1", out.Title)
}

func TestProductUseCase_Update_Renombra(t *testing.T) {
	f := newProductFixture()
	f.products.On("GetBySKU", mock.Anything, "SKU-1").Return(&entity.Product{SKU: "SKU-1", Stock: 4}, nil)
	f.products.On("GetBySKU", mock.Anything, "SKU-NEW").Return(nil, nil)
	f.products.On("Update", mock.Anything, "SKU-1", mock.MatchedBy(func(p *entity.Product) bool {
		return p.SKU == "SKU-NEW"
	})).Return(nil)

	out, err := f.uc.Update(context.Background(), "SKU-1", validRequest("SKU-NEW"))
	require.NoError(t, err)
	assert.Equal(t, "SKU-NEW", out.SKU)
	assert.Equal(t, int64(4), out.Stock)
}

func TestProductUseCase_Delete(t *testing.T) {
	f := newProductFixture()
	f.products.On("GetBySKU", mock.Anything, "SKU-1").Return(&entity.Product{SKU: "SKU-1"}, nil)
	f.products.On("Delete", mock.Anything, "SKU-1").Return(nil)

	require.NoError(t, f.uc.Delete(context.Background(), "SKU-1"))
	f.products.AssertExpectations(t)
}

func TestProductUseCase_Delete_NoEncontrado(t *testing.T) {
	f := newProductFixture()
	f.products.On("GetBySKU", mock.Anything, "SKU-1").Return(nil, nil)

	err := f.uc.Delete(context.Background(), "SKU-1")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	f.products.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// ──────────────────────────────────────────────────────────────────────────────
// SeedFromCatalog
// ──────────────────────────────────────────────────────────────────────────────

func catalogItem(sku string, stock int64) dto.CatalogProduct {
	return dto.CatalogProduct{
		SKU:         sku,
		Title:       "Item " + sku,
		Description: "desc",
		Price:       decimal.RequireFromString("9.99"),
		Stock:       stock,
		Images:      []string{"https://cdn.example.com/" + sku + ".jpg"},
	}
}

// N=3 en el catálogo, M=1 ya existente → 2 productos y 2 ajustes iniciales.
func TestProductUseCase_SeedFromCatalog(t *testing.T) {
	f := newProductFixture()
	f.catalog.On("FetchCatalog", mock.Anything).Return([]dto.CatalogProduct{
		catalogItem("A", 10), catalogItem("B", 5), catalogItem("C", 7),
	}, nil)
	f.products.On("GetBySKU", mock.Anything, "A").Return(nil, nil)
	f.products.On("GetBySKU", mock.Anything, "B").Return(&entity.Product{SKU: "B"}, nil)
	f.products.On("GetBySKU", mock.Anything, "C").Return(nil, nil)
	f.products.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
		return p.Image == "https://cdn.example.com/"+p.SKU+".jpg" && p.Description != nil
	})).Return(nil)
	f.transactions.On("Create", mock.Anything, mock.Anything).Return(nil)

	out, err := f.uc.SeedFromCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, usecase.SeedSuccessMessage, out.Message)
	assert.Equal(t, 2, out.Created)
	assert.Equal(t, 1, out.Skipped)
	f.products.AssertNumberOfCalls(t, "Create", 2)
	f.transactions.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(tx *entity.AdjustmentTransaction) bool {
		return tx.SKU == "A" && tx.Qty == 10
	}))
	f.transactions.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(tx *entity.AdjustmentTransaction) bool {
		return tx.SKU == "C" && tx.Qty == 7
	}))
	assert.Equal(t, 2, f.tx.Commits)
}

func TestProductUseCase_SeedFromCatalog_SinStockNoCreaAjuste(t *testing.T) {
	f := newProductFixture()
	f.catalog.On("FetchCatalog", mock.Anything).Return([]dto.CatalogProduct{catalogItem("A", 0)}, nil)
	f.products.On("GetBySKU", mock.Anything, "A").Return(nil, nil)
	f.products.On("Create", mock.Anything, mock.Anything).Return(nil)

	out, err := f.uc.SeedFromCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, out.Created)
	f.transactions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductUseCase_SeedFromCatalog_OmiteInvalidos(t *testing.T) {
	f := newProductFixture()
	noTitle := catalogItem("A", 1)
	noTitle.Title = " "
	noPrice := catalogItem("B", 1)
	noPrice.Price = decimal.Zero
	negative := catalogItem("C", -3)
	f.catalog.On("FetchCatalog", mock.Anything).Return([]dto.CatalogProduct{noTitle, noPrice, negative}, nil)

	out, err := f.uc.SeedFromCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, out.Created)
	assert.Equal(t, 3, out.Skipped)
	f.products.AssertNotCalled(t, "GetBySKU", mock.Anything, mock.Anything)
}

func TestProductUseCase_SeedFromCatalog_CarreraConOtroProceso(t *testing.T) {
	f := newProductFixture()
	f.catalog.On("FetchCatalog", mock.Anything).Return([]dto.CatalogProduct{catalogItem("A", 3)}, nil)
	f.products.On("GetBySKU", mock.Anything, "A").Return(nil, nil)
	f.products.On("Create", mock.Anything, mock.Anything).Return(domain.ErrSKUAlreadyExists)

	out, err := f.uc.SeedFromCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, out.Created)
	assert.Equal(t, 1, out.Skipped)
	assert.Equal(t, 1, f.tx.Rollbacks)
}

func TestProductUseCase_SeedFromCatalog_FalloDeDescarga(t *testing.T) {
	f := newProductFixture()
	boom := errors.New("catálogo no disponible")
	f.catalog.On("FetchCatalog", mock.Anything).Return(nil, boom)

	_, err := f.uc.SeedFromCatalog(context.Background())
	assert.Equal(t, boom, err)
	f.products.AssertNotCalled(t, "GetBySKU", mock.Anything, mock.Anything)
	f.products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.transactions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
