package ports

import (
	"context"

	"github.com/jhoicas/adjustment-ledger-api/internal/application/dto"
)

// CatalogSource define el puerto de salida hacia el catálogo externo de productos.
// El error de red se propaga sin modificar; el caso de uso no reintenta.
type CatalogSource interface {
	FetchCatalog(ctx context.Context) ([]dto.CatalogProduct, error)
}
