package catalog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/adjustment-ledger-api/internal/application/dto"
	"github.com/jhoicas/adjustment-ledger-api/internal/application/ports"
	"github.com/jhoicas/adjustment-ledger-api/pkg/config"
)

// Verificar en tiempo de compilación que DummyJSONClient implementa CatalogSource.
var _ ports.CatalogSource = (*DummyJSONClient)(nil)

// DummyJSONClient adaptador del catálogo público de dummyjson.com.
type DummyJSONClient struct {
	client *resty.Client
	url    string
	limit  int
}

// ── Protocolo dummyjson ───────────────────────────────────────────────────────

type productsEnvelope struct {
	Products []dto.CatalogProduct `json:"products"`
	Total    int                  `json:"total"`
}

type errorEnvelope struct {
	Message string `json:"message"`
}

// NewDummyJSONClient construye el adaptador. Limit 0 pide el catálogo completo.
func NewDummyJSONClient(cfg config.CatalogConfig) *DummyJSONClient {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	return &DummyJSONClient{client: client, url: cfg.URL, limit: cfg.Limit}
}

// FetchCatalog descarga el listado de productos. Cualquier respuesta no 2xx es error.
func (c *DummyJSONClient) FetchCatalog(ctx context.Context) ([]dto.CatalogProduct, error) {
	var out productsEnvelope
	var apiErr errorEnvelope
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(c.limit)).
		SetResult(&out).
		SetError(&apiErr).
		Get(c.url)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("catálogo: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("catálogo: llamada HTTP fallida: %w", err)
	}
	if resp.IsError() || !resp.IsSuccess() {
		if apiErr.Message != "" {
			return nil, fmt.Errorf("catálogo: HTTP %d: %s", resp.StatusCode(), apiErr.Message)
		}
		return nil, fmt.Errorf("catálogo: HTTP %d", resp.StatusCode())
	}
	return out.Products, nil
}
