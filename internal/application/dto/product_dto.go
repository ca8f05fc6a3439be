package dto

import (
	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear o reescribir un producto.
type ProductRequest struct {
	Title       string          `json:"title" validate:"required,min=1"`
	SKU         string          `json:"sku" validate:"required,min=1"`
	Image       string          `json:"image" validate:"required,url"`
	Price       decimal.Decimal `json:"price" validate:"price" swaggertype:"number"`
	Description *string         `json:"description,omitempty"`
}

// ProductResponse salida de un producto con su stock derivado.
type ProductResponse struct {
	SKU         string          `json:"sku"`
	Title       string          `json:"title"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price" swaggertype:"string"`
	Description *string         `json:"description,omitempty"`
	Stock       int64           `json:"stock"`
}

// ProductListResult página de productos y total de registros.
type ProductListResult struct {
	Items        []ProductResponse
	TotalRecords int
}

// SeedSummary resultado del seed desde el catálogo externo.
type SeedSummary struct {
	Message string `json:"message"`
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
}
