package dto

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CatalogProduct producto tal como lo entrega el catálogo externo.
type CatalogProduct struct {
	SKU         string          `json:"sku"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	Images      []string        `json:"images"`
	Thumbnail   string          `json:"thumbnail"`
}

// Image primera imagen no vacía; si no hay, el thumbnail.
func (p CatalogProduct) Image() string {
	for _, img := range p.Images {
		if strings.TrimSpace(img) != "" {
			return img
		}
	}
	return p.Thumbnail
}
