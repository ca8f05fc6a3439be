package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo identificado por su SKU.
// Stock no se persiste: es la suma de las cantidades de sus transacciones de ajuste.
type Product struct {
	SKU         string // identificador único
	Title       string
	Image       string // URL
	Price       decimal.Decimal
	Description *string
	Stock       int64 // derivado, solo lectura
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
