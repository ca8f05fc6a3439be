package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustmentTransaction ajuste de stock con signo sobre un SKU.
// Qty positiva = reposición; negativa = venta o merma.
// Amount = Qty * precio del producto, calculado al leer.
type AdjustmentTransaction struct {
	ID        int64
	SKU       string
	Qty       int64
	Amount    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
