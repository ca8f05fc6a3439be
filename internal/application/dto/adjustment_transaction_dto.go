package dto

import "github.com/shopspring/decimal"

// AdjustmentTransactionRequest body para crear/actualizar una transacción de ajuste.
// Qty es un entero distinto de cero (required rechaza el 0).
type AdjustmentTransactionRequest struct {
	SKU string `json:"sku" validate:"required,min=1"`
	Qty int64  `json:"qty" validate:"required"`
}

// AdjustmentTransactionResponse salida de una transacción con su monto derivado.
type AdjustmentTransactionResponse struct {
	ID     int64           `json:"id"`
	SKU    string          `json:"sku"`
	Qty    int64           `json:"qty"`
	Amount decimal.Decimal `json:"amount" swaggertype:"string"`
}

// AdjustmentTransactionListResult página de transacciones y total de registros.
type AdjustmentTransactionListResult struct {
	Items        []AdjustmentTransactionResponse
	TotalRecords int
}
