package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrProductNotFound     = errors.New("producto no encontrado")
	ErrTransactionNotFound = errors.New("transacción no encontrada")
	ErrInsufficientStock   = errors.New("stock insuficiente del producto")
	ErrSKUAlreadyExists    = errors.New("el SKU ya existe")
	ErrInvalidInput        = errors.New("cuerpo de la petición inválido")
)
