package inventory

// ProjectStock stock resultante de aplicar delta sobre el agregado actual.
func ProjectStock(stock, delta int64) int64 {
	return stock + delta
}

// CanApply indica si aplicar delta deja el stock agregado en cero o más.
func CanApply(stock, delta int64) bool {
	return ProjectStock(stock, delta) >= 0
}

// CanRemove indica si quitar la contribución qty de una transacción existente deja stock >= 0.
func CanRemove(stock, qty int64) bool {
	return CanApply(stock, -qty)
}
