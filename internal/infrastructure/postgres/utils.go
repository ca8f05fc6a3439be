package postgres

import (
	"errors"
	"slices"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNumericOutOfRange   = "22003"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasPgCode(err, codeUniqueViolation)
}

// isForeignKeyViolation verifica si un error es una violación de FK (23503), p. ej. un ajuste sobre un SKU inexistente.
func isForeignKeyViolation(err error) bool {
	return hasPgCode(err, codeForeignKeyViolation)
}

// isInvalidValue verifica si la BD rechazó un valor fuera de sus restricciones (CHECK o rango NUMERIC).
func isInvalidValue(err error) bool {
	return hasPgCode(err, codeCheckViolation, codeNumericOutOfRange)
}

func hasPgCode(err error, codes ...string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return slices.Contains(codes, pgErr.Code)
	}
	return false
}

// lockOrder deduplica y ordena los SKU para que todas las tx tomen los locks en el mismo orden.
func lockOrder(skus []string) []string {
	out := make([]string, 0, len(skus))
	for _, s := range skus {
		if s != "" {
			out = append(out, s)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
