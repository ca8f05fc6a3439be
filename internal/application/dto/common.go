package dto

import (
	"math"
	"strconv"
	"strings"
)

// Valores por defecto de paginación. Productos y transacciones usan tamaños distintos.
const (
	DefaultPage                = 1
	DefaultProductPageSize     = 8
	DefaultTransactionPageSize = 10
	MaxPageSize                = 100
	// MaxOffset tope de filas a saltar; page se recorta para no pasarlo.
	MaxOffset = math.MaxInt32
)

// PageRequest paginación por número de página.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest interpreta page/limit libres del query string.
// Ausentes, no numéricos o no positivos caen a los valores por defecto; nunca falla.
// Una página tan alta que el offset pasaría MaxOffset se recorta a la última representable.
func NewPageRequest(rawPage, rawLimit string, defaultLimit int) PageRequest {
	limit := ParsePositiveInt(rawLimit, defaultLimit)
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	page := ParsePositiveInt(rawPage, DefaultPage)
	if maxPage := MaxOffset/limit + 1; page > maxPage {
		page = maxPage
	}
	return PageRequest{Page: page, Limit: limit}
}

// Offset filas a saltar: (page-1)*limit.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePositiveInt devuelve def si raw no es un entero positivo.
func ParsePositiveInt(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// CalculateTotalPages número de páginas para totalRecords registros: 0 sin registros, si no ceil(total/limit).
func CalculateTotalPages(totalRecords, limit int) int {
	if totalRecords <= 0 || limit <= 0 {
		return 0
	}
	return (totalRecords + limit - 1) / limit
}

// PageMeta metadatos de página en respuestas.
type PageMeta struct {
	Page         int `json:"page"`
	Limit        int `json:"limit"`
	TotalRecords int `json:"totalRecords"`
	TotalPages   int `json:"totalPages"`
}

// NewPageMeta arma los metadatos para la página pedida.
func NewPageMeta(p PageRequest, totalRecords int) *PageMeta {
	return &PageMeta{
		Page:         p.Page,
		Limit:        p.Limit,
		TotalRecords: totalRecords,
		TotalPages:   CalculateTotalPages(totalRecords, p.Limit),
	}
}

// DataResponse sobre de respuesta: {data, meta?}.
type DataResponse struct {
	Data any       `json:"data"`
	Meta *PageMeta `json:"meta,omitempty"`
}

// MessageResponse respuesta con solo mensaje (borrados, seed).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
