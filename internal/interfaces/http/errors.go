package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/adjustment-ledger-api/internal/application/dto"
	"github.com/jhoicas/adjustment-ledger-api/internal/domain"
	"github.com/jhoicas/adjustment-ledger-api/pkg/logger"
)

// Códigos de error de la API.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeDuplicate         = "DUPLICATE"
	CodeProductNotFound   = "PRODUCT_NOT_FOUND"
	CodeInternal          = "INTERNAL"
)

const msgInternal = "error interno del servidor"

// errorMapper traduce errores de dominio a respuestas HTTP. Lo no reconocido es 500
// con mensaje genérico; el detalle solo va al log.
type errorMapper struct {
	log *logger.Logger
}

// respond escribe la respuesta para err. productInBody indica que el SKU viene en el body de
// la petición: un producto inexistente es entonces una entrada inválida (400) y no un 404.
func (m errorMapper) respond(c *fiber.Ctx, err error, productInBody bool) error {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		if productInBody {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeProductNotFound, Message: err.Error()})
		}
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: err.Error()})
	case errors.Is(err, domain.ErrTransactionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInsufficientStock, Message: err.Error()})
	case errors.Is(err, domain.ErrSKUAlreadyExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeDuplicate, Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: codeInvalidBody, Message: err.Error()})
	}
	m.log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("request_id", GetRequestID(c)).
		Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: msgInternal})
}

// ErrorHandler fiber.ErrorHandler para errores que escapan de los handlers (panics, rutas
// inexistentes): respeta el status de *fiber.Error y oculta el resto.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := CodeInternal
			if fe.Code == fiber.StatusNotFound {
				code = CodeNotFound
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
		}
		return errorMapper{log: log}.respond(c, err, false)
	}
}
