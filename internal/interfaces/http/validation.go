package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/adjustment-ledger-api/internal/application/dto"
)

const codeInvalidBody = "INVALID_BODY"

const msgInvalidBody = "cuerpo de la petición inválido"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// errores con el nombre JSON del campo
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// decimal.Decimal llega a las reglas como su texto exacto, sin pasar por float64
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("price", validPrice)
	return v
}

// Rango de la columna products.price NUMERIC(12,2).
const priceScale = 2

var maxPrice = decimal.New(1, 10) // 10^10, exclusivo

// validPrice: mayor que 0, como mucho dos decimales y dentro del rango de la columna.
func validPrice(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.IsPositive() && d.Equal(d.Round(priceScale)) && d.LessThan(maxPrice)
}

// bindAndValidate parsea el body JSON en out y aplica las reglas validate.
// Devuelve la respuesta 400 lista para enviar, o nil si el body es válido.
func bindAndValidate(c *fiber.Ctx, out any) *dto.ErrorResponse {
	if err := c.BodyParser(out); err != nil {
		return &dto.ErrorResponse{Code: codeInvalidBody, Message: msgInvalidBody}
	}
	if err := validate.Struct(out); err != nil {
		resp := &dto.ErrorResponse{Code: codeInvalidBody, Message: msgInvalidBody}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			resp.Errors = make(map[string]string, len(verrs))
			for _, fe := range verrs {
				resp.Errors[fe.Field()] = fieldMessage(fe)
			}
		}
		return resp
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.Int64 {
			return "debe ser un entero distinto de cero"
		}
		return "es requerido"
	case "min":
		return "no puede estar vacío"
	case "url":
		return "debe ser una URL válida"
	case "price":
		return "debe ser mayor que 0, con hasta 2 decimales y menor que 10000000000"
	default:
		return "inválido (" + fe.Tag() + ")"
	}
}
