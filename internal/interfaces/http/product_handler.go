package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/adjustment-ledger-api/internal/application/dto"
	"github.com/jhoicas/adjustment-ledger-api/internal/application/usecase"
	"github.com/jhoicas/adjustment-ledger-api/internal/domain"
	"github.com/jhoicas/adjustment-ledger-api/pkg/logger"
)

// MsgProductDeleted mensaje de borrado de producto.
const MsgProductDeleted = "product deleted successfully"

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc     *usecase.ProductUseCase
	errors errorMapper
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, errors: errorMapper{log: log}}
}

// List godoc
// @Summary      Listar productos
// @Description  Productos ordenados por SKU con su stock actual (suma del ledger).
// @Tags         products
// @Produce      json
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Límite"  default(8)
// @Success      200    {object}  dto.DataResponse{data=[]dto.ProductResponse}
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := dto.NewPageRequest(c.Query("page"), c.Query("limit"), dto.DefaultProductPageSize)
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return h.errors.respond(c, err, false)
	}
	return c.JSON(dto.DataResponse{Data: out.Items, Meta: dto.NewPageMeta(page, out.TotalRecords)})
}

// GetBySKU godoc
// @Summary      Obtener producto por SKU
// @Tags         products
// @Produce      json
// @Param        sku  path  string  true  "SKU del producto"
// @Success      200  {object}  dto.DataResponse{data=dto.ProductResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{sku} [get]
func (h *ProductHandler) GetBySKU(c *fiber.Ctx) error {
	out, err := h.uc.GetBySKU(c.UserContext(), c.Params("sku"))
	if err != nil {
		return h.errors.respond(c, err, false)
	}
	if out == nil {
		return h.errors.respond(c, domain.ErrProductNotFound, false)
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Create godoc
// @Summary      Crear producto
// @Description  El producto nace con stock 0; el stock se carga con transacciones de ajuste.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.DataResponse{data=dto.ProductResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if resp := bindAndValidate(c, &in); resp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}
	existing, err := h.uc.GetBySKU(c.UserContext(), in.SKU)
	if err != nil {
		return h.errors.respond(c, err, false)
	}
	if existing != nil {
		return h.errors.respond(c, domain.ErrSKUAlreadyExists, false)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.errors.respond(c, err, false)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Data: out})
}

// Update godoc
// @Summary      Actualizar producto
// @Description  Reescribe todos los campos; el SKU puede cambiar y el ledger lo sigue.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        sku   path  string              true  "SKU actual"
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      200   {object}  dto.DataResponse{data=dto.ProductResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /products/{sku} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if resp := bindAndValidate(c, &in); resp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("sku"), in)
	if err != nil {
		return h.errors.respond(c, err, false)
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Delete godoc
// @Summary      Eliminar producto
// @Description  Borra el producto y sus transacciones de ajuste.
// @Tags         products
// @Produce      json
// @Param        sku  path  string  true  "SKU del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{sku} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("sku")); err != nil {
		return h.errors.respond(c, err, false)
	}
	return c.JSON(dto.MessageResponse{Message: MsgProductDeleted})
}

// Seed godoc
// @Summary      Importar catálogo externo
// @Description  Inserta los productos nuevos del catálogo con su stock inicial; los SKU existentes se omiten.
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.SeedSummary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /products/seed [post]
func (h *ProductHandler) Seed(c *fiber.Ctx) error {
	out, err := h.uc.SeedFromCatalog(c.UserContext())
	if err != nil {
		return h.errors.respond(c, err, false)
	}
	return c.JSON(out)
}
