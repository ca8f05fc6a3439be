package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/adjustment-ledger-api/internal/application/dto"
	"github.com/jhoicas/adjustment-ledger-api/internal/application/inventory"
	"github.com/jhoicas/adjustment-ledger-api/internal/domain"
	"github.com/jhoicas/adjustment-ledger-api/pkg/logger"
)

// MsgTransactionDeleted mensaje de borrado de transacción.
const MsgTransactionDeleted = "Transaction deleted successfully"

// AdjustmentTransactionHandler maneja las peticiones HTTP del ledger de ajustes.
type AdjustmentTransactionHandler struct {
	uc     *inventory.AdjustmentUseCase
	errors errorMapper
}

// NewAdjustmentTransactionHandler construye el handler.
func NewAdjustmentTransactionHandler(uc *inventory.AdjustmentUseCase, log *logger.Logger) *AdjustmentTransactionHandler {
	return &AdjustmentTransactionHandler{uc: uc, errors: errorMapper{log: log}}
}

// List godoc
// @Summary      Listar transacciones de ajuste
// @Tags         adjustment-transactions
// @Produce      json
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200    {object}  dto.DataResponse{data=[]dto.AdjustmentTransactionResponse}
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /adjustment-transactions [get]
func (h *AdjustmentTransactionHandler) List(c *fiber.Ctx) error {
	page := dto.NewPageRequest(c.Query("page"), c.Query("limit"), dto.DefaultTransactionPageSize)
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return h.errors.respond(c, err, false)
	}
	return c.JSON(dto.DataResponse{Data: out.Items, Meta: dto.NewPageMeta(page, out.TotalRecords)})
}

// GetByID godoc
// @Summary      Obtener transacción por ID
// @Tags         adjustment-transactions
// @Produce      json
// @Param        id   path  int  true  "ID de la transacción"
// @Success      200  {object}  dto.DataResponse{data=dto.AdjustmentTransactionResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /adjustment-transactions/{id} [get]
func (h *AdjustmentTransactionHandler) GetByID(c *fiber.Ctx) error {
	id, ok := transactionID(c)
	if !ok {
		return h.errors.respond(c, domain.ErrTransactionNotFound, false)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return h.errors.respond(c, err, false)
	}
	if out == nil {
		return h.errors.respond(c, domain.ErrTransactionNotFound, false)
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Create godoc
// @Summary      Registrar transacción de ajuste
// @Description  qty positiva repone, negativa descuenta; el stock resultante no puede ser negativo.
// @Tags         adjustment-transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustmentTransactionRequest  true  "SKU y cantidad"
// @Success      201   {object}  dto.DataResponse{data=dto.AdjustmentTransactionResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /adjustment-transactions [post]
func (h *AdjustmentTransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.AdjustmentTransactionRequest
	if resp := bindAndValidate(c, &in); resp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.errors.respond(c, err, true)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Data: out})
}

// Update godoc
// @Summary      Actualizar transacción de ajuste
// @Description  Valida el efecto neto sobre el stock, también cuando cambia el SKU.
// @Tags         adjustment-transactions
// @Accept       json
// @Produce      json
// @Param        id    path  int                               true  "ID de la transacción"
// @Param        body  body  dto.AdjustmentTransactionRequest  true  "SKU y cantidad"
// @Success      200   {object}  dto.DataResponse{data=dto.AdjustmentTransactionResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /adjustment-transactions/{id} [put]
func (h *AdjustmentTransactionHandler) Update(c *fiber.Ctx) error {
	id, ok := transactionID(c)
	if !ok {
		return h.errors.respond(c, domain.ErrTransactionNotFound, false)
	}
	var in dto.AdjustmentTransactionRequest
	if resp := bindAndValidate(c, &in); resp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.errors.respond(c, err, true)
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Delete godoc
// @Summary      Eliminar transacción de ajuste
// @Tags         adjustment-transactions
// @Produce      json
// @Param        id   path  int  true  "ID de la transacción"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /adjustment-transactions/{id} [delete]
func (h *AdjustmentTransactionHandler) Delete(c *fiber.Ctx) error {
	id, ok := transactionID(c)
	if !ok {
		return h.errors.respond(c, domain.ErrTransactionNotFound, false)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.errors.respond(c, err, false)
	}
	return c.JSON(dto.MessageResponse{Message: MsgTransactionDeleted})
}

// transactionID lee :id. Un id no numérico no puede existir: se trata como no encontrado.
func transactionID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
