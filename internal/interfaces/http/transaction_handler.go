package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ramdev/inventory-api/internal/application/dto"
	"github.com/ramdev/inventory-api/internal/application/stock"
	"github.com/ramdev/inventory-api/internal/application/usecase"
)

// TransactionHandler maneja las peticiones HTTP del libro de transacciones.
// La creación pasa por el motor de stock; el resto por el caso de uso de
// consulta/corrección.
type TransactionHandler struct {
	engine *stock.Engine
	uc     *usecase.TransactionUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(engine *stock.Engine, uc *usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{engine: engine, uc: uc}
}

// Create godoc
// @Summary      Registrar transacción de stock (top-up o retiro)
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "productId, type (T|W), quantity"
// @Success      200   {object}  dto.ApiResponse
// @Failure      400   {object}  dto.ApiResponse
// @Failure      404   {object}  dto.ApiResponse
// @Failure      409   {object}  dto.ApiResponse
// @Router       /transaction [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.engine.CreateTransaction(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Transaction Created", out)
}

// Get godoc
// @Summary      Obtener transacción por id
// @Tags         transactions
// @Produce      json
// @Param        id  query  string  true  "ID de la transacción"
// @Success      200  {object}  dto.ApiResponse
// @Failure      404  {object}  dto.ApiResponse
// @Router       /transaction/get-transaction [get]
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Query("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Transaction Found", out)
}

// List godoc
// @Summary      Listar transacciones paginadas
// @Tags         transactions
// @Produce      json
// @Param        pageNumber  query  int     false  "Página (desde 0)"
// @Param        pageSize    query  int     false  "Tamaño de página"  default(10)
// @Param        sortBy      query  string  false  "Campo de orden"    default(transactionId)
// @Success      200  {object}  dto.ApiResponse
// @Router       /transaction/get-transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Transactions Found", out)
}

// Update godoc
// @Summary      Corrección administrativa de una transacción
// @Description  Sobreescribe campos tal cual; NO revalida ni ajusta el stock
//               del producto.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateTransactionRequest  true  "Transacción con transactionId"
// @Success      200   {object}  dto.ApiResponse
// @Failure      404   {object}  dto.ApiResponse
// @Router       /transaction/update [post]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Update(in)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Transaction Updated", out)
}

// Delete godoc
// @Summary      Borrar transacción (no revierte el stock)
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  object  true  "{id}"
// @Success      200   {object}  dto.ApiResponse
// @Router       /transaction/delete [post]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	var in deleteRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if err := h.uc.Delete(in.ID); err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Transaction Deleted", "Success")
}
