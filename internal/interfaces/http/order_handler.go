package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ramdev/inventory-api/internal/application/dto"
	"github.com/ramdev/inventory-api/internal/application/stock"
	"github.com/ramdev/inventory-api/internal/application/usecase"
)

// OrderHandler maneja las peticiones HTTP de órdenes. La creación descuenta
// stock vía el motor; el resto es consulta/corrección.
type OrderHandler struct {
	engine *stock.Engine
	uc     *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(engine *stock.Engine, uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{engine: engine, uc: uc}
}

// Create godoc
// @Summary      Crear orden (descuenta stock y captura el precio vigente)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "productId, quantity"
// @Success      200   {object}  dto.ApiResponse
// @Failure      404   {object}  dto.ApiResponse
// @Failure      409   {object}  dto.ApiResponse
// @Router       /order [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.engine.CreateOrder(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Order Created", out)
}

// Get godoc
// @Summary      Obtener orden por id
// @Tags         orders
// @Produce      json
// @Param        id  query  string  true  "ID de la orden"
// @Success      200  {object}  dto.ApiResponse
// @Failure      404  {object}  dto.ApiResponse
// @Router       /order/get-order [get]
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Query("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Order Found", out)
}

// List godoc
// @Summary      Listar órdenes paginadas
// @Tags         orders
// @Produce      json
// @Param        pageNumber  query  int     false  "Página (desde 0)"
// @Param        pageSize    query  int     false  "Tamaño de página"  default(10)
// @Param        sortBy      query  string  false  "Campo de orden"    default(orderId)
// @Success      200  {object}  dto.ApiResponse
// @Router       /order/get-orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Orders Found", out)
}

// Update godoc
// @Summary      Corrección administrativa de una orden
// @Description  Sobreescribe campos tal cual; no toca el stock ni recalcula
//               el precio capturado.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateOrderRequest  true  "Orden con orderId"
// @Success      200   {object}  dto.ApiResponse
// @Failure      404   {object}  dto.ApiResponse
// @Router       /order/update [post]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Update(in)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Order Updated", out)
}

// Delete godoc
// @Summary      Borrar orden (idempotente, no devuelve el stock)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  object  true  "{id}"
// @Success      200   {object}  dto.ApiResponse
// @Router       /order/delete [post]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	var in deleteRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if err := h.uc.Delete(in.ID); err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Order Deleted", "Success")
}
