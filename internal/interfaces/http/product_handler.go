package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ramdev/inventory-api/internal/application/dto"
	"github.com/ramdev/inventory-api/internal/application/usecase"
)

// ProductHandler maneja el CRUD de catálogo. No toca el stock: la cantidad
// solo se mueve por /transaction y /order.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductDTO  true  "Datos del producto"
// @Success      200   {object}  dto.ApiResponse
// @Failure      400   {object}  dto.ApiResponse
// @Router       /product [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductDTO
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Product Created", out)
}

// Get godoc
// @Summary      Obtener producto por id
// @Tags         products
// @Produce      json
// @Param        id  query  string  true  "ID del producto"
// @Success      200  {object}  dto.ApiResponse
// @Failure      404  {object}  dto.ApiResponse
// @Router       /product/get-product [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Query("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Product Found", out)
}

// List godoc
// @Summary      Listar productos paginados
// @Tags         products
// @Produce      json
// @Param        pageNumber  query  int     false  "Página (desde 0)"
// @Param        pageSize    query  int     false  "Tamaño de página"  default(10)
// @Param        sortBy      query  string  false  "Campo de orden"    default(name)
// @Success      200  {object}  dto.ApiResponse
// @Router       /product/get-products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Products Found", out)
}

// Update godoc
// @Summary      Actualizar campos de catálogo de un producto
// @Description  currentQuantity no se puede editar por aquí; el stock se mueve
//               solo vía transacciones y órdenes.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProductRequest  true  "Producto con productId"
// @Success      200   {object}  dto.ApiResponse
// @Failure      404   {object}  dto.ApiResponse
// @Router       /product/update [post]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Update(in)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Product Updated", out)
}

// Delete godoc
// @Summary      Borrar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  object  true  "{id}"
// @Success      200   {object}  dto.ApiResponse
// @Router       /product/delete [post]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	var in deleteRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if err := h.uc.Delete(in.ID); err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Product Deleted", "Success")
}
