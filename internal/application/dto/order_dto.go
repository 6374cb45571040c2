package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ramdev/inventory-api/internal/domain/entity"
)

// Campo de orden por defecto para listados de órdenes.
const SortOrderDefault = "orderId"

// CreateOrderRequest body de POST /order. El precio no viene en el request:
// se toma del producto en el momento de crear la orden.
type CreateOrderRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderDTO respuesta con el producto embebido.
type OrderDTO struct {
	OrderID    string          `json:"orderId"`
	Product    *ProductDTO     `json:"product"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	CreatedAt  time.Time       `json:"createdAt"`
	ModifiedAt time.Time       `json:"modifiedAt"`
}

// UpdateOrderRequest body de POST /order/update. Igual que en transacciones:
// sobreescritura directa, sin tocar el stock del producto.
type UpdateOrderRequest struct {
	OrderID   string           `json:"orderId"`
	ProductID *string          `json:"productId"`
	Quantity  *int             `json:"quantity"`
	Price     *decimal.Decimal `json:"price"`
}

// NewOrderDTO mapea la entidad (y su producto) al DTO.
func NewOrderDTO(order *entity.Order, product *entity.Product) *OrderDTO {
	if order == nil {
		return nil
	}
	return &OrderDTO{
		OrderID:    order.ID,
		Product:    NewProductDTO(product),
		Quantity:   order.Quantity,
		Price:      order.Price,
		CreatedAt:  order.CreatedAt,
		ModifiedAt: order.ModifiedAt,
	}
}
