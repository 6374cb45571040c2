package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order es una venta: conceptualmente un retiro de stock con foto de precio.
// Price se copia del producto al crear la orden y no se vuelve a tocar aunque
// el precio del producto cambie después. Las órdenes NO escriben en el libro
// de transacciones; son un segundo flujo que alimenta el mismo invariante.
type Order struct {
	ID         string
	ProductID  string
	Quantity   int // siempre positivo, descuenta stock
	Price      decimal.Decimal
	CreatedAt  time.Time
	ModifiedAt time.Time
}
