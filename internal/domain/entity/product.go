package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es un producto del catálogo. CurrentQuantity es la cantidad viva y
// solo la modifica el motor de stock; nunca puede quedar negativa. Los campos
// de catálogo (nombre, descripción, precio) se editan por el CRUD directo.
type Product struct {
	ID              string
	Name            string
	Description     string
	Price           decimal.Decimal // precio de venta vigente
	CurrentQuantity int
	CreatedAt       time.Time
	ModifiedAt      time.Time // se refresca en cada actualización
}
