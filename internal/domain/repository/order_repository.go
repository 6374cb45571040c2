package repository

import "github.com/ramdev/inventory-api/internal/domain/entity"

// OrderWithProduct es el modelo de lectura de una orden con su producto.
type OrderWithProduct struct {
	Order   entity.Order
	Product entity.Product
}

// OrderRepository define el puerto de persistencia para órdenes.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	Save(order *entity.Order) error
	Page(sortBy string, offset, limit int) ([]OrderWithProduct, int64, error)
	// Delete es idempotente: borrar un id inexistente no es un error.
	Delete(id string) error
}
