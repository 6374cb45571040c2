package repository

import "github.com/ramdev/inventory-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate solo tiene sentido dentro de una transacción del TxRunner:
// bloquea la fila del producto hasta el Commit/Rollback.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Save(product *entity.Product) error
	Page(sortBy string, offset, limit int) ([]*entity.Product, int64, error)
	Delete(id string) error
}
