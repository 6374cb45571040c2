package repository

import "github.com/ramdev/inventory-api/internal/domain/entity"

// TransactionWithProduct es el modelo de lectura de una transacción con su
// producto asociado (la API expone el producto embebido).
type TransactionWithProduct struct {
	Transaction entity.InventoryTransaction
	Product     entity.Product
}

// InventoryTransactionRepository define el puerto de persistencia para el
// libro de transacciones. Create es append-only; Save existe solo para la vía
// de corrección administrativa.
type InventoryTransactionRepository interface {
	Create(trx *entity.InventoryTransaction) error
	GetByID(id string) (*entity.InventoryTransaction, error)
	Save(trx *entity.InventoryTransaction) error
	Page(sortBy string, offset, limit int) ([]TransactionWithProduct, int64, error)
	// Delete falla si el id no existe (a diferencia del delete de órdenes).
	Delete(id string) error
}
