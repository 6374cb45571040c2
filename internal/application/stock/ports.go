package stock

import (
	"context"

	"github.com/ramdev/inventory-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es lo que garantiza que mutar el producto y
// anexar el registro (transacción u orden) se observen como unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		trxRepo repository.InventoryTransactionRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
