package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ramdev/inventory-api/internal/application/dto"
	"github.com/ramdev/inventory-api/internal/domain"
	"github.com/ramdev/inventory-api/internal/domain/entity"
	"github.com/ramdev/inventory-api/internal/domain/repository"
)

// Engine es el motor de consistencia de stock. Toda operación que afecta la
// cantidad de un producto pasa por aquí: validar, mutar la cantidad y anexar
// el registro, dentro de una sola transacción con bloqueo de fila
// (SELECT FOR UPDATE) sobre el producto. Así la cantidad viva siempre es
// reconstruible como cantidad inicial + Σ top-ups − Σ retiros − Σ órdenes
// sobre los registros sobrevivientes.
//
// El motor no guarda estado entre peticiones; la serialización por producto
// la da el bloqueo de fila, no un lock global.
type Engine struct {
	txRunner TxRunner
}

// NewEngine construye el motor.
func NewEngine(txRunner TxRunner) *Engine {
	return &Engine{txRunner: txRunner}
}

// CreateTransaction registra un movimiento manual de stock (top-up o retiro).
// "T" suma incondicionalmente; "W" exige stock suficiente. Producto y registro
// se confirman juntos o no se confirma nada.
func (e *Engine) CreateTransaction(ctx context.Context, in dto.CreateTransactionRequest) (*dto.TransactionDTO, error) {
	if err := validateStockRequest(in.ProductID, in.Quantity); err != nil {
		return nil, err
	}

	now := time.Now()
	var out *dto.TransactionDTO
	err := e.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		trxRepo repository.InventoryTransactionRepository,
		_ repository.OrderRepository,
	) error {
		// Bloquea la fila del producto durante validar+mutar+anexar.
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		trx := &entity.InventoryTransaction{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Quantity:  in.Quantity,
			CreatedAt: now,
		}
		switch in.Type {
		case dto.TransactionTypeCodeTopUp:
			trx.Type = entity.TransactionTypeTopUp
			product.CurrentQuantity += in.Quantity
		case dto.TransactionTypeCodeWithdraw:
			if product.CurrentQuantity < in.Quantity {
				return domain.ErrInsufficientStock
			}
			trx.Type = entity.TransactionTypeWithdraw
			product.CurrentQuantity -= in.Quantity
		default:
			return domain.ErrTransactionTypeMissing
		}
		product.ModifiedAt = now

		if err := productRepo.Save(product); err != nil {
			return err
		}
		if err := trxRepo.Create(trx); err != nil {
			return err
		}
		out = dto.NewTransactionDTO(trx, product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateOrder registra una venta: misma forma validar+descontar que un retiro,
// pero escribe en el flujo de órdenes (no en el libro de transacciones) y
// captura el precio vigente del producto como foto.
func (e *Engine) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderDTO, error) {
	if err := validateStockRequest(in.ProductID, in.Quantity); err != nil {
		return nil, err
	}

	now := time.Now()
	var out *dto.OrderDTO
	err := e.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.InventoryTransactionRepository,
		orderRepo repository.OrderRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if product.CurrentQuantity < in.Quantity {
			return domain.ErrInsufficientStock
		}

		product.CurrentQuantity -= in.Quantity
		product.ModifiedAt = now

		order := &entity.Order{
			ID:         uuid.New().String(),
			ProductID:  product.ID,
			Quantity:   in.Quantity,
			Price:      product.Price, // foto del precio, no enlace vivo
			CreatedAt:  now,
			ModifiedAt: now,
		}

		if err := productRepo.Save(product); err != nil {
			return err
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		out = dto.NewOrderDTO(order, product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// validateStockRequest valida lo que se puede rechazar antes de abrir la
// transacción: sin efectos secundarios posibles.
func validateStockRequest(productID string, quantity int) error {
	var fields []string
	if productID == "" {
		fields = append(fields, "productId: must not be blank")
	}
	if quantity <= 0 {
		fields = append(fields, "quantity: must be positive")
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}
