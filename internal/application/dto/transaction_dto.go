package dto

import (
	"time"

	"github.com/ramdev/inventory-api/internal/domain/entity"
)

// Códigos de tipo que llegan en el body de POST /transaction.
const (
	TransactionTypeCodeTopUp    = "T"
	TransactionTypeCodeWithdraw = "W"
)

// Campo de orden por defecto para listados de transacciones.
const SortTransactionDefault = "transactionId"

// CreateTransactionRequest body de POST /transaction.
type CreateTransactionRequest struct {
	ProductID string `json:"productId"`
	Type      string `json:"type"` // "T" (top-up) o "W" (withdraw)
	Quantity  int    `json:"quantity"`
}

// TransactionDTO respuesta con el producto embebido, tal como expone la API.
type TransactionDTO struct {
	TransactionID string      `json:"transactionId"`
	Product       *ProductDTO `json:"product"`
	Type          string      `json:"type"`
	Quantity      int         `json:"quantity"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// UpdateTransactionRequest body de POST /transaction/update. Sobreescritura
// directa de campos: esta vía NO revalida stock ni ajusta el producto.
type UpdateTransactionRequest struct {
	TransactionID string  `json:"transactionId"`
	ProductID     *string `json:"productId"`
	Type          *string `json:"type"` // TOPUP o WITHDRAW, literal
	Quantity      *int    `json:"quantity"`
}

// NewTransactionDTO mapea la entidad (y su producto) al DTO.
func NewTransactionDTO(trx *entity.InventoryTransaction, product *entity.Product) *TransactionDTO {
	if trx == nil {
		return nil
	}
	return &TransactionDTO{
		TransactionID: trx.ID,
		Product:       NewProductDTO(product),
		Type:          trx.Type,
		Quantity:      trx.Quantity,
		CreatedAt:     trx.CreatedAt,
	}
}
