package entity

import "time"

// Tipos de transacción de inventario. En el body HTTP llegan como códigos
// cortos ("T" / "W"); aquí se guardan con el nombre completo.
const (
	TransactionTypeTopUp    = "TOPUP"
	TransactionTypeWithdraw = "WITHDRAW"
)

// InventoryTransaction es una entrada del libro de movimientos de stock.
// Inmutable una vez creada, salvo por la vía de corrección administrativa,
// que no ajusta el stock del producto.
type InventoryTransaction struct {
	ID        string
	ProductID string
	Type      string // TOPUP o WITHDRAW
	Quantity  int    // siempre positivo; el signo lo da el tipo
	CreatedAt time.Time
}
