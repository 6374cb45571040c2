// Package memory implementa los puertos de persistencia sobre mapas en
// memoria, con un TxRunner de copia y swap que da semántica real de
// Commit/Rollback. Lo usan los tests del motor de stock y del boundary HTTP
// para ejercitar las mismas rutas de código que el backend PostgreSQL.
package memory

import (
	"context"
	"sync"

	"github.com/ramdev/inventory-api/internal/application/stock"
	"github.com/ramdev/inventory-api/internal/domain/entity"
	"github.com/ramdev/inventory-api/internal/domain/repository"
)

// state es el contenido del almacén. Las entidades se guardan por valor, así
// clonar el state basta para aislar una transacción.
type state struct {
	products     map[string]entity.Product
	transactions map[string]entity.InventoryTransaction
	orders       map[string]entity.Order
}

func newState() *state {
	return &state{
		products:     make(map[string]entity.Product),
		transactions: make(map[string]entity.InventoryTransaction),
		orders:       make(map[string]entity.Order),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.transactions {
		c.transactions[k] = v
	}
	for k, v := range s.orders {
		c.orders[k] = v
	}
	return c
}

// Store almacén en memoria compartido por los repositorios.
type Store struct {
	mu sync.RWMutex
	st *state
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// Products devuelve un repositorio de productos fuera de transacción.
func (s *Store) Products() repository.ProductRepository {
	return &productRepo{store: s}
}

// Transactions devuelve un repositorio del libro fuera de transacción.
func (s *Store) Transactions() repository.InventoryTransactionRepository {
	return &transactionRepo{store: s}
}

// Orders devuelve un repositorio de órdenes fuera de transacción.
func (s *Store) Orders() repository.OrderRepository {
	return &orderRepo{store: s}
}

var _ stock.TxRunner = (*TxRunner)(nil)

// TxRunner transaccional por copia y swap: clona el estado, ejecuta fn sobre
// el clon y, solo si fn no falla, publica el clon como estado nuevo. Un error
// descarta el clon entero, así que nunca se observa un efecto parcial. El lock
// exclusivo durante Run serializa las transacciones (equivalente grueso del
// bloqueo de fila del backend SQL).
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con repos atados a un clon del estado y publica el clon si
// fn termina sin error.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	trxRepo repository.InventoryTransactionRepository,
	orderRepo repository.OrderRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	st := r.store.st.clone()
	err := fn(
		&productRepo{st: st},
		&transactionRepo{st: st},
		&orderRepo{st: st},
	)
	if err != nil {
		return err
	}
	r.store.st = st
	return nil
}

// withRead ejecuta fn sobre el estado visible. Los repos atados a una tx
// operan sobre su clon sin tomar locks: el TxRunner ya tiene el exclusivo.
func withRead(store *Store, st *state, fn func(st *state) error) error {
	if st != nil {
		return fn(st)
	}
	store.mu.RLock()
	defer store.mu.RUnlock()
	return fn(store.st)
}

func withWrite(store *Store, st *state, fn func(st *state) error) error {
	if st != nil {
		return fn(st)
	}
	store.mu.Lock()
	defer store.mu.Unlock()
	return fn(store.st)
}
