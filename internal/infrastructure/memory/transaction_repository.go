package memory

import (
	"fmt"
	"sort"

	"github.com/ramdev/inventory-api/internal/domain/entity"
	"github.com/ramdev/inventory-api/internal/domain/repository"
)

var _ repository.InventoryTransactionRepository = (*transactionRepo)(nil)

type transactionRepo struct {
	store *Store
	st    *state
}

func (r *transactionRepo) Create(trx *entity.InventoryTransaction) error {
	return withWrite(r.store, r.st, func(st *state) error {
		st.transactions[trx.ID] = *trx
		return nil
	})
}

func (r *transactionRepo) GetByID(id string) (*entity.InventoryTransaction, error) {
	var out *entity.InventoryTransaction
	err := withRead(r.store, r.st, func(st *state) error {
		if t, ok := st.transactions[id]; ok {
			out = &t
		}
		return nil
	})
	return out, err
}

func (r *transactionRepo) Save(trx *entity.InventoryTransaction) error {
	return withWrite(r.store, r.st, func(st *state) error {
		st.transactions[trx.ID] = *trx
		return nil
	})
}

func (r *transactionRepo) Page(sortBy string, offset, limit int) ([]repository.TransactionWithProduct, int64, error) {
	var list []repository.TransactionWithProduct
	var total int64
	err := withRead(r.store, r.st, func(st *state) error {
		all := make([]entity.InventoryTransaction, 0, len(st.transactions))
		for _, t := range st.transactions {
			all = append(all, t)
		}
		less, err := transactionLess(sortBy)
		if err != nil {
			return err
		}
		sort.SliceStable(all, func(i, j int) bool { return less(all[i], all[j]) })
		total = int64(len(all))
		lo, hi := pageBounds(len(all), offset, limit)
		for i := lo; i < hi; i++ {
			list = append(list, repository.TransactionWithProduct{
				Transaction: all[i],
				Product:     st.products[all[i].ProductID],
			})
		}
		return nil
	})
	return list, total, err
}

func (r *transactionRepo) Delete(id string) error {
	return withWrite(r.store, r.st, func(st *state) error {
		if _, ok := st.transactions[id]; !ok {
			return fmt.Errorf("delete transaction %s: no rows affected", id)
		}
		delete(st.transactions, id)
		return nil
	})
}

func transactionLess(sortBy string) (func(a, b entity.InventoryTransaction) bool, error) {
	var key func(a, b entity.InventoryTransaction) (less, equal bool)
	switch sortBy {
	case "transactionId":
		key = func(a, b entity.InventoryTransaction) (bool, bool) { return a.ID < b.ID, a.ID == b.ID }
	case "productId":
		key = func(a, b entity.InventoryTransaction) (bool, bool) { return a.ProductID < b.ProductID, a.ProductID == b.ProductID }
	case "type":
		key = func(a, b entity.InventoryTransaction) (bool, bool) { return a.Type < b.Type, a.Type == b.Type }
	case "quantity":
		key = func(a, b entity.InventoryTransaction) (bool, bool) { return a.Quantity < b.Quantity, a.Quantity == b.Quantity }
	case "createdAt":
		key = func(a, b entity.InventoryTransaction) (bool, bool) {
			return a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
		}
	default:
		return nil, fmt.Errorf("unknown sort field %q", sortBy)
	}
	return func(a, b entity.InventoryTransaction) bool {
		if less, equal := key(a, b); !equal {
			return less
		}
		return a.ID < b.ID
	}, nil
}
