package memory

import (
	"fmt"
	"sort"

	"github.com/ramdev/inventory-api/internal/domain/entity"
	"github.com/ramdev/inventory-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*orderRepo)(nil)

type orderRepo struct {
	store *Store
	st    *state
}

func (r *orderRepo) Create(order *entity.Order) error {
	return withWrite(r.store, r.st, func(st *state) error {
		st.orders[order.ID] = *order
		return nil
	})
}

func (r *orderRepo) GetByID(id string) (*entity.Order, error) {
	var out *entity.Order
	err := withRead(r.store, r.st, func(st *state) error {
		if o, ok := st.orders[id]; ok {
			out = &o
		}
		return nil
	})
	return out, err
}

func (r *orderRepo) Save(order *entity.Order) error {
	return withWrite(r.store, r.st, func(st *state) error {
		st.orders[order.ID] = *order
		return nil
	})
}

func (r *orderRepo) Page(sortBy string, offset, limit int) ([]repository.OrderWithProduct, int64, error) {
	var list []repository.OrderWithProduct
	var total int64
	err := withRead(r.store, r.st, func(st *state) error {
		all := make([]entity.Order, 0, len(st.orders))
		for _, o := range st.orders {
			all = append(all, o)
		}
		less, err := orderLess(sortBy)
		if err != nil {
			return err
		}
		sort.SliceStable(all, func(i, j int) bool { return less(all[i], all[j]) })
		total = int64(len(all))
		lo, hi := pageBounds(len(all), offset, limit)
		for i := lo; i < hi; i++ {
			list = append(list, repository.OrderWithProduct{
				Order:   all[i],
				Product: st.products[all[i].ProductID],
			})
		}
		return nil
	})
	return list, total, err
}

// Delete es idempotente: borrar un id inexistente no es error.
func (r *orderRepo) Delete(id string) error {
	return withWrite(r.store, r.st, func(st *state) error {
		delete(st.orders, id)
		return nil
	})
}

func orderLess(sortBy string) (func(a, b entity.Order) bool, error) {
	var key func(a, b entity.Order) (less, equal bool)
	switch sortBy {
	case "orderId":
		key = func(a, b entity.Order) (bool, bool) { return a.ID < b.ID, a.ID == b.ID }
	case "productId":
		key = func(a, b entity.Order) (bool, bool) { return a.ProductID < b.ProductID, a.ProductID == b.ProductID }
	case "quantity":
		key = func(a, b entity.Order) (bool, bool) { return a.Quantity < b.Quantity, a.Quantity == b.Quantity }
	case "price":
		key = func(a, b entity.Order) (bool, bool) { c := a.Price.Cmp(b.Price); return c < 0, c == 0 }
	case "createdAt":
		key = func(a, b entity.Order) (bool, bool) { return a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt) }
	case "modifiedAt":
		key = func(a, b entity.Order) (bool, bool) { return a.ModifiedAt.Before(b.ModifiedAt), a.ModifiedAt.Equal(b.ModifiedAt) }
	default:
		return nil, fmt.Errorf("unknown sort field %q", sortBy)
	}
	return func(a, b entity.Order) bool {
		if less, equal := key(a, b); !equal {
			return less
		}
		return a.ID < b.ID
	}, nil
}
