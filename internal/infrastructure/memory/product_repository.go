package memory

import (
	"fmt"
	"sort"

	"github.com/ramdev/inventory-api/internal/domain/entity"
	"github.com/ramdev/inventory-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*productRepo)(nil)

type productRepo struct {
	store *Store
	st    *state // no nil = atado a una transacción
}

func (r *productRepo) Create(product *entity.Product) error {
	return withWrite(r.store, r.st, func(st *state) error {
		st.products[product.ID] = *product
		return nil
	})
}

func (r *productRepo) GetByID(id string) (*entity.Product, error) {
	var out *entity.Product
	err := withRead(r.store, r.st, func(st *state) error {
		if p, ok := st.products[id]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

// GetForUpdate equivale a GetByID: la exclusividad la da el lock del TxRunner.
func (r *productRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *productRepo) Save(product *entity.Product) error {
	return withWrite(r.store, r.st, func(st *state) error {
		st.products[product.ID] = *product
		return nil
	})
}

func (r *productRepo) Page(sortBy string, offset, limit int) ([]*entity.Product, int64, error) {
	var list []*entity.Product
	var total int64
	err := withRead(r.store, r.st, func(st *state) error {
		all := make([]entity.Product, 0, len(st.products))
		for _, p := range st.products {
			all = append(all, p)
		}
		less, err := productLess(sortBy)
		if err != nil {
			return err
		}
		sort.SliceStable(all, func(i, j int) bool { return less(all[i], all[j]) })
		total = int64(len(all))
		lo, hi := pageBounds(len(all), offset, limit)
		for i := lo; i < hi; i++ {
			p := all[i]
			list = append(list, &p)
		}
		return nil
	})
	return list, total, err
}

func (r *productRepo) Delete(id string) error {
	return withWrite(r.store, r.st, func(st *state) error {
		delete(st.products, id)
		return nil
	})
}

// productLess compara por el campo pedido, con desempate por id (mismo orden
// estable que el backend SQL).
func productLess(sortBy string) (func(a, b entity.Product) bool, error) {
	var key func(a, b entity.Product) (less, equal bool)
	switch sortBy {
	case "productId":
		key = func(a, b entity.Product) (bool, bool) { return a.ID < b.ID, a.ID == b.ID }
	case "name":
		key = func(a, b entity.Product) (bool, bool) { return a.Name < b.Name, a.Name == b.Name }
	case "description":
		key = func(a, b entity.Product) (bool, bool) { return a.Description < b.Description, a.Description == b.Description }
	case "price":
		key = func(a, b entity.Product) (bool, bool) { c := a.Price.Cmp(b.Price); return c < 0, c == 0 }
	case "currentQuantity":
		key = func(a, b entity.Product) (bool, bool) {
			return a.CurrentQuantity < b.CurrentQuantity, a.CurrentQuantity == b.CurrentQuantity
		}
	case "createdAt":
		key = func(a, b entity.Product) (bool, bool) { return a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt) }
	case "modifiedAt":
		key = func(a, b entity.Product) (bool, bool) { return a.ModifiedAt.Before(b.ModifiedAt), a.ModifiedAt.Equal(b.ModifiedAt) }
	default:
		return nil, fmt.Errorf("unknown sort field %q", sortBy)
	}
	return func(a, b entity.Product) bool {
		if less, equal := key(a, b); !equal {
			return less
		}
		return a.ID < b.ID
	}, nil
}

// pageBounds recorta [offset, offset+limit) al tamaño del conjunto.
func pageBounds(n, offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > n {
		offset = n
	}
	hi := offset + limit
	if limit <= 0 || hi > n {
		hi = n
	}
	return offset, hi
}
