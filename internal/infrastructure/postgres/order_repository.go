package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ramdev/inventory-api/internal/domain/entity"
	"github.com/ramdev/inventory-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una orden nueva.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, product_id, quantity, price, created_at, modified_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.ProductID, order.Quantity, order.Price,
		order.CreatedAt, order.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID. Devuelve nil si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, product_id, quantity, price, created_at, modified_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.ProductID, &o.Quantity, &o.Price, &o.CreatedAt, &o.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// Save sobreescribe una orden existente (vía de corrección).
func (r *OrderRepo) Save(order *entity.Order) error {
	query := `
		UPDATE orders
		SET product_id = $2, quantity = $3, price = $4, modified_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.ProductID, order.Quantity, order.Price, order.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Page lista órdenes con su producto (JOIN) ordenadas ascendente por sortBy.
func (r *OrderRepo) Page(sortBy string, offset, limit int) ([]repository.OrderWithProduct, int64, error) {
	col, err := sortColumn(orderSortColumns, sortBy)
	if err != nil {
		return nil, 0, err
	}
	query := fmt.Sprintf(`
		SELECT o.id, o.product_id, o.quantity, o.price, o.created_at, o.modified_at,
		       p.id, p.name, p.description, p.price, p.current_quantity, p.created_at, p.modified_at,
		       count(*) OVER() AS total
		FROM orders o
		JOIN products p ON p.id = o.product_id
		ORDER BY o.%s ASC, o.id ASC
		LIMIT $1 OFFSET $2`, col)
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []repository.OrderWithProduct
	var total int64
	for rows.Next() {
		var rec repository.OrderWithProduct
		if err := rows.Scan(
			&rec.Order.ID, &rec.Order.ProductID, &rec.Order.Quantity, &rec.Order.Price,
			&rec.Order.CreatedAt, &rec.Order.ModifiedAt,
			&rec.Product.ID, &rec.Product.Name, &rec.Product.Description, &rec.Product.Price,
			&rec.Product.CurrentQuantity, &rec.Product.CreatedAt, &rec.Product.ModifiedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if total == 0 && len(list) == 0 {
		if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM orders`).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count orders: %w", err)
		}
	}
	return list, total, nil
}

// Delete borra la orden por ID. Idempotente.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
