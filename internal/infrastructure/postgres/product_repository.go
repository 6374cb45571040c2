package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ramdev/inventory-api/internal/domain/entity"
	"github.com/ramdev/inventory-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, description, price, current_quantity, created_at, modified_at`

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, current_quantity, created_at, modified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price,
		product.CurrentQuantity, product.CreatedAt, product.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE) hasta
// el fin de la transacción. Serializa los check-and-decrement concurrentes
// sobre el mismo producto.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product for update")
}

// Save actualiza todos los campos mutables del producto.
func (r *ProductRepo) Save(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, current_quantity = $5, modified_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price,
		product.CurrentQuantity, product.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Page lista productos ordenados ascendente por sortBy (lista blanca) con el
// total del conjunto completo. Desempate por id para un orden estable.
func (r *ProductRepo) Page(sortBy string, offset, limit int) ([]*entity.Product, int64, error) {
	col, err := sortColumn(productSortColumns, sortBy)
	if err != nil {
		return nil, 0, err
	}
	query := fmt.Sprintf(
		`SELECT %s, count(*) OVER() AS total FROM products ORDER BY %s ASC, id ASC LIMIT $1 OFFSET $2`,
		productColumns, col,
	)
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	var total int64
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price,
			&p.CurrentQuantity, &p.CreatedAt, &p.ModifiedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if total == 0 && len(list) == 0 {
		// Página fuera de rango: el total igual debe reflejar el conjunto completo.
		if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM products`).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count products: %w", err)
		}
	}
	return list, total, nil
}

// Delete elimina un producto por ID. Idempotente.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price,
		&p.CurrentQuantity, &p.CreatedAt, &p.ModifiedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
