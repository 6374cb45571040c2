package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ramdev/inventory-api/internal/domain/entity"
	"github.com/ramdev/inventory-api/internal/domain/repository"
)

var _ repository.InventoryTransactionRepository = (*InventoryTransactionRepo)(nil)

// InventoryTransactionRepo implementación sobre PostgreSQL (usable con pool o tx).
type InventoryTransactionRepo struct {
	q Querier
}

// NewInventoryTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryTransactionRepository(q Querier) *InventoryTransactionRepo {
	return &InventoryTransactionRepo{q: q}
}

// Create anexa una transacción al libro.
func (r *InventoryTransactionRepo) Create(trx *entity.InventoryTransaction) error {
	query := `
		INSERT INTO inventory_transactions (id, product_id, type, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		trx.ID, trx.ProductID, trx.Type, trx.Quantity, trx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID. Devuelve nil si no existe.
func (r *InventoryTransactionRepo) GetByID(id string) (*entity.InventoryTransaction, error) {
	query := `
		SELECT id, product_id, type, quantity, created_at
		FROM inventory_transactions WHERE id = $1`
	var t entity.InventoryTransaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.ProductID, &t.Type, &t.Quantity, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// Save sobreescribe una transacción existente (vía de corrección).
func (r *InventoryTransactionRepo) Save(trx *entity.InventoryTransaction) error {
	query := `
		UPDATE inventory_transactions
		SET product_id = $2, type = $3, quantity = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		trx.ID, trx.ProductID, trx.Type, trx.Quantity,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// Page lista transacciones con su producto (JOIN) ordenadas ascendente por
// sortBy, con el total del conjunto completo.
func (r *InventoryTransactionRepo) Page(sortBy string, offset, limit int) ([]repository.TransactionWithProduct, int64, error) {
	col, err := sortColumn(transactionSortColumns, sortBy)
	if err != nil {
		return nil, 0, err
	}
	query := fmt.Sprintf(`
		SELECT t.id, t.product_id, t.type, t.quantity, t.created_at,
		       p.id, p.name, p.description, p.price, p.current_quantity, p.created_at, p.modified_at,
		       count(*) OVER() AS total
		FROM inventory_transactions t
		JOIN products p ON p.id = t.product_id
		ORDER BY t.%s ASC, t.id ASC
		LIMIT $1 OFFSET $2`, col)
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []repository.TransactionWithProduct
	var total int64
	for rows.Next() {
		var rec repository.TransactionWithProduct
		if err := rows.Scan(
			&rec.Transaction.ID, &rec.Transaction.ProductID, &rec.Transaction.Type,
			&rec.Transaction.Quantity, &rec.Transaction.CreatedAt,
			&rec.Product.ID, &rec.Product.Name, &rec.Product.Description, &rec.Product.Price,
			&rec.Product.CurrentQuantity, &rec.Product.CreatedAt, &rec.Product.ModifiedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if total == 0 && len(list) == 0 {
		if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM inventory_transactions`).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count transactions: %w", err)
		}
	}
	return list, total, nil
}

// Delete borra el registro. A diferencia de órdenes, un id inexistente es un
// error (comportamiento heredado).
func (r *InventoryTransactionRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM inventory_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("delete transaction %s: no rows affected", id)
	}
	return nil
}
