package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/adjustment-ledger-api/internal/domain"
	"github.com/jhoicas/adjustment-ledger-api/internal/domain/entity"
	"github.com/jhoicas/adjustment-ledger-api/internal/domain/repository"
)

var _ repository.AdjustmentTransactionRepository = (*AdjustmentTransactionRepo)(nil)

// transactionSelect calcula amount = qty * price con el precio vigente del producto.
const transactionSelect = `
	SELECT t.id, t.sku, t.qty, COALESCE(t.qty * p.price, 0) AS amount, t.created_at, t.updated_at
	FROM adjustment_transactions t
	LEFT JOIN products p ON p.sku = t.sku`

// AdjustmentTransactionRepo implementación del ledger de ajustes sobre PostgreSQL.
type AdjustmentTransactionRepo struct {
	q Querier
}

// NewAdjustmentTransactionRepository construye el repositorio. Pasar pool o tx (Querier).
func NewAdjustmentTransactionRepository(q Querier) *AdjustmentTransactionRepo {
	return &AdjustmentTransactionRepo{q: q}
}

// List lista transacciones por id ascendente.
func (r *AdjustmentTransactionRepo) List(ctx context.Context, limit, offset int) ([]*entity.AdjustmentTransaction, error) {
	rows, err := r.q.Query(ctx, transactionSelect+`
	ORDER BY t.id
	LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list adjustment transactions: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.AdjustmentTransaction, 0, limit)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan adjustment transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Count total de transacciones.
func (r *AdjustmentTransactionRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM adjustment_transactions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count adjustment transactions: %w", err)
	}
	return n, nil
}

// GetByID obtiene una transacción por id.
func (r *AdjustmentTransactionRepo) GetByID(ctx context.Context, id int64) (*entity.AdjustmentTransaction, error) {
	return r.get(ctx, transactionSelect+` WHERE t.id = $1`, id)
}

// GetForUpdate obtiene la transacción bloqueando su fila.
func (r *AdjustmentTransactionRepo) GetForUpdate(ctx context.Context, id int64) (*entity.AdjustmentTransaction, error) {
	return r.get(ctx, transactionSelect+` WHERE t.id = $1 FOR UPDATE OF t`, id)
}

func (r *AdjustmentTransactionRepo) get(ctx context.Context, query string, id int64) (*entity.AdjustmentTransaction, error) {
	t, err := scanTransaction(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get adjustment transaction: %w", err)
	}
	return t, nil
}

// Create inserta la transacción y completa ID y Amount.
func (r *AdjustmentTransactionRepo) Create(ctx context.Context, t *entity.AdjustmentTransaction) error {
	query := `
		WITH inserted AS (
			INSERT INTO adjustment_transactions (sku, qty, created_at, updated_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id, sku, qty
		)
		SELECT i.id, COALESCE(i.qty * p.price, 0)
		FROM inserted i
		LEFT JOIN products p ON p.sku = i.sku`
	err := r.q.QueryRow(ctx, query, t.SKU, t.Qty, t.CreatedAt, t.UpdatedAt).Scan(&t.ID, &t.Amount)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("insert adjustment transaction: %w", err)
	}
	return nil
}

// Update reescribe sku y qty, y recalcula Amount.
func (r *AdjustmentTransactionRepo) Update(ctx context.Context, t *entity.AdjustmentTransaction) error {
	query := `
		WITH updated AS (
			UPDATE adjustment_transactions SET sku = $2, qty = $3, updated_at = $4
			WHERE id = $1
			RETURNING sku, qty
		)
		SELECT COALESCE(u.qty * p.price, 0)
		FROM updated u
		LEFT JOIN products p ON p.sku = u.sku`
	err := r.q.QueryRow(ctx, query, t.ID, t.SKU, t.Qty, t.UpdatedAt).Scan(&t.Amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTransactionNotFound
		}
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("update adjustment transaction: %w", err)
	}
	return nil
}

// Delete elimina una transacción por id.
func (r *AdjustmentTransactionRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM adjustment_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete adjustment transaction: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func scanTransaction(row pgx.Row) (*entity.AdjustmentTransaction, error) {
	var t entity.AdjustmentTransaction
	if err := row.Scan(&t.ID, &t.SKU, &t.Qty, &t.Amount, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
