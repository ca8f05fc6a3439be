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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productSelect devuelve el producto con el stock agregado desde el ledger.
const productSelect = `
	SELECT p.sku, p.title, p.image, p.price, p.description,
	       COALESCE(SUM(t.qty), 0)::BIGINT AS stock, p.created_at, p.updated_at
	FROM products p
	LEFT JOIN adjustment_transactions t ON t.sku = p.sku`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// List lista productos ordenados por SKU con paginación.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := productSelect + `
	GROUP BY p.sku
	ORDER BY p.sku
	LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0, limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Count total de productos.
func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// GetBySKU obtiene un producto por SKU con su stock actual.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := productSelect + `
	WHERE p.sku = $1
	GROUP BY p.sku`
	p, err := scanProduct(r.q.QueryRow(ctx, query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return p, nil
}

// LockBySKU toma FOR UPDATE sobre las filas de producto en orden de SKU.
// Los SKU que no existen se ignoran; el llamador los detecta con GetBySKU.
func (r *ProductRepo) LockBySKU(ctx context.Context, skus ...string) error {
	ordered := lockOrder(skus)
	if len(ordered) == 0 {
		return nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT sku FROM products WHERE sku = ANY($1) ORDER BY sku FOR UPDATE`, ordered)
	if err != nil {
		return fmt.Errorf("lock products: %w", err)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("lock products: %w", err)
	}
	return nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (sku, title, image, price, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		product.SKU, product.Title, product.Image, product.Price, product.Description,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSKUAlreadyExists
		}
		if isInvalidValue(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update reescribe el producto currentSKU. Si cambia el SKU, el ledger lo sigue por ON UPDATE CASCADE.
func (r *ProductRepo) Update(ctx context.Context, currentSKU string, product *entity.Product) error {
	query := `
		UPDATE products SET sku = $2, title = $3, image = $4, price = $5, description = $6, updated_at = $7
		WHERE sku = $1`
	cmd, err := r.q.Exec(ctx, query,
		currentSKU, product.SKU, product.Title, product.Image, product.Price, product.Description,
		product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSKUAlreadyExists
		}
		if isInvalidValue(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Delete elimina un producto por SKU junto con sus transacciones (ON DELETE CASCADE).
func (r *ProductRepo) Delete(ctx context.Context, sku string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE sku = $1`, sku)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.SKU, &p.Title, &p.Image, &p.Price, &p.Description,
		&p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
