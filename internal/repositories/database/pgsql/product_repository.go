package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/subtrack/subtrack_backend/internal/apperrors"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
	portsrepo "github.com/subtrack/subtrack_backend/internal/core/ports/repositories"
	"github.com/subtrack/subtrack_backend/internal/models"
)

type PgxProductRepository struct {
	pool *pgxpool.Pool
}

// newPgxProductRepository creates a new repository for product data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{pool: pool}
}

// Ensure PgxProductRepository implements portsrepo.ProductRepositoryFacade
var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

func toModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:     d.ProductID,
		Name:          d.Name,
		Description:   d.Description,
		StandardPrice: d.StandardPrice,
		PlanType:      string(d.PlanType),
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
	}
}

func toDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:     m.ProductID,
		Name:          m.Name,
		Description:   m.Description,
		StandardPrice: m.StandardPrice,
		PlanType:      domain.PlanType(m.PlanType),
		Status:        domain.ProductStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}

const productColumns = `product_id, name, description, standard_price, plan_type, status, created_at`

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.Name,
		&m.Description,
		&m.StandardPrice,
		&m.PlanType,
		&m.Status,
		&m.CreatedAt,
	)
	return m, err
}

// SaveProduct inserts a new product.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := toModelProduct(product)

	query := `
		INSERT INTO products (product_id, name, description, standard_price, plan_type, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ProductID,
		m.Name,
		m.Description,
		m.StandardPrice,
		m.PlanType,
		m.Status,
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: product with ID %s already exists", apperrors.ErrDuplicate, m.ProductID)
		}
		return fmt.Errorf("failed to save product %s: %w", m.ProductID, err)
	}
	return nil
}

// FindProductByID retrieves a product by its ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`

	m, err := scanProduct(r.pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}

	product := toDomainProduct(m)
	return &product, nil
}

// ListProducts retrieves all products, newest first.
func (r *PgxProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// SearchProducts matches name or description case-insensitively.
func (r *PgxProductRepository) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	sqlQuery := `
		SELECT ` + productColumns + `
		FROM products
		WHERE name ILIKE $1 OR description ILIKE $1
		ORDER BY created_at DESC;
	`
	rows, err := r.pool.Query(ctx, sqlQuery, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	products := make([]domain.Product, 0)
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, toDomainProduct(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// UpdateProduct updates an existing product row in full.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := toModelProduct(product)

	query := `
		UPDATE products
		SET name = $2, description = $3, standard_price = $4, plan_type = $5, status = $6
		WHERE product_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.ProductID,
		m.Name,
		m.Description,
		m.StandardPrice,
		m.PlanType,
		m.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", m.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProduct removes a product. Master accounts referencing the product
// cascade at the database level.
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
