package repository

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/compustore/backend/internal/catalog"
)

const (
	listProductsSQL = `SELECT id, name, category, price, brand, description, image, specifications
		FROM products ORDER BY id`

	getProductByIDSQL = `SELECT id, name, category, price, brand, description, image, specifications
		FROM products WHERE id = $1`

	listCategoriesSQL = `SELECT DISTINCT category FROM products ORDER BY category`

	upsertProductSQL = `INSERT INTO products (id, name, category, price, brand, description, image, specifications)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, category = EXCLUDED.category, price = EXCLUDED.price,
			brand = EXCLUDED.brand, description = EXCLUDED.description,
			image = EXCLUDED.image, specifications = EXCLUDED.specifications`
)

var _ catalog.Repository = (*ProductRepository)(nil)

// ProductRepository implements catalog.Repository backed by PostgreSQL.
type ProductRepository struct {
	db DB
}

// NewProductRepository returns a ProductRepository that uses the given pool.
func NewProductRepository(db DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns all products from the catalog ordered by ID.
func (r *ProductRepository) List(ctx context.Context) ([]catalog.Product, error) {
	rows, err := r.db.Query(ctx, listProductsSQL)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return pgx.CollectRows(rows, scanProduct)
}

// GetByID returns a single product by its identifier.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*catalog.Product, error) {
	rows, err := r.db.Query(ctx, getProductByIDSQL, id)
	if err != nil {
		return nil, fmt.Errorf("getting product %q: %w", id, err)
	}

	p, err := pgx.CollectExactlyOneRow(rows, scanProduct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrNotFound
		}
		return nil, fmt.Errorf("getting product %q: %w", id, err)
	}
	return &p, nil
}

// Categories returns the distinct product categories in alphabetical order.
func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, listCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// Upsert inserts the product or replaces an existing row with the same ID.
// Used by the seeding tool.
func (r *ProductRepository) Upsert(ctx context.Context, p catalog.Product) error {
	_, err := r.db.Exec(ctx, upsertProductSQL,
		p.ID, p.Name, p.Category, p.Price, p.Brand, p.Description, p.Image, p.Specifications)
	if err != nil {
		return fmt.Errorf("upserting product %q: %w", p.ID, err)
	}
	return nil
}

func scanProduct(row pgx.CollectableRow) (catalog.Product, error) {
	var p catalog.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Category, &p.Price,
		&p.Brand, &p.Description, &p.Image, &p.Specifications,
	)
	return p, err
}
