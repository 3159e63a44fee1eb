package repository

import (
	"context"
	"time"

	"github.com/Nathan-Yinka/vendy-stores/internal/domain/product"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

const (
	// Predicate and decrement in one statement; the row lock serializes
	// concurrent reservations on the same product.
	reserveStockSQL = `
		UPDATE products
		SET stock = stock - $2, updated_at = now()
		WHERE id = $1 AND stock >= $2
		RETURNING stock, name`

	stockSnapshotSQL = `SELECT stock, name FROM products WHERE id = $1`

	selectProductSQL = `
		SELECT id, name, stock, created_at, updated_at
		FROM products
		WHERE id = $1`

	listProductsSQL = `
		SELECT id, name, stock, created_at, updated_at
		FROM products
		ORDER BY name ASC, id ASC
		LIMIT $1 OFFSET $2`

	countProductsSQL = `SELECT count(*) FROM products`

	insertProductSQL = `
		INSERT INTO products (id, name, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	seedProductSQL = `
		INSERT INTO products (id, name, stock)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING`

	setStockSQL = `
		UPDATE products
		SET stock = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, name, stock, created_at, updated_at`
)

// ProductRepository is the stock ledger. Reserve is the only path that
// decrements stock.
type ProductRepository struct {
	db db.DBTX
}

func NewProductRepository(conn db.DBTX) *ProductRepository {
	return &ProductRepository{db: conn}
}

func (r *ProductRepository) Reserve(ctx context.Context, productID string, quantity int) (product.ReservationOutcome, error) {
	var (
		remaining int
		name      string
	)
	err := r.db.QueryRow(ctx, reserveStockSQL, productID, quantity).Scan(&remaining, &name)
	if err == nil {
		return product.Accepted(remaining, name), nil
	}
	if !infra.IsNoRows(err) {
		return product.ReservationOutcome{}, infra.WrapRepoErr("failed to reserve stock", err, infra.KindDBFailure)
	}

	// Zero rows: either the product is missing or stock is short.
	err = r.db.QueryRow(ctx, stockSnapshotSQL, productID).Scan(&remaining, &name)
	if err != nil {
		if infra.IsNoRows(err) {
			return product.NotFound(), nil
		}
		return product.ReservationOutcome{}, infra.WrapRepoErr("failed to read stock snapshot", err, infra.KindDBFailure)
	}
	return product.Rejected(remaining, name), nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, selectProductSQL, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product by id", err)
	}
	return p, nil
}

// List returns one page ordered by name together with the total row count.
func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]*product.Product, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, countProductsSQL).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count products", err)
	}

	rows, err := r.db.Query(ctx, listProductsSQL, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	items := make([]*product.Product, 0, limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan product", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate products", err)
	}
	return items, total, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx, insertProductSQL, p.ID(), p.Name(), p.Stock(), p.CreatedAt(), p.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create product", err)
	}
	return nil
}

// SetStock overwrites stock. Not a reservation.
func (r *ProductRepository) SetStock(ctx context.Context, id string, stock int) (*product.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, setStockSQL, id, stock))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to set stock", err)
	}
	return p, nil
}

// SeedIfAbsent inserts catalogue entries that do not exist yet and reports
// how many rows were added. Existing rows are never overwritten.
func (r *ProductRepository) SeedIfAbsent(ctx context.Context, tx db.DBTX, seeds []product.Seed) (int, error) {
	inserted := 0
	for _, s := range seeds {
		tag, err := tx.Exec(ctx, seedProductSQL, s.ID, s.Name, s.Stock)
		if err != nil {
			return inserted, infra.WrapRepoErr("failed to seed product "+s.ID, err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var (
		id, name             string
		stock                int
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &name, &stock, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return product.Reconstruct(id, name, stock, createdAt, updatedAt), nil
}
