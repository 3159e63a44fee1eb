package repository

import (
	"context"
	"time"

	"github.com/Nathan-Yinka/vendy-stores/internal/domain/order"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, product_id, quantity, buyer_id, status, code, message, remaining_stock, idempotency_key, created_at`

const (
	// Conflicts on the partial (buyer_id, idempotency_key) index are absorbed;
	// the caller re-reads the stored order.
	insertOrderSQL = `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (buyer_id, idempotency_key) WHERE idempotency_key IS NOT NULL DO NOTHING`

	selectOrderSQL = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	selectOrderByKeySQL = `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE buyer_id = $1 AND idempotency_key = $2`

	listConfirmedOrdersSQL = `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE buyer_id = $1 AND status = 'CONFIRMED'
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	countConfirmedOrdersSQL = `
		SELECT count(*) FROM orders
		WHERE buyer_id = $1 AND status = 'CONFIRMED'`
)

// OrderRepository is the append-only order ledger.
type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(conn db.DBTX) *OrderRepository {
	return &OrderRepository{db: conn}
}

// Create inserts o. It reports false when an order with the same buyer and
// idempotency key already exists.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (bool, error) {
	tag, err := r.db.Exec(ctx, insertOrderSQL,
		o.ID(),
		o.ProductID(),
		o.Quantity(),
		o.BuyerID(),
		string(o.Status()),
		o.Code(),
		o.Message(),
		o.RemainingStock(),
		o.IdempotencyKey(),
		o.CreatedAt(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to create order", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, selectOrderSQL, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order by id", err)
	}
	return o, nil
}

func (r *OrderRepository) FindByIdempotencyKey(ctx context.Context, buyerID uuid.UUID, key string) (*order.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, selectOrderByKeySQL, buyerID, key))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found for idempotency key", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order by idempotency key", err)
	}
	return o, nil
}

func (r *OrderRepository) ListConfirmedByBuyer(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]*order.Order, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, countConfirmedOrdersSQL, buyerID).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count orders", err)
	}

	rows, err := r.db.Query(ctx, listConfirmedOrdersSQL, buyerID, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	items := make([]*order.Order, 0, limit)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan order", err)
		}
		items = append(items, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate orders", err)
	}
	return items, total, nil
}

func scanOrder(row pgx.Row) (*order.Order, error) {
	var (
		id             uuid.UUID
		productID      string
		quantity       int
		buyerID        uuid.UUID
		status         string
		code, message  string
		remainingStock *int
		idempotencyKey *string
		createdAt      time.Time
	)
	if err := row.Scan(&id, &productID, &quantity, &buyerID, &status, &code, &message, &remainingStock, &idempotencyKey, &createdAt); err != nil {
		return nil, err
	}
	return order.Reconstruct(id, productID, quantity, buyerID, order.Status(status), code, message, remainingStock, idempotencyKey, createdAt)
}
