//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Nathan-Yinka/vendy-stores/internal/domain/product"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestProduct(t *testing.T, conn db.DBTX, id, name string, stock int) string {
	t.Helper()

	ctx := context.Background()
	_, err := conn.Exec(ctx, `
		INSERT INTO products (id, name, stock) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, stock = EXCLUDED.stock, updated_at = now()`,
		id, name, stock)
	require.NoError(t, err)
	return id
}

func ProductStock(t *testing.T, conn db.DBTX, id string) int {
	t.Helper()

	var stock int
	err := conn.QueryRow(context.Background(), "SELECT stock FROM products WHERE id = $1", id).Scan(&stock)
	require.NoError(t, err)
	return stock
}

// CountOrders counts rows for productID, optionally filtered by status.
func CountOrders(t *testing.T, conn db.DBTX, productID, status string) int {
	t.Helper()

	var n int
	var err error
	ctx := context.Background()
	if status == "" {
		err = conn.QueryRow(ctx, "SELECT count(*) FROM orders WHERE product_id = $1", productID).Scan(&n)
	} else {
		err = conn.QueryRow(ctx, "SELECT count(*) FROM orders WHERE product_id = $1 AND status = $2", productID, status).Scan(&n)
	}
	require.NoError(t, err)
	return n
}

// ConfirmedQuantity sums the quantity of CONFIRMED orders for productID.
func ConfirmedQuantity(t *testing.T, conn db.DBTX, productID string) int {
	t.Helper()

	var n int
	err := conn.QueryRow(context.Background(),
		"SELECT COALESCE(sum(quantity), 0) FROM orders WHERE product_id = $1 AND status = 'CONFIRMED'", productID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountOrdersByBuyer(t *testing.T, conn db.DBTX, buyerID uuid.UUID) int {
	t.Helper()

	var n int
	err := conn.QueryRow(context.Background(), "SELECT count(*) FROM orders WHERE buyer_id = $1", buyerID).Scan(&n)
	require.NoError(t, err)
	return n
}

// SeedReferenceData inserts the default catalog.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()
	for _, s := range product.DefaultCatalog() {
		if _, err := pool.Exec(ctx,
			"INSERT INTO products (id, name, stock) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING",
			s.ID, s.Name, s.Stock); err != nil {
			return err
		}
	}
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
