//go:build unit

package journal_test

import (
	"context"
	"testing"
	"time"

	"github.com/Nathan-Yinka/vendy-stores/internal/infra/journal"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openJournal(t *testing.T) *journal.PebbleJournal {
	t.Helper()
	j, err := journal.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func record(productID string, at time.Time) journal.OrphanedReservation {
	return journal.OrphanedReservation{
		OrderID:    uuid.New(),
		ProductID:  productID,
		Quantity:   1,
		BuyerID:    uuid.New(),
		Remaining:  3,
		Reason:     journal.ReasonIdempotencyRaceLost,
		RecordedAt: at,
	}
}

func TestJournal(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("空のジャーナルは空を返す", func(t *testing.T) {
		j := openJournal(t)

		recs, err := j.List(ctx)

		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("記録順に返す", func(t *testing.T) {
		j := openJournal(t)
		second := record("product-2", base.Add(time.Second))
		first := record("product-1", base)
		require.NoError(t, j.Append(ctx, second))
		require.NoError(t, j.Append(ctx, first))

		recs, err := j.List(ctx)

		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, first.OrderID, recs[0].OrderID)
		assert.Equal(t, second.OrderID, recs[1].OrderID)
		assert.Equal(t, journal.ReasonIdempotencyRaceLost, recs[0].Reason)
	})

	t.Run("記録時刻がなければ補完する", func(t *testing.T) {
		j := openJournal(t)
		rec := record("product-1", time.Time{})

		require.NoError(t, j.Append(ctx, rec))

		recs, err := j.List(ctx)
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.False(t, recs[0].RecordedAt.IsZero())
	})

	t.Run("解決済みは削除される", func(t *testing.T) {
		j := openJournal(t)
		keep := record("product-1", base)
		done := record("product-1", base.Add(time.Minute))
		require.NoError(t, j.Append(ctx, keep))
		require.NoError(t, j.Append(ctx, done))

		require.NoError(t, j.Resolve(ctx, done))

		recs, err := j.List(ctx)
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, keep.OrderID, recs[0].OrderID)
	})
}
