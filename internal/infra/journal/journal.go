package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/errs"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/google/uuid"
)

const keyPrefix = "orphan/"

// Reasons an accepted reservation has no matching order row.
const (
	ReasonOrderWriteFailed    = "ORDER_WRITE_FAILED"
	ReasonIdempotencyRaceLost = "IDEMPOTENCY_RACE_LOST"
)

// OrphanedReservation records stock that was decremented without a
// corresponding order. Operators reconcile these by hand.
type OrphanedReservation struct {
	OrderID    uuid.UUID `json:"orderId"`
	ProductID  string    `json:"productId"`
	Quantity   int       `json:"quantity"`
	BuyerID    uuid.UUID `json:"buyerId"`
	Remaining  int       `json:"remaining"`
	Reason     string    `json:"reason"`
	Detail     string    `json:"detail,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}

// PebbleJournal is a local, synced append log keyed by record time.
type PebbleJournal struct {
	db  *pebble.DB
	now func() time.Time
}

func Open(dir string) (*PebbleJournal, error) {
	return open(dir, &pebble.Options{})
}

// OpenInMemory backs the journal with an in-memory filesystem.
func OpenInMemory() (*PebbleJournal, error) {
	return open("journal", &pebble.Options{FS: vfs.NewMem()})
}

func open(dir string, opts *pebble.Options) (*PebbleJournal, error) {
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to open reconciliation journal at %q", dir)
	}
	return &PebbleJournal{db: db, now: time.Now}, nil
}

func (j *PebbleJournal) Close() error {
	return j.db.Close()
}

func (j *PebbleJournal) Append(_ context.Context, rec OrphanedReservation) error {
	if rec.RecordedAt.IsZero() {
		rec.RecordedAt = j.now().UTC()
	}
	value, err := json.Marshal(rec)
	if err != nil {
		return errs.Wrap(err, "failed to encode orphaned reservation")
	}
	if err := j.db.Set(keyFor(rec), value, pebble.Sync); err != nil {
		return errs.Wrap(err, "failed to write orphaned reservation")
	}
	return nil
}

// List returns every record in recording order.
func (j *PebbleJournal) List(_ context.Context) ([]OrphanedReservation, error) {
	iter, err := j.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(keyPrefix),
		UpperBound: []byte("orphan0"), // '0' sorts right after '/'
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to open journal iterator")
	}
	defer iter.Close()

	var out []OrphanedReservation
	for iter.First(); iter.Valid(); iter.Next() {
		var rec OrphanedReservation
		if err := json.Unmarshal(iter.Value(), &rec); err != nil {
			return nil, errs.Wrapf(err, "corrupt journal entry %q", iter.Key())
		}
		out = append(out, rec)
	}
	if err := iter.Error(); err != nil {
		return nil, errs.Wrap(err, "failed to scan journal")
	}
	return out, nil
}

// Resolve removes a reconciled record.
func (j *PebbleJournal) Resolve(_ context.Context, rec OrphanedReservation) error {
	if err := j.db.Delete(keyFor(rec), pebble.Sync); err != nil {
		return errs.Wrap(err, "failed to delete orphaned reservation")
	}
	return nil
}

func keyFor(rec OrphanedReservation) []byte {
	return []byte(fmt.Sprintf("%s%020d/%s", keyPrefix, rec.RecordedAt.UnixNano(), rec.OrderID))
}
