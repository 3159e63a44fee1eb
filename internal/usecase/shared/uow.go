package shared

import (
	"context"

	"github.com/Nathan-Yinka/vendy-stores/internal/infra/db"
)

type UnitOfWork interface {
	// Within runs fn in a read-committed transaction, retrying on
	// serialization failures and deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}
