package bootstrap

import (
	"context"

	"github.com/Nathan-Yinka/vendy-stores/internal/infra/journal"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/config"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase/commands"

	"go.uber.org/fx"
)

var JournalModule = fx.Module("journal",
	fx.Provide(
		fx.Annotate(
			NewJournal,
			fx.As(new(commands.ReconciliationJournal)),
		),
	),
)

// NewJournal opens the on-disk journal, or an in-memory one when no directory is set.
func NewJournal(lc fx.Lifecycle, cfg config.JournalConfig) (*journal.PebbleJournal, error) {
	var (
		j   *journal.PebbleJournal
		err error
	)
	if cfg.Dir == "" {
		j, err = journal.OpenInMemory()
	} else {
		j, err = journal.Open(cfg.Dir)
	}
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return j.Close()
		},
	})
	return j, nil
}
