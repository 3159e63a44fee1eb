package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Nathan-Yinka/vendy-stores/cmd/bootstrap"

	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		bootstrap.InventoryModule,
		fx.Invoke(func(logger *slog.Logger) {
			logger.Info("🚀 在庫サービスを起動します")
		}),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("アプリケーションの起動に失敗しました", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("アプリケーションの停止に失敗しました", "error", err)
	}

	slog.Info("アプリケーションが正常に停止しました")
}
