package components

import (
	"github.com/Nathan-Yinka/vendy-stores/internal/handler"
	"github.com/Nathan-Yinka/vendy-stores/internal/handler/api"
	"github.com/Nathan-Yinka/vendy-stores/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewProductHandler,
		api.NewOrderHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
