package bootstrap

import (
	"github.com/Nathan-Yinka/vendy-stores/cmd/bootstrap/components"
	"github.com/Nathan-Yinka/vendy-stores/migrations"

	"go.uber.org/fx"
)

// Schema and seeding hooks run in declaration order, so DB modules come first.

var InventoryModule = fx.Options(
	InventoryConfigModule,
	LoggerModule,
	TracingModule,
	DBModule,
	SchemaModule(migrations.Inventory),
	EventsModule,
	components.InventoryPersistenceModule,
	components.InventoryUseCaseModule,
	RPCServerModule,
	components.InventoryServiceModule,
)

var OrderModule = fx.Options(
	OrderConfigModule,
	LoggerModule,
	TracingModule,
	DBModule,
	SchemaModule(migrations.Order),
	EventsModule,
	JournalModule,
	InventoryGatewayModule,
	components.OrderPersistenceModule,
	components.OrderUseCaseModule,
	RPCServerModule,
	components.OrderServiceModule,
)

var GatewayModule = fx.Options(
	GatewayConfigModule,
	LoggerModule,
	TracingModule,
	EventsModule,
	CacheModule,
	JWTModule,
	GatewayClientsModule,
	components.GatewayUseCaseModule,
	components.HandlerModule,
)
