package bootstrap

import (
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/config"

	"go.uber.org/fx"
)

// Each binary loads its own config and fans out the sections shared modules depend on.

var InventoryConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadInventoryConfig,
		func(cfg config.InventoryConfig) (config.DBConfig, config.LogConfig, config.KafkaConfig, config.TracingConfig, config.RPCServerConfig) {
			return cfg.DB, cfg.Log, cfg.Kafka, cfg.Tracing, cfg.RPC
		},
	),
)

var OrderConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadOrderConfig,
		func(cfg config.OrderConfig) (config.DBConfig, config.LogConfig, config.KafkaConfig, config.TracingConfig, config.RPCServerConfig) {
			return cfg.DB, cfg.Log, cfg.Kafka, cfg.Tracing, cfg.RPC
		},
		func(cfg config.OrderConfig) (config.RPCClientConfig, config.JournalConfig) {
			return cfg.Inventory, cfg.Journal
		},
	),
)

var GatewayConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadGatewayConfig,
		func(cfg config.GatewayConfig) (config.LogConfig, config.KafkaConfig, config.TracingConfig, config.JWTConfig, config.CacheConfig) {
			return cfg.Log, cfg.Kafka, cfg.Tracing, cfg.JWT, cfg.Cache
		},
		func(cfg config.GatewayConfig) (config.RPCClientConfig, config.OrderClientConfig) {
			return cfg.Inventory, cfg.Order
		},
	),
)
