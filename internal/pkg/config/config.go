package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

// InventoryConfig is the configuration of the inventory service binary.
type InventoryConfig struct {
	RPC     RPCServerConfig
	DB      DBConfig
	Log     LogConfig
	Kafka   KafkaConfig
	Tracing TracingConfig
	Seed    SeedConfig
}

// OrderConfig is the configuration of the order service binary.
type OrderConfig struct {
	RPC       RPCServerConfig
	DB        DBConfig
	Log       LogConfig
	Kafka     KafkaConfig
	Tracing   TracingConfig
	Inventory RPCClientConfig
	Journal   JournalConfig
}

// GatewayConfig is the configuration of the HTTP gateway binary.
type GatewayConfig struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Kafka     KafkaConfig
	Tracing   TracingConfig
	Cache     CacheConfig
	Inventory RPCClientConfig
	Order     OrderClientConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type RPCServerConfig struct {
	Port string `envconfig:"RPC_PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Idempotent-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	Format         string `envconfig:"LOG_FORMAT" default:""` // json or text; empty follows GIN_MODE
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// KafkaConfig configures the event bus. An empty broker list disables publishing.
type KafkaConfig struct {
	Brokers                  []string      `envconfig:"KAFKA_BROKERS" default:""`
	ClientID                 string        `envconfig:"KAFKA_CLIENT_ID" default:"vendy-stores"`
	WriteTimeout             time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"2s"`
	BatchTimeout             time.Duration `envconfig:"KAFKA_BATCH_TIMEOUT" default:"10ms"`
	QueueSize                int           `envconfig:"KAFKA_PUBLISH_QUEUE_SIZE" default:"1024"`
	ConsumerGroup            string        `envconfig:"KAFKA_CONSUMER_GROUP" default:"gateway-cache"`
	InventoryReservedSubject string        `envconfig:"INVENTORY_RESERVED_SUBJECT" default:"inventory.reserved"`
	InventoryCreatedSubject  string        `envconfig:"INVENTORY_CREATED_SUBJECT" default:"inventory.created"`
	OrderCreatedSubject      string        `envconfig:"ORDER_CREATED_SUBJECT" default:"order.created"`
}

// Enabled reports whether any broker is configured.
func (c KafkaConfig) Enabled() bool {
	for _, b := range c.Brokers {
		if b != "" {
			return true
		}
	}
	return false
}

type TracingConfig struct {
	ServiceName   string        `envconfig:"OTEL_SERVICE_NAME" default:""`
	Endpoint      string        `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:""`
	URLPath       string        `envconfig:"OTEL_EXPORTER_OTLP_TRACES_PATH" default:"/v1/traces"`
	Insecure      bool          `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
	SampleRatio   float64       `envconfig:"OTEL_SAMPLE_RATIO" default:"1"`
	ExportTimeout time.Duration `envconfig:"OTEL_EXPORT_TIMEOUT" default:"5s"`
}

// RPCClientConfig configures the gRPC connection to the inventory service.
type RPCClientConfig struct {
	Addr    string        `envconfig:"INVENTORY_RPC_ADDR" default:"localhost:50051"`
	Timeout time.Duration `envconfig:"INVENTORY_RPC_TIMEOUT" default:"3s"`
}

// OrderClientConfig configures the gateway's gRPC connection to the order service.
type OrderClientConfig struct {
	Addr    string        `envconfig:"ORDER_RPC_ADDR" default:"localhost:50052"`
	Timeout time.Duration `envconfig:"ORDER_RPC_TIMEOUT" default:"5s"`
}

type CacheConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:""`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	TTL      time.Duration `envconfig:"CACHE_TTL" default:"10s"`
}

// JournalConfig locates the pebble directory holding orphaned reservations.
type JournalConfig struct {
	Dir string `envconfig:"RECONCILIATION_JOURNAL_DIR" default:"./data/reconciliation"`
}

type SeedConfig struct {
	Enabled bool `envconfig:"SEED_PRODUCTS" default:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadInventoryConfig() (InventoryConfig, error) {
	var cfg InventoryConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return InventoryConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Tracing.ServiceName == "" {
		cfg.Tracing.ServiceName = "inventory-service"
	}
	return cfg, nil
}

func LoadOrderConfig() (OrderConfig, error) {
	var cfg OrderConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return OrderConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Tracing.ServiceName == "" {
		cfg.Tracing.ServiceName = "order-service"
	}
	return cfg, nil
}

func LoadGatewayConfig() (GatewayConfig, error) {
	var cfg GatewayConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return GatewayConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Tracing.ServiceName == "" {
		cfg.Tracing.ServiceName = "gateway"
	}
	return cfg, nil
}

func newTestLogConfig() LogConfig {
	return LogConfig{
		Level:      "error", // Error level only for tests
		Format:     "text",
		TimeZone:   "UTC",
		TimeFormat: "2006-01-02 15:04:05.000",
	}
}

func newTestDBConfig() DBConfig {
	return DBConfig{
		Host:     "localhost",
		Port:     "15433", // Test DB port
		User:     "test",
		Password: "test",
		DBName:   "test_db",
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}
}

func newTestKafkaConfig() KafkaConfig {
	return KafkaConfig{
		ClientID:                 "vendy-stores-test",
		WriteTimeout:             time.Second,
		BatchTimeout:             10 * time.Millisecond,
		QueueSize:                64,
		ConsumerGroup:            "gateway-cache-test",
		InventoryReservedSubject: "inventory.reserved",
		InventoryCreatedSubject:  "inventory.created",
		OrderCreatedSubject:      "order.created",
	}
}

func NewTestInventoryConfig() InventoryConfig {
	return InventoryConfig{
		RPC:   RPCServerConfig{Port: "0"},
		DB:    newTestDBConfig(),
		Log:   newTestLogConfig(),
		Kafka: newTestKafkaConfig(),
		Seed:  SeedConfig{Enabled: true},
	}
}

func NewTestOrderConfig() OrderConfig {
	return OrderConfig{
		RPC:       RPCServerConfig{Port: "0"},
		DB:        newTestDBConfig(),
		Log:       newTestLogConfig(),
		Kafka:     newTestKafkaConfig(),
		Inventory: RPCClientConfig{Addr: "localhost:50051", Timeout: 3 * time.Second},
		Journal:   JournalConfig{Dir: ""},
	}
}

func NewTestGatewayConfig() GatewayConfig {
	return GatewayConfig{
		Server:    ServerConfig{Port: "8889"},
		Log:       newTestLogConfig(),
		JWT:       JWTConfig{Secret: "test-secret-key-for-gateway", Duration: "1h"},
		Kafka:     newTestKafkaConfig(),
		Cache:     CacheConfig{TTL: 10 * time.Second},
		Inventory: RPCClientConfig{Addr: "localhost:50051", Timeout: 3 * time.Second},
		Order:     OrderClientConfig{Addr: "localhost:50052", Timeout: 5 * time.Second},
	}
}
