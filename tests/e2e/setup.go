//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Nathan-Yinka/vendy-stores/cmd/bootstrap"
	"github.com/Nathan-Yinka/vendy-stores/cmd/bootstrap/components"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra/cache"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra/db"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra/events"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra/journal"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra/repository"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra/uow"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/clock"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/config"
	"github.com/Nathan-Yinka/vendy-stores/internal/rpc"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase/commands"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase/queries"
	"github.com/Nathan-Yinka/vendy-stores/migrations"
	"github.com/Nathan-Yinka/vendy-stores/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

const bufSize = 1 << 20

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// Services is the in-process deployment: inventory and order gRPC servers on
// bufconn listeners behind the gateway router.
type Services struct {
	Router          *gin.Engine
	Config          config.GatewayConfig
	Journal         *journal.PebbleJournal
	InventoryServer *grpc.Server
}

// ------------------------------------------------------------
// 各テストプロセス用にセットアップ
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*pgxpool.Pool, *Services) {
	postgresInfo := startContainers(t)

	pool := prepareDatabase(t, postgresInfo)

	svcs := buildE2EServices(t, pool)
	require.NotNil(t, svcs.Router, "Routerのセットアップに失敗")

	slog.Info("E2E環境の準備が完了しました",
		"postgres_host", postgresInfo.Host,
		"postgres_port", postgresInfo.Port.Port())

	return pool, svcs
}

// ------------------------------------------------------------
// コンテナ起動関数
// ------------------------------------------------------------
func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startPostgreSQLContainerOnce(t)

	postgresInfo, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "PostgreSQLコンテナ情報の取得に失敗")

	return postgresInfo
}

// ------------------------------------------------------------
// データベース準備関数
// ------------------------------------------------------------
func prepareDatabase(t *testing.T, postgresInfo ContainerInfo) *pgxpool.Pool {
	// プロセス毎に違うDB名を生成
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, postgresInfo.Host, postgresInfo.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "管理者接続に失敗")
	defer adminPool.Close()

	var createErr error
	for attempts := range 5 {
		if attempts > 0 {
			waitTime := min(time.Duration(500+attempts*500)*time.Millisecond, 3*time.Second)
			time.Sleep(waitTime)
			slog.Warn("データベース作成を再試行中", "attempt", attempts+1, "error", createErr.Error(), "retry_wait", waitTime)
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "テスト用データベースの作成に失敗")

	dbConfig := config.DBConfig{
		Host:     postgresInfo.Host,
		Port:     postgresInfo.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 50,
	}

	pool, cleanup, err := db.Connect(dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	require.NotNil(t, pool, "データベース接続が nil です")

	// プールを閉じてからDBを削除する
	t.Cleanup(func() {
		cleanup()

		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("クリーンアップ用のデータベース接続に失敗しました", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err.Error())
		}
	})

	schemaCtx, schemaCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer schemaCancel()
	for _, dir := range []string{migrations.Inventory, migrations.Order} {
		require.NoError(t, db.ApplySchema(schemaCtx, pool, migrations.FS, dir), "スキーマ適用に失敗")
	}

	require.NoError(t, dbtest.SeedReferenceData(pool), "参照データの投入に失敗")

	return pool
}

// ------------------------------------------------------------
// E2Eテスト用サービス構築関数
// inventory → order → gateway の順に起動する
// ------------------------------------------------------------
func buildE2EServices(t *testing.T, pool *pgxpool.Pool) *Services {
	logger := slog.New(slog.DiscardHandler)
	subjects := events.SubjectsFromConfig(config.NewTestGatewayConfig().Kafka)
	clk := clock.New()

	// inventory service
	productRepo := repository.NewProductRepository(pool)
	inventoryServer := rpc.NewServer(logger)
	rpc.RegisterInventoryServiceServer(inventoryServer, rpc.NewInventoryServer(
		commands.NewInventoryCommands(productRepo, uow.NewPostgresUoW(pool), events.NopPublisher{}, subjects, clk),
		queries.NewInventoryQueries(productRepo),
	))
	inventoryConn := serveBufconn(t, inventoryServer, logger)

	// order service
	j, err := journal.OpenInMemory()
	require.NoError(t, err, "ジャーナルのオープンに失敗")
	t.Cleanup(func() { _ = j.Close() })

	orderRepo := repository.NewOrderRepository(pool)
	orderServer := rpc.NewServer(logger)
	rpc.RegisterOrderServiceServer(orderServer, rpc.NewOrderServer(
		commands.NewOrderCommands(
			orderRepo,
			rpc.NewInventoryClient(rpc.NewInventoryServiceClient(inventoryConn), 3*time.Second),
			j,
			events.NopPublisher{},
			subjects,
			clk,
		),
		queries.NewOrderQueries(orderRepo),
	))
	orderConn := serveBufconn(t, orderServer, logger)

	// gateway
	router, cfg, app := buildGatewayApp(inventoryConn, orderConn)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	return &Services{
		Router:          router,
		Config:          cfg,
		Journal:         j,
		InventoryServer: inventoryServer,
	}
}

func serveBufconn(t *testing.T, srv *grpc.Server, logger *slog.Logger) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(bufSize)
	go func() { _ = rpc.Serve(srv, lis) }()
	t.Cleanup(srv.Stop)

	conn, err := rpc.Dial("passthrough:///bufnet", logger,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err, "gRPC接続に失敗")
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// Returns router, config, and fx.App for proper lifecycle management
func buildGatewayApp(inventoryConn, orderConn *grpc.ClientConn) (*gin.Engine, config.GatewayConfig, *fx.App) {
	var router *gin.Engine
	cfg := config.NewTestGatewayConfig()

	testConfigModule := fx.Module("testconfig",
		fx.Supply(cfg),
		fx.Provide(func(cfg config.GatewayConfig) (config.LogConfig, config.KafkaConfig, config.JWTConfig) {
			return cfg.Log, cfg.Kafka, cfg.JWT
		}),
	)

	testClientsModule := fx.Module("testclients",
		fx.Provide(
			func() usecase.InventoryCatalog {
				return rpc.NewInventoryClient(rpc.NewInventoryServiceClient(inventoryConn), cfg.Inventory.Timeout)
			},
			func() usecase.OrderGateway {
				return rpc.NewOrderClient(rpc.NewOrderServiceClient(orderConn), cfg.Order.Timeout)
			},
			func() usecase.ProductCache { return cache.NopProductCache{} },
		),
	)

	app := fx.New(
		testConfigModule,
		testClientsModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.EventsModule,
		bootstrap.JWTModule,
		components.GatewayUseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		// ログを無効にして起動
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fxアプリケーションの起動に失敗しました")
	}

	return router, cfg, app
}

// ------------------------------------------------------------
// コンテナ起動の共通関数
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// ------------------------------------------------------------
// PostgreSQLコンテナを一度だけ起動／再利用
// ------------------------------------------------------------
func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=512m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=300",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		postgresTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "PostgreSQLコンテナの起動に失敗")
	})
}

// ------------------------------------------------------------
// コンテナ関連の共通ユーティリティ関数
// ------------------------------------------------------------
func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router   *gin.Engine
	DB       *pgxpool.Pool
	Config   config.GatewayConfig
	Services *Services
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	pool, svcs := setupE2EEnvironment(t)
	s.DB = pool
	s.Services = svcs
	s.Router = svcs.Router
	s.Config = svcs.Config
	require.NotNil(t, s.DB, "DBのセットアップに失敗")
	require.NotNil(t, s.Router, "Routerのセットアップに失敗")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupTest() {
	err := dbtest.ResetDB(s.DB)
	require.NoError(s.T(), err, "Failed to reset database state")
}

func (s *SharedSuite) SetupSubTest() {
	err := dbtest.ResetDB(s.DB)
	require.NoError(s.T(), err, "Failed to reset database state")
}
