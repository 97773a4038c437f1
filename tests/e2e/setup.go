//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"commission-tracker/cmd/bootstrap"
	"commission-tracker/cmd/bootstrap/components"
	"commission-tracker/internal/infra/db"
	"commission-tracker/internal/pkg/config"
	"commission-tracker/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// SharedSuite is embedded by every e2e suite. Each suite gets a fresh
// database; WithCache also gives it a Redis logical database.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	Redis  *redis.Client

	// WithCache must be set before SetupSuite runs.
	WithCache bool
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)
	startContainers(t, s.WithCache)

	s.Config = config.NewTestConfig()
	s.DB, s.Config.DB = createDatabase(t)
	if s.WithCache {
		s.Config.Redis = claimRedisDB(t)
		s.Redis = redis.NewClient(&redis.Options{Addr: s.Config.Redis.Addr, DB: s.Config.Redis.DB})
		t.Cleanup(func() { _ = s.Redis.Close() })
	}
	s.Router = startApp(t, s.DB, s.Config)
}

func (s *SharedSuite) SetupTest()    { s.reset() }
func (s *SharedSuite) SetupSubTest() { s.reset() }

func (s *SharedSuite) reset() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
	if s.Redis != nil {
		require.NoError(s.T(), s.Redis.FlushDB(s.T().Context()).Err(), "failed to flush redis")
	}
}

// startContainers boots the containers the suite needs in parallel.
func startContainers(t *testing.T, withCache bool) {
	var g errgroup.Group
	g.Go(postgresContainer.start)
	if withCache {
		g.Go(redisContainer.start)
	}
	require.NoError(t, g.Wait(), "failed to start containers")
}

func createDatabase(t *testing.T) (*pgxpool.Pool, config.DBConfig) {
	host, port := postgresContainer.endpoint(t)
	name := "testdb_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, adminExec(ctx, host, port, "CREATE DATABASE "+name, 5), "failed to create test database")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := adminExec(ctx, host, port, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)", 1); err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err.Error())
		}
	})

	cfg := config.DBConfig{
		Host:     host,
		Port:     port,
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}
	pool, err := db.Connect(ctx, cfg)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(pool.Close)

	require.NoError(t, applyMigrations(ctx, pool), "failed to apply migrations")
	return pool, cfg
}

// adminExec runs one statement on the maintenance database. CREATE DATABASE
// can race with template locks when suites start together, hence attempts.
func adminExec(ctx context.Context, host, port, stmt string, attempts int) error {
	pool, err := pgxpool.New(ctx, adminDSN(host, port))
	if err != nil {
		return err
	}
	defer pool.Close()

	for i := range attempts {
		if i > 0 {
			time.Sleep(time.Duration(i) * 500 * time.Millisecond)
		}
		if _, err = pool.Exec(ctx, stmt); err == nil {
			return nil
		}
	}
	return err
}

// applyMigrations runs the SQL files directly so the suite does not need the
// atlas binary. cmd/migrate applies the same directory.
func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	dir, err := findMigrationsDir()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	for _, file := range files {
		body, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		if _, err := pool.Exec(ctx, string(body)); err != nil {
			return fmt.Errorf("apply migration %s: %w", file, err)
		}
	}
	return nil
}

// findMigrationsDir walks up from the package directory go test runs in.
func findMigrationsDir() (string, error) {
	dir := "migrations"
	for range 4 {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
		dir = filepath.Join("..", dir)
	}
	return "", fmt.Errorf("migrations directory not found")
}

var (
	redisDBMu   sync.Mutex
	nextRedisDB = 1
)

// claimRedisDB rotates through logical databases 1..15 so suites never
// share a cache generation counter.
func claimRedisDB(t *testing.T) config.RedisConfig {
	host, port := redisContainer.endpoint(t)

	redisDBMu.Lock()
	index := nextRedisDB
	nextRedisDB = nextRedisDB%15 + 1
	redisDBMu.Unlock()

	cfg := config.RedisConfig{Addr: host + ":" + port, DB: index, CacheTTL: time.Minute}
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, DB: cfg.DB})
	defer client.Close()
	require.NoError(t, client.FlushDB(context.Background()).Err())
	return cfg
}

// startApp builds the production graph minus config and DB, which the suite
// already owns.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	var router *gin.Engine
	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(gin.New),
		bootstrap.LoggerModule,
		bootstrap.CacheModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})
	require.NotNil(t, router, "router was not built")
	return router
}
