//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
)

// sharedContainer is started on first use and reused by every suite in the
// test binary. Ryuk removes it when the binary exits.
type sharedContainer struct {
	port    nat.Port
	timeout time.Duration
	request func() testcontainers.ContainerRequest

	once sync.Once
	c    testcontainers.Container
	err  error
}

func (s *sharedContainer) start() error {
	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		s.c, s.err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: s.request(),
			Started:          true,
		})
	})
	return s.err
}

// endpoint returns host and mapped port of the container's service port.
func (s *sharedContainer) endpoint(t *testing.T) (string, string) {
	t.Helper()
	require.NoError(t, s.start(), "container for %s did not start", s.port)

	ctx := context.Background()
	host, err := s.c.Host(ctx)
	require.NoError(t, err)
	mapped, err := s.c.MappedPort(ctx, s.port)
	require.NoError(t, err)
	return host, mapped.Port()
}

var postgresContainer = &sharedContainer{
	port:    "5432/tcp",
	timeout: 3 * time.Minute,
	request: func() testcontainers.ContainerRequest {
		return testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=200",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return adminDSN(host, port.Port())
			}).WithStartupTimeout(time.Minute),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}
	},
}

var redisContainer = &sharedContainer{
	port:    "6379/tcp",
	timeout: time.Minute,
	request: func() testcontainers.ContainerRequest {
		return testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		}
	},
}

func adminDSN(host, port string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port)
}
