//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"haggle-service/internal/domain/negotiation"
	"haggle-service/internal/infra/db"
	"haggle-service/internal/infra/repository"
	"haggle-service/internal/pkg/clock"
	"haggle-service/internal/pkg/config"
	"haggle-service/internal/usecase/commands"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type containerInfo struct {
	Host string
	Port nat.Port
}

// startPostgresOnce brings up a single PostgreSQL container shared by every
// suite in the process. Each suite gets its own database inside it.
func startPostgresOnce(t *testing.T) containerInfo {
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
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=200",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
		}

		ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
		defer cancel()

		var err error
		postgresTestContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "failed to start postgres container")

		t.Cleanup(func() {
			if postgresTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				_ = postgresTestContainer.Terminate(ctx)
			}
		})
	})

	ctx := context.Background()
	mappedPort, err := postgresTestContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err, "failed to resolve container port")
	host, err := postgresTestContainer.Host(ctx)
	require.NoError(t, err, "failed to resolve container host")

	return containerInfo{Host: host, Port: mappedPort}
}

// preparePool creates a throwaway database in the shared container and
// connects to it. Connect applies the embedded migrations on its way in.
func preparePool(t *testing.T, info containerInfo) *pgxpool.Pool {
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, info.Host, info.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "failed to open admin connection")
	defer adminPool.Close()

	_, err = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			return
		}
		defer cleanupPool.Close()
		_, _ = cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName)
	})

	pool, cleanup, err := db.Connect(config.DBConfig{
		Host:     info.Host,
		Port:     info.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
	})
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(cleanup)

	return pool
}

// SharedSuite wires the real repositories and command services against a
// containerized database. The clock is a mock so suites can move time past
// session and token deadlines without sleeping.
type SharedSuite struct {
	suite.Suite
	DB           *pgxpool.Pool
	Clock        *clock.MockClock
	Negotiations commands.NegotiationCommands
	Tokens       commands.TokenCommands
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	info := startPostgresOnce(t)
	s.DB = preparePool(t, info)

	s.Clock = clock.NewMockClock(time.Now().UTC().Truncate(time.Second))
	services := &negotiation.Services{
		Clock:   s.Clock,
		Filter:  negotiation.NewContentFilter(),
		Limiter: negotiation.NewRateLimiter(),
	}

	sessionRepo := repository.NewSessionRepository()
	tokenRepo := repository.NewTokenRepository()
	s.Negotiations = commands.NewNegotiationCommands(sessionRepo, tokenRepo, services, s.DB, s.Clock)
	s.Tokens = commands.NewTokenCommands(tokenRepo, s.DB, s.Clock)
}
