package integration

import (
	"context"
	"database/sql"
	"encoding/base64"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/exec"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	migrationsdb "telelink/db"
	"telelink/pkg/config"
	"telelink/pkg/crypt"
	"telelink/pkg/entitlement"
	"telelink/pkg/linker"
	"telelink/pkg/server"
	"telelink/pkg/server/endpoints"
	gormstore "telelink/pkg/server/store/gorm"
	"telelink/pkg/telegram"
)

// TestContext holds all the resources needed for integration tests
type TestContext struct {
	DB            *gorm.DB
	RawDB         *sql.DB
	Container     testcontainers.Container
	ServerURL     string
	DatabaseURL   string
	DataKey       []byte
	Cipher        crypt.SymmetricCipher
	HTTPClient    *http.Client
	Cancel        context.CancelFunc
	ServerProcess *exec.Cmd
	InlineServer  *server.Server
}

// NewTestContext creates a new test context with a PostgreSQL testcontainer.
// Modes:
//   - Binary mode (default): Set TELELINK_BINARY to the path of the telelinkctl binary
//   - Inline mode: Set TELELINK_INLINE=1 to run the server in-process (no binary needed)
func NewTestContext(ctx context.Context) (*TestContext, error) {
	inlineMode := os.Getenv("TELELINK_INLINE") == "1"
	binaryPath := os.Getenv("TELELINK_BINARY")

	if !inlineMode && binaryPath == "" {
		return nil, fmt.Errorf("Either TELELINK_BINARY or TELELINK_INLINE=1 is required.\n\nBinary mode:\n  go build -o telelinkctl ./cmd/telelinkctl\n  INTEGRATION_TEST=1 TELELINK_BINARY=$(pwd)/telelinkctl go test -v ./test/integration/...\n\nInline mode:\n  INTEGRATION_TEST=1 TELELINK_INLINE=1 go test -v ./test/integration/...")
	}

	if !inlineMode {
		if _, err := os.Stat(binaryPath); err != nil {
			return nil, fmt.Errorf("TELELINK_BINARY path does not exist: %s", binaryPath)
		}
		log.Printf("Using binary: %s", binaryPath)
	} else {
		log.Println("Using inline server mode")
	}

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("telelink_test"),
		tcpostgres.WithUsername("telelink"),
		tcpostgres.WithPassword("telelink"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := pgContainer.Host(ctx)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := pgContainer.MappedPort(ctx, "5432")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}
	connStr := fmt.Sprintf("postgres://telelink:telelink@%s:%s/telelink_test?sslmode=disable", host, port.Port())

	if err := runMigrations(connStr); err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	dataKey := make([]byte, crypt.DataKeySize)
	for i := range dataKey {
		dataKey[i] = byte(i)
	}
	cipher, err := crypt.NewSymmetric(dataKey)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	// Connect with GORM for test setup/assertions, with the cipher in the
	// connection context so model hooks decrypt transparently.
	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	dbCtx := context.WithValue(context.Background(), "cipher", cipher)
	db = db.WithContext(dbCtx)

	rawDB, err := db.DB()
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get raw db: %w", err)
	}

	serverPort := "18080"
	serverURL := fmt.Sprintf("http://127.0.0.1:%s", serverPort)

	var serverProcess *exec.Cmd
	var inlineServer *server.Server
	var cancel context.CancelFunc

	if inlineMode {
		inlineServer, cancel, err = startInlineServer(db, cipher, serverPort)
		if err != nil {
			_ = pgContainer.Terminate(ctx)
			return nil, fmt.Errorf("failed to start inline server: %w", err)
		}
	} else {
		serverProcess, cancel, err = startBinary(binaryPath, connStr, dataKey, serverPort)
		if err != nil {
			_ = pgContainer.Terminate(ctx)
			return nil, fmt.Errorf("failed to start server binary: %w", err)
		}
	}

	if err := waitForServer(serverURL, 30*time.Second); err != nil {
		cancel()
		if serverProcess != nil && serverProcess.Process != nil {
			_ = serverProcess.Process.Kill()
		}
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("server failed to become ready: %w", err)
	}

	return &TestContext{
		DB:            db,
		RawDB:         rawDB,
		Container:     pgContainer,
		ServerURL:     serverURL,
		DatabaseURL:   connStr,
		DataKey:       dataKey,
		Cipher:        cipher,
		HTTPClient:    &http.Client{Timeout: 30 * time.Second},
		Cancel:        cancel,
		ServerProcess: serverProcess,
		InlineServer:  inlineServer,
	}, nil
}

// startInlineServer starts the server in-process (no binary needed)
func startInlineServer(db *gorm.DB, cipher crypt.SymmetricCipher, port string) (*server.Server, context.CancelFunc, error) {
	_, cancel := context.WithCancel(context.Background())

	cfg := &config.Config{
		BindAddress:       "127.0.0.1",
		Port:              port,
		RequiredPlugin:    "telegram",
		PollWindowSeconds: 2,
	}

	credentials := gormstore.NewCredentialsStore(db)
	bindings := gormstore.NewBindingsStore(db)
	bots := gormstore.NewBotsStore(db)
	gate := entitlement.NewGate(credentials, cfg.RequiredPlugin)
	poller := telegram.NewBotPoller(cfg.PollWindow())
	resolver := linker.NewResolver(gate, bindings, bots, poller)

	s := server.NewServer(cipher, db, credentials, resolver, cfg)
	endpoints.RegisterAll(s)

	go func() {
		_ = s.Start()
	}()

	return s, cancel, nil
}

// startBinary starts the telelinkctl server binary
func startBinary(binaryPath, dbURL string, dataKey []byte, port string) (*exec.Cmd, context.CancelFunc, error) {
	ctx, cancel := context.WithCancel(context.Background())

	// Use --no-migrate since we already ran migrations in the test setup
	cmd := exec.CommandContext(ctx, binaryPath, "server", "--no-migrate", "-b", "127.0.0.1", "-p", port)
	cmd.Env = append(os.Environ(),
		"DATABASE_URL="+dbURL,
		"TELELINK_DATA_KEY="+base64.StdEncoding.EncodeToString(dataKey),
		"TELELINK_POLL_WINDOW_SECONDS=2",
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		cancel()
		return nil, nil, fmt.Errorf("failed to start binary: %w", err)
	}

	return cmd, cancel, nil
}

// waitForServer polls the server until it responds or times out
func waitForServer(serverURL string, timeout time.Duration) error {
	client := &http.Client{Timeout: 2 * time.Second}
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		resp, err := client.Get(serverURL + "/")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}

	return fmt.Errorf("server did not become ready within %v", timeout)
}

// Close cleans up all test resources
func (tc *TestContext) Close(ctx context.Context) {
	if tc.Cancel != nil {
		tc.Cancel()
	}
	if tc.ServerProcess != nil && tc.ServerProcess.Process != nil {
		_ = tc.ServerProcess.Process.Kill()
		_ = tc.ServerProcess.Wait()
	}
	if tc.RawDB != nil {
		_ = tc.RawDB.Close()
	}
	if tc.Container != nil {
		_ = tc.Container.Terminate(ctx)
	}
}

// runMigrations applies the embedded migrations against the test database
func runMigrations(dbURL string) error {
	migrationsFS, err := fs.Sub(migrationsdb.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to get embedded migrations: %w", err)
	}

	d, err := iofs.New(migrationsFS, ".")
	if err != nil {
		return fmt.Errorf("failed to create iofs driver: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, dbURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
