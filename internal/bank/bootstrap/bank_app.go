package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/Lexv0lk/atm-bank/internal/bank/application"
	"github.com/Lexv0lk/atm-bank/internal/bank/domain"
	"github.com/Lexv0lk/atm-bank/internal/bank/infrastructure/cipher"
	httpwrap "github.com/Lexv0lk/atm-bank/internal/bank/infrastructure/http"
	"github.com/Lexv0lk/atm-bank/internal/bank/infrastructure/memory"
	natswrap "github.com/Lexv0lk/atm-bank/internal/bank/infrastructure/nats"
	"github.com/Lexv0lk/atm-bank/internal/bank/infrastructure/postgres"
	"github.com/Lexv0lk/atm-bank/internal/bank/seed"
	"github.com/Lexv0lk/atm-bank/internal/bank/tcp"
	"github.com/Lexv0lk/atm-bank/internal/pkg/database"
	"github.com/Lexv0lk/atm-bank/internal/pkg/logging"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout = 5 * time.Second
)

type BankApp struct {
	cfg    BankConfig
	logger logging.Logger

	mu       sync.Mutex
	cancel   context.CancelFunc
	done     chan struct{}
	dbpool   *pgxpool.Pool
	natsConn *nats.Conn
}

func NewBankApp(cfg BankConfig, logger logging.Logger) *BankApp {
	return &BankApp{
		cfg:    cfg,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Run builds every component and serves lis until ctx is done. A failure
// while building is returned before anything is served.
func (a *BankApp) Run(ctx context.Context, lis net.Listener) error {
	defer close(a.done)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.mu.Lock()
	a.cancel = cancel
	a.mu.Unlock()

	logger := a.logger
	cfg := a.cfg

	privateKey, publicKey, err := cipher.LoadOrGenerateKeys(cipher.KeyPaths{
		PrivateKey: cfg.PrivateKeyPath,
		PublicKey:  cfg.PublicKeyPath,
	}, cfg.GenerateKeys)
	if err != nil {
		return fmt.Errorf("failed to load credential keys: %w", err)
	}
	credentialCipher := cipher.NewRSACipher(privateKey, publicKey)

	store, err := a.createStore(ctx)
	if err != nil {
		return err
	}

	passwordHasher := domain.NewArgonPasswordHasher()

	if cfg.SeedFile != "" {
		seeder := seed.NewSeeder(store, passwordHasher, logger)
		if _, err := seeder.SeedFile(ctx, cfg.SeedFile); err != nil {
			return fmt.Errorf("failed to seed accounts: %w", err)
		}
	}

	publisher, err := a.createPublisher()
	if err != nil {
		return err
	}

	engine := application.NewTransactionEngine(store, passwordHasher, publisher, logger)
	authenticator := application.NewAuthenticator(store, passwordHasher)

	server := tcp.NewServer(authenticator, engine, credentialCipher, logger, tcp.ServerConfig{
		MaxFrameSize: cfg.MaxFrameSize,
		IdleTimeout:  cfg.IdleTimeout,
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.Serve(gctx, lis); err != nil {
			return fmt.Errorf("failed to serve bank connections: %w", err)
		}

		return nil
	})

	if cfg.AdminAddr != "" {
		adminServer := &http.Server{
			Addr:    cfg.AdminAddr,
			Handler: httpwrap.NewRouter(engine, cfg.AdminToken, logger),
		}

		g.Go(func() error {
			logger.Info("starting admin server", "addr", cfg.AdminAddr)
			if err := adminServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("error while starting admin server: %w", err)
			}

			return nil
		})

		g.Go(func() error {
			<-gctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := adminServer.Shutdown(shutdownCtx); err != nil {
				logger.Error("admin server shutdown failed", "error", err.Error())
			}

			return nil
		})
	}

	return g.Wait()
}

func (a *BankApp) createStore(ctx context.Context) (domain.AccountsStore, error) {
	if a.cfg.Store != StorePostgres {
		return memory.NewAccountsStore(), nil
	}

	dbURL := a.cfg.DbSettings.GetURL()

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	a.mu.Lock()
	a.dbpool = dbpool
	a.mu.Unlock()

	if err := dbpool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := database.MigrateDatabase(dbURL, postgres.Migrations, postgres.MigrationsDir); err != nil {
		return nil, err
	}

	txManager := database.NewDelegateTxManager(dbpool, a.logger)

	return postgres.NewAccountsStore(dbpool, txManager), nil
}

func (a *BankApp) createPublisher() (domain.EventPublisher, error) {
	if a.cfg.NatsURL == "" {
		return domain.NopEventPublisher{}, nil
	}

	conn, err := natswrap.Connect(a.cfg.NatsURL)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	a.natsConn = conn
	a.mu.Unlock()

	return natswrap.NewRecordsPublisher(conn), nil
}

// Shutdown stops serving, waits for running sessions and releases the
// database pool and the NATS connection.
func (a *BankApp) Shutdown() {
	a.logger.Info("shutting down bank server")

	a.mu.Lock()
	cancel := a.cancel
	a.mu.Unlock()

	if cancel != nil {
		cancel()

		select {
		case <-a.done:
		case <-time.After(shutdownTimeout):
			a.logger.Warn("bank server did not stop in time")
		}
	}

	a.mu.Lock()
	natsConn, dbpool := a.natsConn, a.dbpool
	a.natsConn, a.dbpool = nil, nil
	a.mu.Unlock()

	if natsConn != nil {
		if err := natsConn.Drain(); err != nil {
			a.logger.Error("failed to drain nats connection", "error", err.Error())
		}
	}

	if dbpool != nil {
		dbpool.Close()
	}

	a.logger.Info("bank server stopped")
}
