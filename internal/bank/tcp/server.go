// Package tcp serves bank sessions over TCP connections.
package tcp

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/Lexv0lk/atm-bank/internal/bank/domain"
	"github.com/Lexv0lk/atm-bank/internal/pkg/logging"
	"github.com/Lexv0lk/atm-bank/internal/pkg/wire"
	"github.com/google/uuid"
)

const (
	minAcceptRetryDelay = 5 * time.Millisecond
	maxAcceptRetryDelay = time.Second
)

type ServerConfig struct {
	MaxFrameSize int
	IdleTimeout  time.Duration
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		MaxFrameSize: wire.DefaultMaxPayloadSize,
		IdleTimeout:  10 * time.Minute,
	}
}

type Server struct {
	authService    domain.AuthService
	bankingService domain.BankingService
	cipher         domain.CredentialCipher
	logger         logging.Logger
	cfg            ServerConfig

	mu       sync.Mutex
	conns    map[net.Conn]struct{}
	closing  bool
	sessions sync.WaitGroup
}

func NewServer(
	authService domain.AuthService,
	bankingService domain.BankingService,
	cipher domain.CredentialCipher,
	logger logging.Logger,
	cfg ServerConfig,
) *Server {
	return &Server{
		authService:    authService,
		bankingService: bankingService,
		cipher:         cipher,
		logger:         logger,
		cfg:            cfg,
		conns:          make(map[net.Conn]struct{}),
	}
}

// Serve accepts connections until ctx is done or the listener is closed.
// Other accept errors, such as running out of file descriptors, are retried
// with backoff. Each connection gets its own session goroutine. On return the listener and all
// live connections are closed and every session has finished.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	stop := context.AfterFunc(ctx, func() {
		s.shutdown(lis)
	})
	defer stop()
	defer s.sessions.Wait()
	defer s.shutdown(lis)

	s.logger.Info("accepting connections", "addr", lis.Addr().String())

	var retryDelay time.Duration
	for {
		conn, err := lis.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}

			retryDelay = nextAcceptRetryDelay(retryDelay)
			s.logger.Warn("accept failed, retrying", "error", err.Error(), "retry_in", retryDelay.String())

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(retryDelay):
			}
			continue
		}
		retryDelay = 0

		if !s.track(conn) {
			_ = conn.Close()
			return nil
		}

		s.sessions.Add(1)
		go s.handle(ctx, conn)
	}
}

func nextAcceptRetryDelay(delay time.Duration) time.Duration {
	if delay == 0 {
		return minAcceptRetryDelay
	}

	return min(2*delay, maxAcceptRetryDelay)
}

func (s *Server) handle(ctx context.Context, conn net.Conn) {
	defer s.sessions.Done()
	defer s.untrack(conn)

	id := uuid.NewString()
	remoteAddr := conn.RemoteAddr().String()

	s.logger.Info("session opened", "session_id", id, "remote_addr", remoteAddr)
	newSession(id, conn, s).serve(ctx)
	s.logger.Info("session closed", "session_id", id, "remote_addr", remoteAddr)
}

func (s *Server) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closing {
		return false
	}

	s.conns[conn] = struct{}{}
	return true
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()

	_ = conn.Close()
}

func (s *Server) shutdown(lis net.Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closing {
		return
	}
	s.closing = true

	_ = lis.Close()
	for conn := range s.conns {
		_ = conn.Close()
	}
}
