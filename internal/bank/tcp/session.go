package tcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/Lexv0lk/atm-bank/internal/bank/domain"
	"github.com/Lexv0lk/atm-bank/internal/bank/protocol"
	"github.com/Lexv0lk/atm-bank/internal/pkg/logging"
	"github.com/Lexv0lk/atm-bank/internal/pkg/wire"
)

type handlerFunc func(ctx context.Context, fields []wire.Frame) (wire.Frame, error)

type request struct {
	command   protocol.Command
	fields    []wire.Frame
	malformed bool
}

// session serves one connection. Commands are handled one at a time, so the
// session state needs no locking.
type session struct {
	id     string
	conn   net.Conn
	reader *wire.Reader
	writer *wire.Writer

	authService    domain.AuthService
	bankingService domain.BankingService
	cipher         domain.CredentialCipher
	logger         logging.Logger
	idleTimeout    time.Duration
	maxFrameSize   int

	authenticated bool
	username      string

	handlers map[protocol.Command]handlerFunc
}

func newSession(id string, conn net.Conn, s *Server) *session {
	sess := &session{
		id:             id,
		conn:           conn,
		reader:         wire.NewReader(conn, s.cfg.MaxFrameSize),
		writer:         wire.NewWriter(conn),
		authService:    s.authService,
		bankingService: s.bankingService,
		cipher:         s.cipher,
		logger:         s.logger,
		idleTimeout:    s.cfg.IdleTimeout,
		maxFrameSize:   s.cfg.MaxFrameSize,
	}

	if sess.maxFrameSize <= 0 {
		sess.maxFrameSize = wire.DefaultMaxPayloadSize
	}

	sess.handlers = map[protocol.Command]handlerFunc{
		protocol.CommandLogin:          sess.login,
		protocol.CommandBalance:        sess.balance,
		protocol.CommandDeposit:        sess.deposit,
		protocol.CommandWithdraw:       sess.withdraw,
		protocol.CommandChangePassword: sess.changePassword,
		protocol.CommandTransfer:       sess.transfer,
		protocol.CommandTransactions:   sess.transactions,
		protocol.CommandExit:           sess.exit,
	}

	return sess
}

func (s *session) serve(ctx context.Context) {
	defer s.unbind()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("session panicked", "session_id", s.id, "panic", fmt.Sprint(r))
			_ = s.respond(protocol.Response(protocol.StatusInternalError))
		}
	}()

	for {
		req, err := s.readRequest()
		if err != nil {
			s.handleReadError(err)
			return
		}

		var status protocol.Status
		switch {
		case req.malformed:
			status = protocol.StatusMalformedFrame
		case !req.command.Known():
			status = protocol.StatusUnknownCommand
		case req.command.RequiresAuth() && !s.authenticated:
			status = protocol.StatusLoginRequired
		}

		if status != "" {
			if err := s.respond(protocol.Response(status)); err != nil {
				return
			}
			continue
		}

		response, err := s.handlers[req.command](ctx, req.fields)
		if err != nil {
			s.logger.Error("failed to handle command",
				"session_id", s.id,
				"command", string(req.command),
				"error", err.Error(),
			)
			_ = s.respond(protocol.Response(protocol.StatusInternalError))
			return
		}

		if err := s.respond(response); err != nil {
			return
		}

		if req.command == protocol.CommandExit {
			return
		}
	}
}

// readRequest reads a tag frame and then as many field frames as the command
// expects, whatever their kinds. Fields are always consumed before the
// request is checked.
func (s *session) readRequest() (request, error) {
	if s.idleTimeout > 0 {
		if err := s.conn.SetReadDeadline(time.Now().Add(s.idleTimeout)); err != nil {
			return request{}, err
		}
	}

	frame, err := s.reader.ReadFrame()
	if err != nil {
		return request{}, err
	}

	if frame.Kind != wire.KindTag {
		return request{malformed: true}, nil
	}

	req := request{command: protocol.Command(frame.Payload)}
	if !req.command.Known() {
		return req, nil
	}

	kinds := req.command.Fields()
	req.fields = make([]wire.Frame, 0, len(kinds))
	for _, kind := range kinds {
		field, err := s.reader.ReadFrame()
		if errors.Is(err, io.EOF) {
			return request{}, io.ErrUnexpectedEOF
		}
		if err != nil {
			return request{}, err
		}

		if field.Kind != kind {
			req.malformed = true
		}
		req.fields = append(req.fields, field)
	}

	return req, nil
}

func (s *session) handleReadError(err error) {
	if errors.Is(err, &wire.FramingError{}) {
		s.logger.Warn("closing connection after malformed frame", "session_id", s.id, "error", err.Error())
		_ = s.respond(protocol.Response(protocol.StatusMalformedFrame))
		return
	}

	if errors.Is(err, os.ErrDeadlineExceeded) {
		s.logger.Info("closing idle connection", "session_id", s.id)
		return
	}

	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
		return
	}

	s.logger.Info("connection lost", "session_id", s.id, "error", err.Error())
}

func (s *session) respond(frame wire.Frame) error {
	if err := s.writer.WriteFrames(frame); err != nil {
		s.logger.Info("failed to write response", "session_id", s.id, "error", err.Error())
		return err
	}

	return nil
}

func (s *session) unbind() {
	s.authenticated = false
	s.username = ""
}

func (s *session) login(ctx context.Context, fields []wire.Frame) (wire.Frame, error) {
	username := fields[0].String()

	password, err := s.cipher.Decrypt(fields[1].Payload)
	if err != nil {
		s.logger.Info("login with undecryptable password", "session_id", s.id, "username", username)
		return protocol.Response(protocol.StatusFail), nil
	}

	err = s.authService.Authenticate(ctx, username, password)
	if errors.Is(err, &domain.InvalidCredentialsError{}) {
		s.logger.Info("login failed", "session_id", s.id, "username", username)
		return protocol.Response(protocol.StatusFail), nil
	}
	if err != nil {
		return wire.Frame{}, err
	}

	s.authenticated = true
	s.username = username
	s.logger.Info("login succeeded", "session_id", s.id, "username", username)

	return protocol.Response(protocol.StatusSuccess), nil
}

func (s *session) balance(ctx context.Context, _ []wire.Frame) (wire.Frame, error) {
	balance, err := s.bankingService.GetBalance(ctx, s.username)
	if err != nil {
		return statusForError(err)
	}

	encrypted, err := s.cipher.Encrypt(domain.FormatAmount(balance))
	if err != nil {
		return wire.Frame{}, fmt.Errorf("failed to encrypt balance: %w", err)
	}

	return wire.Cipher(encrypted), nil
}

func (s *session) deposit(ctx context.Context, fields []wire.Frame) (wire.Frame, error) {
	amount, err := domain.ParseAmount(fields[0].String())
	if err != nil {
		return statusForError(err)
	}

	return statusForError(s.bankingService.Deposit(ctx, s.username, amount))
}

func (s *session) withdraw(ctx context.Context, fields []wire.Frame) (wire.Frame, error) {
	amount, err := domain.ParseAmount(fields[0].String())
	if err != nil {
		return statusForError(err)
	}

	return statusForError(s.bankingService.Withdraw(ctx, s.username, amount))
}

func (s *session) transfer(ctx context.Context, fields []wire.Frame) (wire.Frame, error) {
	recipient := fields[0].String()

	amount, err := domain.ParseAmount(fields[1].String())
	if err != nil {
		return statusForError(err)
	}

	return statusForError(s.bankingService.Transfer(ctx, s.username, recipient, amount))
}

func (s *session) changePassword(ctx context.Context, fields []wire.Frame) (wire.Frame, error) {
	oldPassword, err := s.cipher.Decrypt(fields[0].Payload)
	if err != nil {
		return protocol.Response(protocol.StatusFail), nil
	}

	newPassword, err := s.cipher.Decrypt(fields[1].Payload)
	if err != nil {
		return protocol.Response(protocol.StatusFail), nil
	}

	err = s.bankingService.ChangePassword(ctx, s.username, oldPassword, newPassword)
	if errors.Is(err, &domain.InvalidCredentialsError{}) {
		return protocol.Response(protocol.StatusInvalidOldPassword), nil
	}

	return statusForError(err)
}

// transactions sends the newest records that fit in a single frame.
func (s *session) transactions(ctx context.Context, _ []wire.Frame) (wire.Frame, error) {
	records, err := s.bankingService.Transactions(ctx, s.username)
	if err != nil {
		return statusForError(err)
	}

	data, kept, err := protocol.EncodeRecords(records, s.maxFrameSize)
	if err != nil {
		return wire.Frame{}, err
	}

	if kept < len(records) {
		s.logger.Info("transaction history truncated to frame size",
			"session_id", s.id,
			"username", s.username,
			"records", len(records),
			"sent", kept,
		)
	}

	return wire.Text(string(data)), nil
}

func (s *session) exit(_ context.Context, _ []wire.Frame) (wire.Frame, error) {
	s.unbind()
	return protocol.Response(protocol.StatusGoodbye), nil
}

// statusForError maps business errors to response codes. Anything else is
// returned as an internal error.
func statusForError(err error) (wire.Frame, error) {
	switch {
	case err == nil:
		return protocol.Response(protocol.StatusSuccess), nil
	case errors.Is(err, &domain.InvalidAmountError{}):
		return protocol.Response(protocol.StatusInvalidAmount), nil
	case errors.Is(err, &domain.InsufficientFundsError{}):
		return protocol.Response(protocol.StatusInsufficientFunds), nil
	case errors.Is(err, &domain.AccountNotFoundError{}):
		return protocol.Response(protocol.StatusUnknownAccount), nil
	case errors.Is(err, &domain.InvalidArgumentsError{}):
		return protocol.Response(protocol.StatusInvalidRecipient), nil
	case errors.Is(err, &domain.InvalidCredentialsError{}), errors.Is(err, &domain.DecryptionError{}):
		return protocol.Response(protocol.StatusFail), nil
	default:
		return wire.Frame{}, err
	}
}
