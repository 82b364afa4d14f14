package tv

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/bnema/lgctl/internal/domain"
	"github.com/bnema/lgctl/internal/ports"
)

const (
	// The TV's encrypted WebSocket service listens on a fixed port.
	DefaultPort = 3001

	DefaultDialTimeout     = 3 * time.Second
	DefaultResponseTimeout = 2 * time.Second
)

type SessionConfig struct {
	// Address is the TV host (IP or name, without port).
	Address string
	// Key is the pairing key embedded in the register handshake.
	Key string

	DialTimeout     time.Duration
	ResponseTimeout time.Duration

	// URL overrides the derived wss URL. Used by tests to point the session
	// at a plain ws endpoint.
	URL string
}

// Session is a single-use connection to the TV: one dial, one registration
// handshake, one command, one terminal response. The TV closes the
// connection after each operation, so a session cannot be reused; Execute
// refuses a second call.
type Session struct {
	cfg   SessionConfig
	state atomic.Int32
	used  atomic.Bool
}

var _ ports.CommandSession = (*Session)(nil)

func NewSession(cfg SessionConfig) *Session {
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = DefaultDialTimeout
	}
	if cfg.ResponseTimeout <= 0 {
		cfg.ResponseTimeout = DefaultResponseTimeout
	}

	return &Session{cfg: cfg}
}

// Factory returns a session factory for the retry loop: each attempt gets a
// fresh session against the same TV.
func Factory(cfg SessionConfig) ports.SessionFactory {
	return func() ports.CommandSession {
		return NewSession(cfg)
	}
}

func (s *Session) State() domain.SessionState {
	return domain.SessionState(s.state.Load())
}

// advance moves the lifecycle forward. Backward transitions are dropped so
// a late reader-goroutine update cannot regress a terminal state.
func (s *Session) advance(next domain.SessionState) {
	for {
		current := s.state.Load()
		if int32(next) <= current {
			return
		}
		if s.state.CompareAndSwap(current, int32(next)) {
			return
		}
	}
}

// Execute connects, registers and sends cmd, blocking until a terminal
// response arrives or the response wait elapses. It never returns a Go
// error: every failure, including dial and handshake exceptions, becomes a
// CommandResult failure variant. The connection is released on every path.
func (s *Session) Execute(ctx context.Context, cmd domain.Command) domain.CommandResult {
	if !s.used.CompareAndSwap(false, true) {
		return domain.Failure(domain.ErrSessionUsed.Error())
	}

	s.advance(domain.SessionConnecting)

	// The TV presents a self-signed certificate; there is no trust root to
	// verify against, so verification is disabled deliberately.
	dialer := websocket.Dialer{
		HandshakeTimeout: s.cfg.DialTimeout,
		TLSClientConfig:  &tls.Config{InsecureSkipVerify: true},
	}

	dialCtx, cancel := context.WithTimeout(ctx, s.cfg.DialTimeout)
	defer cancel()

	conn, resp, err := dialer.DialContext(dialCtx, s.url(), nil)
	if err != nil {
		s.advance(domain.SessionFailed)
		if resp != nil {
			return domain.Failure(fmt.Sprintf("connect: %v (status %d)", err, resp.StatusCode))
		}
		return domain.Failure(fmt.Sprintf("connect: %v", err))
	}
	defer func() {
		closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = conn.WriteMessage(websocket.CloseMessage, closeMsg)
		_ = conn.Close()
	}()

	if err := conn.WriteJSON(registerMessage(s.cfg.Key)); err != nil {
		s.advance(domain.SessionFailed)
		return domain.Failure(fmt.Sprintf("send register: %v", err))
	}

	// Single reader goroutine owns the connection from here: it sends the
	// command once the registration ack arrives and delivers exactly one
	// terminal result. The buffered channel lets it finish even if this
	// side already timed out.
	results := make(chan domain.CommandResult, 1)
	go s.run(conn, cmd, results)

	timer := time.NewTimer(s.cfg.ResponseTimeout)
	defer timer.Stop()

	select {
	case result := <-results:
		if result.OK() {
			s.advance(domain.SessionDone)
		} else {
			s.advance(domain.SessionFailed)
		}
		return result
	case <-timer.C:
		s.advance(domain.SessionFailed)
		return domain.Failure("timed out waiting for response")
	case <-ctx.Done():
		s.advance(domain.SessionFailed)
		return domain.Failure(fmt.Sprintf("wait: %v", ctx.Err()))
	}
}

func (s *Session) run(conn *websocket.Conn, cmd domain.Command, results chan<- domain.CommandResult) {
	for {
		var msg wireMessage
		if err := conn.ReadJSON(&msg); err != nil {
			results <- domain.Failure(fmt.Sprintf("read: %v", err))
			return
		}

		switch msg.Type {
		case "registered":
			s.advance(domain.SessionRegistered)
			if err := conn.WriteJSON(cmd); err != nil {
				results <- domain.Failure(fmt.Sprintf("send command: %v", err))
				return
			}
			s.advance(domain.SessionAwaitingResponse)

		case "response":
			// Only an explicit returnValue=false is a rejection; a missing
			// field counts as success.
			if rv, ok := msg.Payload["returnValue"].(bool); ok && !rv {
				errText, _ := msg.Payload["errorText"].(string)
				results <- domain.Failure(errText)
				return
			}
			results <- domain.Success(msg.Payload)
			return

		case "error":
			results <- domain.Failure(msg.Error)
			return
		}
	}
}

func (s *Session) url() string {
	if s.cfg.URL != "" {
		return s.cfg.URL
	}
	return fmt.Sprintf("wss://%s/", net.JoinHostPort(s.cfg.Address, strconv.Itoa(DefaultPort)))
}

type wireMessage struct {
	Type    string         `json:"type"`
	ID      string         `json:"id,omitempty"`
	Error   string         `json:"error,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
}
