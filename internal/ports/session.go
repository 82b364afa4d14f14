package ports

import (
	"context"

	"github.com/bnema/lgctl/internal/domain"
)

// CommandSession is a single-use connection to the TV. Execute opens the
// connection, performs the registration handshake, sends exactly one command
// and awaits its terminal outcome, releasing the connection on every path.
// A session must not be reused after Execute returns.
type CommandSession interface {
	Execute(ctx context.Context, cmd domain.Command) domain.CommandResult
}

// SessionFactory produces a fresh session. The TV's connection is one-shot,
// so every attempt needs a new session.
type SessionFactory func() CommandSession
