package notify

import (
	"context"
	"os/exec"
	"strconv"
	"time"

	"github.com/bnema/lgctl/internal/ports"
)

const (
	defaultBinary     = "notify-send"
	defaultRunTimeout = 5 * time.Second
	defaultTimeout    = 2 * time.Second
)

// Sink delivers desktop notifications by shelling out to notify-send.
// Fire-and-forget: failures are swallowed and the subprocess is bounded, so
// nothing here can stall or fail the command flow.
type Sink struct {
	binary     string
	runTimeout time.Duration
}

var _ ports.Notifier = (*Sink)(nil)

func NewSink() *Sink {
	return &Sink{
		binary:     defaultBinary,
		runTimeout: defaultRunTimeout,
	}
}

// NewSinkWithBinary overrides the notify-send binary. Used by tests.
func NewSinkWithBinary(binary string) *Sink {
	sink := NewSink()
	sink.binary = binary
	return sink
}

func (s *Sink) Notify(ctx context.Context, n ports.Notification) {
	// Detached from the caller's cancellation: a final-failure notification
	// must still go out when the surrounding context is already done.
	runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.runTimeout)
	defer cancel()

	_ = exec.CommandContext(runCtx, s.binary, args(n)...).Run()
}

func args(n ports.Notification) []string {
	urgency := n.Urgency
	if urgency == "" {
		urgency = ports.UrgencyNormal
	}
	timeout := n.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	list := []string{
		"-u", string(urgency),
		"-t", strconv.FormatInt(timeout.Milliseconds(), 10),
	}
	if n.Icon != "" {
		list = append(list, "-i", n.Icon)
	}

	return append(list, n.Title, n.Message)
}
