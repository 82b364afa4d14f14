package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/lgctl/internal/domain"
	"github.com/bnema/lgctl/internal/ports"
)

// Retry defaults. The TV's WebSocket service returns transient SSL errors
// after idle periods; two or three spaced attempts resolve them. The delay
// grows linearly because the dominant latency source is a fixed idle-wake
// delay, not congestion.
const (
	DefaultMaxAttempts   = 3
	DefaultBaseDelay     = 500 * time.Millisecond
	DefaultSlowThreshold = time.Second

	transientNotifyTimeout = 1500 * time.Millisecond
	finalNotifyTimeout     = 2 * time.Second
)

// Operation runs one attempt against a fresh session and returns its
// terminal outcome.
type Operation func(ctx context.Context, session ports.CommandSession) domain.CommandResult

type ExecutorOptions struct {
	MaxAttempts   int
	BaseDelay     time.Duration
	SlowThreshold time.Duration
	// Title is used for every notification this executor emits.
	Title string
	// OnRetry, if set, is invoked with the upcoming attempt number (1-based)
	// before each retry sleep. Suppressed once the watchdog has signaled a
	// slow connect, so the user never sees both for the same stall.
	OnRetry func(nextAttempt int)
	Clock   ports.Clock
}

// Executor drives up to MaxAttempts one-shot sessions for a single command,
// pacing retries with linear backoff and owning every user-facing
// notification for the call.
type Executor struct {
	sessions ports.SessionFactory
	notifier ports.Notifier
	opts     ExecutorOptions
}

func NewExecutor(sessions ports.SessionFactory, notifier ports.Notifier, opts ExecutorOptions) *Executor {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = DefaultBaseDelay
	}
	if opts.SlowThreshold <= 0 {
		opts.SlowThreshold = DefaultSlowThreshold
	}
	if opts.Title == "" {
		opts.Title = "LG TV"
	}
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}

	return &Executor{
		sessions: sessions,
		notifier: notifier,
		opts:     opts,
	}
}

// Execute runs op against fresh sessions until it succeeds, a permanent
// fault stops it, or attempts are exhausted. It never returns an error:
// failures surface as a CommandResult failure variant, with the detailed
// text delivered through the notification side channel. Exactly one final
// notification is emitted per failed call.
func (e *Executor) Execute(ctx context.Context, op Operation, fallbackMsg string) domain.CommandResult {
	watchdog := StartWatchdog(e.opts.SlowThreshold, func() {
		e.notifier.Notify(ctx, ports.Notification{
			Title:   e.opts.Title,
			Message: "Connecting to TV...",
			Urgency: ports.UrgencyLow,
			Timeout: transientNotifyTimeout,
		})
	})
	defer watchdog.Stop()

	var lastErr string
	for attempt := 0; attempt < e.opts.MaxAttempts; attempt++ {
		// The connection is one-shot: a session cannot survive its command,
		// so every attempt gets a fresh one.
		session := e.sessions()

		result := op(ctx, session)
		if result.OK() {
			watchdog.Stop()
			return result
		}

		lastErr = result.Err
		if !IsRetryable(lastErr) {
			break
		}

		if attempt < e.opts.MaxAttempts-1 {
			if e.opts.OnRetry != nil && !watchdog.Fired() {
				e.opts.OnRetry(attempt + 2)
			}
			e.opts.Clock.Sleep(ctx, e.opts.BaseDelay*time.Duration(attempt+1))
		}
	}

	watchdog.Stop()

	msg := lastErr
	if msg == "" {
		msg = fallbackMsg
	}
	e.notifier.Notify(ctx, ports.Notification{
		Title:   e.opts.Title,
		Message: msg,
		Urgency: ports.UrgencyCritical,
		Timeout: finalNotifyTimeout,
	})

	return domain.Failure(msg)
}

// ReconnectNotifier builds the standard OnRetry callback: a short
// low-urgency "Reconnecting" toast naming the upcoming attempt.
func ReconnectNotifier(notifier ports.Notifier, title string, maxAttempts int) func(int) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	return func(nextAttempt int) {
		notifier.Notify(context.Background(), ports.Notification{
			Title:   title,
			Message: fmt.Sprintf("Reconnecting to TV... (attempt %d/%d)", nextAttempt, maxAttempts),
			Urgency: ports.UrgencyLow,
			Timeout: transientNotifyTimeout,
		})
	}
}

// LoadTV resolves the target TV, surfacing config faults through the
// notification channel. Config faults short-circuit before any attempt.
func LoadTV(ctx context.Context, provider ports.ConfigProvider, notifier ports.Notifier, title string) (ports.TVConfig, error) {
	tv, err := provider.Load(ctx)
	if err != nil {
		notifier.Notify(ctx, ports.Notification{
			Title:   title,
			Message: fmt.Sprintf("Config error: %v", err),
			Urgency: ports.UrgencyCritical,
			Timeout: finalNotifyTimeout,
		})
		return ports.TVConfig{}, err
	}

	return tv, nil
}
