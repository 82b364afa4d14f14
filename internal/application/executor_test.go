package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lgctl/internal/domain"
	"github.com/bnema/lgctl/internal/ports"
)

type recordingNotifier struct {
	mu    sync.Mutex
	notes []ports.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, note ports.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notes = append(n.notes, note)
}

func (n *recordingNotifier) all() []ports.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]ports.Notification(nil), n.notes...)
}

type recordingClock struct {
	mu     sync.Mutex
	sleeps []time.Duration
}

func (c *recordingClock) Now() time.Time {
	return time.Now()
}

func (c *recordingClock) Sleep(_ context.Context, d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
}

func (c *recordingClock) all() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.sleeps...)
}

type nopSession struct{}

func (nopSession) Execute(context.Context, domain.Command) domain.CommandResult {
	return domain.Failure("nop session executed")
}

// countingFactory hands out fresh sessions and counts them.
func countingFactory(created *int) ports.SessionFactory {
	return func() ports.CommandSession {
		*created++
		return nopSession{}
	}
}

// scriptedOp returns the queued results in order, ignoring the session.
func scriptedOp(t *testing.T, results ...domain.CommandResult) Operation {
	t.Helper()
	calls := 0
	return func(context.Context, ports.CommandSession) domain.CommandResult {
		require.Less(t, calls, len(results), "operation called more times than scripted")
		result := results[calls]
		calls++
		return result
	}
}

func newTestExecutor(created *int, notifier *recordingNotifier, clock *recordingClock, opts ExecutorOptions) *Executor {
	if opts.SlowThreshold == 0 {
		opts.SlowThreshold = time.Hour
	}
	opts.Clock = clock
	return NewExecutor(countingFactory(created), notifier, opts)
}

func TestExecuteTransientFailuresThenSuccess(t *testing.T) {
	t.Parallel()

	var created int
	notifier := &recordingNotifier{}
	clock := &recordingClock{}
	var retries []int

	exec := newTestExecutor(&created, notifier, clock, ExecutorOptions{
		MaxAttempts: 3,
		BaseDelay:   500 * time.Millisecond,
		Title:       "TV Brightness",
		OnRetry:     func(next int) { retries = append(retries, next) },
	})

	result := exec.Execute(context.Background(), scriptedOp(t,
		domain.Failure("SSL: UNEXPECTED_EOF_WHILE_READING"),
		domain.Failure("SSL: UNEXPECTED_EOF_WHILE_READING"),
		domain.Success(map[string]any{"settings": map[string]any{"brightness": 70}}),
	), "brightness failed")

	require.True(t, result.OK())
	assert.Equal(t, map[string]any{"settings": map[string]any{"brightness": 70}}, result.Payload)
	assert.Equal(t, 3, created)
	assert.Equal(t, []time.Duration{500 * time.Millisecond, 1000 * time.Millisecond}, clock.all())
	assert.Equal(t, []int{2, 3}, retries)
	assert.Empty(t, notifier.all(), "success emits no notifications")
}

func TestExecutePermanentFailureFailsFast(t *testing.T) {
	t.Parallel()

	var created int
	notifier := &recordingNotifier{}
	clock := &recordingClock{}
	var retries []int

	exec := newTestExecutor(&created, notifier, clock, ExecutorOptions{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		Title:       "TV Brightness",
		OnRetry:     func(next int) { retries = append(retries, next) },
	})

	result := exec.Execute(context.Background(), scriptedOp(t,
		domain.Failure("Invalid auth"),
	), "brightness failed")

	require.False(t, result.OK())
	assert.Equal(t, "Invalid auth", result.Err)
	assert.Equal(t, 1, created)
	assert.Empty(t, clock.all(), "permanent failure must not sleep")
	assert.Empty(t, retries)

	notes := notifier.all()
	require.Len(t, notes, 1)
	assert.Equal(t, ports.UrgencyCritical, notes[0].Urgency)
	assert.Contains(t, notes[0].Message, "Invalid auth")
}

func TestExecuteExhaustsTransientFailures(t *testing.T) {
	t.Parallel()

	var created int
	notifier := &recordingNotifier{}
	clock := &recordingClock{}

	exec := newTestExecutor(&created, notifier, clock, ExecutorOptions{
		MaxAttempts: 3,
		BaseDelay:   100 * time.Millisecond,
		Title:       "LG TV",
	})

	result := exec.Execute(context.Background(), scriptedOp(t,
		domain.Failure("read: connection reset by peer"),
		domain.Failure("read: connection reset by peer"),
		domain.Failure("timed out waiting for response"),
	), "command failed")

	require.False(t, result.OK())
	assert.Equal(t, "timed out waiting for response", result.Err)
	assert.Equal(t, 3, created)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, clock.all())

	notes := notifier.all()
	require.Len(t, notes, 1, "exactly one final notification")
	assert.Equal(t, ports.UrgencyCritical, notes[0].Urgency)
	assert.Equal(t, "timed out waiting for response", notes[0].Message)
}

func TestExecuteEachRetryNotifiesWhenWatchdogSilent(t *testing.T) {
	t.Parallel()

	var created int
	notifier := &recordingNotifier{}
	clock := &recordingClock{}

	exec := newTestExecutor(&created, notifier, clock, ExecutorOptions{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		Title:       "LG TV",
		OnRetry:     ReconnectNotifier(notifier, "LG TV", 3),
	})

	result := exec.Execute(context.Background(), scriptedOp(t,
		domain.Failure("SSL: UNEXPECTED_MESSAGE"),
		domain.Failure("SSL: UNEXPECTED_MESSAGE"),
		domain.Failure("SSL: UNEXPECTED_MESSAGE"),
	), "command failed")

	require.False(t, result.OK())

	notes := notifier.all()
	require.Len(t, notes, 3)
	assert.Contains(t, notes[0].Message, "Reconnecting to TV... (attempt 2/3)")
	assert.Equal(t, ports.UrgencyLow, notes[0].Urgency)
	assert.Contains(t, notes[1].Message, "Reconnecting to TV... (attempt 3/3)")
	assert.Equal(t, ports.UrgencyCritical, notes[2].Urgency)

	for _, note := range notes {
		assert.NotContains(t, note.Message, "Connecting to TV...")
	}
}

func TestExecuteWatchdogSuppressesRetryNotifications(t *testing.T) {
	t.Parallel()

	var created int
	notifier := &recordingNotifier{}
	clock := &recordingClock{}
	var retries []int

	exec := newTestExecutor(&created, notifier, clock, ExecutorOptions{
		MaxAttempts:   2,
		BaseDelay:     time.Millisecond,
		SlowThreshold: 5 * time.Millisecond,
		Title:         "LG TV",
		OnRetry:       func(next int) { retries = append(retries, next) },
	})

	slowOp := func(context.Context, ports.CommandSession) domain.CommandResult {
		time.Sleep(50 * time.Millisecond)
		return domain.Failure("SSL: UNEXPECTED_EOF_WHILE_READING")
	}

	result := exec.Execute(context.Background(), slowOp, "command failed")
	require.False(t, result.OK())

	assert.Empty(t, retries, "slow-connect signal suppresses retry notifications")

	var slow, critical int
	for _, note := range notifier.all() {
		switch {
		case note.Message == "Connecting to TV...":
			slow++
		case note.Urgency == ports.UrgencyCritical:
			critical++
		}
	}
	assert.Equal(t, 1, slow, "still-connecting fires at most once")
	assert.Equal(t, 1, critical)
}

func TestExecuteNoLateWatchdogFiringAfterSuccess(t *testing.T) {
	t.Parallel()

	var created int
	notifier := &recordingNotifier{}
	clock := &recordingClock{}

	exec := newTestExecutor(&created, notifier, clock, ExecutorOptions{
		MaxAttempts:   3,
		BaseDelay:     time.Millisecond,
		SlowThreshold: 30 * time.Millisecond,
		Title:         "LG TV",
	})

	result := exec.Execute(context.Background(), scriptedOp(t,
		domain.Success(nil),
	), "command failed")
	require.True(t, result.OK())

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, notifier.all(), "watchdog cancelled on success")
}

func TestExecuteUsesFallbackTitleAndDefaults(t *testing.T) {
	t.Parallel()

	var created int
	notifier := &recordingNotifier{}

	exec := NewExecutor(countingFactory(&created), notifier, ExecutorOptions{})
	assert.Equal(t, DefaultMaxAttempts, exec.opts.MaxAttempts)
	assert.Equal(t, DefaultBaseDelay, exec.opts.BaseDelay)
	assert.Equal(t, DefaultSlowThreshold, exec.opts.SlowThreshold)
	assert.Equal(t, "LG TV", exec.opts.Title)
	assert.NotNil(t, exec.opts.Clock)
}

func TestLoadTVNotifiesOnConfigFault(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{}
	provider := failingProvider{err: domain.ErrConfigNotFound}

	_, err := LoadTV(context.Background(), provider, notifier, "LG TV")
	require.ErrorIs(t, err, domain.ErrConfigNotFound)

	notes := notifier.all()
	require.Len(t, notes, 1)
	assert.Equal(t, ports.UrgencyCritical, notes[0].Urgency)
	assert.Contains(t, notes[0].Message, "Config error")
}

type failingProvider struct {
	err error
}

func (p failingProvider) Load(context.Context) (ports.TVConfig, error) {
	return ports.TVConfig{}, p.err
}
