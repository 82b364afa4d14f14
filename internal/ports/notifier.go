package ports

import (
	"context"
	"time"
)

type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyNormal   Urgency = "normal"
	UrgencyCritical Urgency = "critical"
)

type Notification struct {
	Title   string
	Message string
	Urgency Urgency
	Timeout time.Duration
	Icon    string
}

// Notifier delivers a desktop notification. Implementations are
// fire-and-forget: they never block meaningfully and never return errors
// into the caller's control flow.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}
