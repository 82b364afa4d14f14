package ports

import "context"

type TVConfig struct {
	Name string
	IP   string
	Key  string
}

// ConfigProvider resolves the target TV's address and client key. Failures
// (missing config, ambiguous selection) are never retried by the core.
type ConfigProvider interface {
	Load(ctx context.Context) (TVConfig, error)
}
