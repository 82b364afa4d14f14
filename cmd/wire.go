package cmd

import (
	"context"
	"fmt"
	"os"

	cachestore "github.com/bnema/lgctl/internal/adapters/cache"
	configadapter "github.com/bnema/lgctl/internal/adapters/config"
	"github.com/bnema/lgctl/internal/adapters/notify"
	tvadapter "github.com/bnema/lgctl/internal/adapters/tv"
	"github.com/bnema/lgctl/internal/application"
	"github.com/bnema/lgctl/internal/ports"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type app struct {
	provider ports.ConfigProvider
	notifier ports.Notifier
	cache    ports.SettingsCache
}

func wireApp() (*app, error) {
	configDir, err := configadapter.DefaultDir()
	if err != nil {
		return nil, fmt.Errorf("wire config provider: %w", err)
	}

	cacheDir, err := cachestore.DefaultDir()
	if err != nil {
		return nil, fmt.Errorf("wire settings cache: %w", err)
	}

	return &app{
		provider: configadapter.NewProvider(configDir, os.Getenv("LGTV_NAME")),
		notifier: notify.NewSink(),
		cache:    cachestore.NewStore(cacheDir),
	}, nil
}

// serviceFor builds the retrying command service for one top-level
// operation against an already-resolved TV.
func (a *app) serviceFor(tv ports.TVConfig, title string) *application.Service {
	sessions := tvadapter.Factory(tvadapter.SessionConfig{
		Address: tv.IP,
		Key:     tv.Key,
	})

	executor := application.NewExecutor(sessions, a.notifier, application.ExecutorOptions{
		Title:   title,
		OnRetry: application.ReconnectNotifier(a.notifier, title, application.DefaultMaxAttempts),
	})

	return application.NewService(executor, a.cache)
}

// run resolves the TV, wires the service for one command, and executes fn.
// Config faults surface immediately, before any connection attempt.
func (a *app) run(cmd *cobra.Command, title, label string, fn func(ctx context.Context, svc *application.Service) error) error {
	tv, err := application.LoadTV(cmd.Context(), a.provider, a.notifier, title)
	if err != nil {
		return err
	}

	svc := a.serviceFor(tv, title)
	return a.spin(cmd, label, func(ctx context.Context) error {
		return fn(ctx, svc)
	})
}

// spin runs fn, showing a spinner on interactive terminals while the TV
// round trip is in flight.
func (a *app) spin(cmd *cobra.Command, label string, fn func(ctx context.Context) error) error {
	if file, ok := cmd.OutOrStdout().(*os.File); ok && isatty.IsTerminal(file.Fd()) {
		return runConnectSpinner(cmd.Context(), cmd.ErrOrStderr(), label, fn)
	}

	return fn(cmd.Context())
}
