package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/bnema/lgctl/internal/domain"
	"github.com/bnema/lgctl/internal/ports"
)

const (
	configName = "config"
	configType = "json"
)

// Names tried when several TVs are configured and no name was given.
var fallbackNames = []string{"MyTV", "default", "LG TV"}

// Provider loads the TV registry from <configDir>/config.json, a map of TV
// name to {ip, key}. Selection order: the preferred name, then a sole
// entry, then the fallback names. Viper lowercases top-level keys, so TV
// names match case-insensitively.
type Provider struct {
	configDir string
	tvName    string
}

var _ ports.ConfigProvider = (*Provider)(nil)

func NewProvider(configDir, tvName string) *Provider {
	return &Provider{
		configDir: configDir,
		tvName:    tvName,
	}
}

// DefaultDir returns ~/.config/lgtv.
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "lgtv"), nil
}

func (p *Provider) Load(ctx context.Context) (ports.TVConfig, error) {
	if err := ctx.Err(); err != nil {
		return ports.TVConfig{}, err
	}

	cfg := viper.New()
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(p.configDir)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if errors.As(err, &configNotFound) {
			return ports.TVConfig{}, fmt.Errorf("%w: no config.json in %s", domain.ErrConfigNotFound, p.configDir)
		}
		return ports.TVConfig{}, fmt.Errorf("read config file: %w", err)
	}

	entries := cfg.AllSettings()
	if len(entries) == 0 {
		return ports.TVConfig{}, fmt.Errorf("%w: config has no tvs", domain.ErrConfigNotFound)
	}

	if p.tvName != "" {
		entry, ok := entries[strings.ToLower(p.tvName)]
		if !ok {
			return ports.TVConfig{}, fmt.Errorf("%w: %q", domain.ErrTVNotFound, p.tvName)
		}
		return parseEntry(p.tvName, entry)
	}

	if len(entries) == 1 {
		for name, entry := range entries {
			return parseEntry(name, entry)
		}
	}

	for _, name := range fallbackNames {
		if entry, ok := entries[strings.ToLower(name)]; ok {
			return parseEntry(name, entry)
		}
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	return ports.TVConfig{}, fmt.Errorf("%w: set LGTV_NAME to one of %s", domain.ErrAmbiguousTV, strings.Join(names, ", "))
}

func parseEntry(name string, raw any) (ports.TVConfig, error) {
	entry, ok := raw.(map[string]any)
	if !ok {
		return ports.TVConfig{}, fmt.Errorf("tv %q: entry is not an object", name)
	}

	ip, _ := entry["ip"].(string)
	if ip == "" {
		return ports.TVConfig{}, fmt.Errorf("tv %q: missing ip", name)
	}

	key, _ := entry["key"].(string)
	if key == "" {
		return ports.TVConfig{}, fmt.Errorf("tv %q: missing key", name)
	}

	return ports.TVConfig{Name: name, IP: ip, Key: key}, nil
}
