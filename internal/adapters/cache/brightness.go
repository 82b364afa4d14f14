package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bnema/lgctl/internal/ports"
)

const (
	cacheFileName   = "brightness.toml"
	cacheFileMode   = 0o600
	cacheDirMode    = 0o700
	tempFilePattern = ".brightness-*.toml.tmp"
)

// Store persists the last known brightness at <dir>/brightness.toml.
// Writes go through a temp file and rename so a crashed write never leaves
// a torn cache behind.
type Store struct {
	path string
}

var _ ports.SettingsCache = (*Store)(nil)

func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, cacheFileName)}
}

// DefaultDir returns ~/.cache/lgtv.
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, ".cache", "lgtv"), nil
}

type fileSchema struct {
	Brightness *brightnessSchema `toml:"brightness"`
}

type brightnessSchema struct {
	Value      int    `toml:"value"`
	CapturedAt string `toml:"captured_at"`
}

func (s *Store) GetBrightness(ctx context.Context) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("read brightness cache: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return 0, false, fmt.Errorf("decode brightness cache: %w", err)
	}
	if file.Brightness == nil {
		return 0, false, nil
	}

	return file.Brightness.Value, true, nil
}

func (s *Store) PutBrightness(ctx context.Context, value int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file := fileSchema{
		Brightness: &brightnessSchema{
			Value:      value,
			CapturedAt: time.Now().Format(time.RFC3339),
		},
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode brightness cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), cacheDirMode); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp cache file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp cache file: %w", err)
	}

	if err := tempFile.Chmod(cacheFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp cache file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp cache file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace cache file: %w", err)
	}

	cleanup = false
	return nil
}

func (s *Store) Invalidate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove brightness cache: %w", err)
	}

	return nil
}
