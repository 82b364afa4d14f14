package application

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bnema/lgctl/internal/domain"
	"github.com/bnema/lgctl/internal/ports"
)

// Runner retries an operation across fresh sessions. Satisfied by *Executor.
type Runner interface {
	Execute(ctx context.Context, op Operation, fallbackMsg string) domain.CommandResult
}

// Service exposes the TV operations the commands need. Every call goes
// through the runner's retry loop; brightness reads consult the on-disk
// cache first.
type Service struct {
	runner Runner
	cache  ports.SettingsCache
}

func NewService(runner Runner, cache ports.SettingsCache) *Service {
	return &Service{
		runner: runner,
		cache:  cache,
	}
}

// Request sends a single command through the retry loop.
func (s *Service) Request(ctx context.Context, cmd domain.Command, fallbackMsg string) domain.CommandResult {
	return s.runner.Execute(ctx, func(ctx context.Context, session ports.CommandSession) domain.CommandResult {
		return session.Execute(ctx, cmd)
	}, fallbackMsg)
}

func (s *Service) GetSystemSetting(ctx context.Context, category, key string) (any, domain.CommandResult) {
	result := s.Request(ctx, domain.NewGetSystemSettings(category, key), "Failed to read "+key)
	if !result.OK() {
		return nil, result
	}

	settings, _ := result.Payload["settings"].(map[string]any)
	return settings[key], result
}

func (s *Service) SetSystemSettings(ctx context.Context, category string, settings map[string]any) domain.CommandResult {
	return s.Request(ctx, domain.NewSetSystemSettings(category, settings), "Failed to update settings")
}

// Brightness returns the current picture brightness, serving from the cache
// when a value is present.
func (s *Service) Brightness(ctx context.Context) (int, domain.CommandResult) {
	if s.cache != nil {
		if cached, ok, err := s.cache.GetBrightness(ctx); err == nil && ok {
			return cached, domain.Success(map[string]any{"brightness": cached})
		}
	}

	raw, result := s.GetSystemSetting(ctx, domain.CategoryPicture, "brightness")
	if !result.OK() {
		return 0, result
	}

	value, err := settingToInt(raw)
	if err != nil {
		return 0, domain.Failure(fmt.Sprintf("unexpected brightness value: %v", raw))
	}

	if s.cache != nil {
		_ = s.cache.PutBrightness(ctx, value)
	}

	return value, result
}

func (s *Service) SetBrightness(ctx context.Context, value int) domain.CommandResult {
	result := s.SetSystemSettings(ctx, domain.CategoryPicture, map[string]any{"brightness": value})
	if result.OK() && s.cache != nil {
		_ = s.cache.PutBrightness(ctx, value)
	}

	return result
}

// SetPictureMode changes the picture mode and drops the brightness cache:
// each picture mode carries its own brightness setting.
func (s *Service) SetPictureMode(ctx context.Context, mode string) domain.CommandResult {
	result := s.SetSystemSettings(ctx, domain.CategoryPicture, map[string]any{"pictureMode": mode})
	if result.OK() && s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}

	return result
}

func (s *Service) Volume(ctx context.Context) (int, domain.CommandResult) {
	result := s.Request(ctx, domain.NewGetVolume(), "Failed to read volume")
	if !result.OK() {
		return 0, result
	}

	raw, ok := result.Payload["volume"]
	if !ok {
		if status, isMap := result.Payload["volumeStatus"].(map[string]any); isMap {
			raw = status["volume"]
		}
	}

	value, err := settingToInt(raw)
	if err != nil {
		return 0, domain.Failure(fmt.Sprintf("unexpected volume value: %v", raw))
	}

	return value, result
}

func (s *Service) SetVolume(ctx context.Context, level int) domain.CommandResult {
	return s.Request(ctx, domain.NewSetVolume(level), "Failed to set volume")
}

func (s *Service) VolumeUp(ctx context.Context) domain.CommandResult {
	return s.Request(ctx, domain.NewVolumeUp(), "Failed to raise volume")
}

func (s *Service) VolumeDown(ctx context.Context) domain.CommandResult {
	return s.Request(ctx, domain.NewVolumeDown(), "Failed to lower volume")
}

func (s *Service) PowerOff(ctx context.Context) domain.CommandResult {
	return s.Request(ctx, domain.NewTurnOff(), "Failed to turn off TV")
}

type TVStatus struct {
	Brightness  any
	PictureMode any
	Volume      any
}

// Status fetches the settings shown by the status view. Stops at the first
// failed command.
func (s *Service) Status(ctx context.Context) (TVStatus, domain.CommandResult) {
	pictureResult := s.Request(ctx,
		domain.NewGetSystemSettings(domain.CategoryPicture, "brightness", "pictureMode"),
		"Failed to read picture settings")
	if !pictureResult.OK() {
		return TVStatus{}, pictureResult
	}
	settings, _ := pictureResult.Payload["settings"].(map[string]any)

	status := TVStatus{
		Brightness:  settings["brightness"],
		PictureMode: settings["pictureMode"],
	}

	volume, volumeResult := s.Volume(ctx)
	if !volumeResult.OK() {
		return TVStatus{}, volumeResult
	}
	status.Volume = volume

	return status, volumeResult
}

func settingToInt(raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case float64:
		return int(v), nil
	case string:
		return strconv.Atoi(v)
	default:
		return 0, fmt.Errorf("unsupported setting type %T", raw)
	}
}
