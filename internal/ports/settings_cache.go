package ports

import "context"

// SettingsCache persists the last known brightness value. Picture-mode
// changes invalidate it because each picture mode carries its own
// brightness on LG TVs.
type SettingsCache interface {
	GetBrightness(ctx context.Context) (value int, ok bool, err error)
	PutBrightness(ctx context.Context, value int) error
	Invalidate(ctx context.Context) error
}
