package domain

// ssap request builders. URIs and request ids follow the conventions the TV
// expects; every builder returns a ready-to-send Command.

const (
	URIGetSystemSettings = "ssap://settings/getSystemSettings"
	URISetSystemSettings = "ssap://settings/setSystemSettings"
	URIGetVolume         = "ssap://audio/getVolume"
	URISetVolume         = "ssap://audio/setVolume"
	URIVolumeUp          = "ssap://audio/volumeUp"
	URIVolumeDown        = "ssap://audio/volumeDown"
	URITurnOff           = "ssap://system/turnOff"
)

// CategoryPicture holds brightness and picture mode settings.
const CategoryPicture = "picture"

func NewRequest(id, uri string, payload map[string]any) Command {
	return Command{
		Type:    "request",
		ID:      id,
		URI:     uri,
		Payload: payload,
	}
}

func NewGetSystemSettings(category string, keys ...string) Command {
	return NewRequest("get_1", URIGetSystemSettings, map[string]any{
		"category": category,
		"keys":     keys,
	})
}

func NewSetSystemSettings(category string, settings map[string]any) Command {
	return NewRequest("set_1", URISetSystemSettings, map[string]any{
		"category": category,
		"settings": settings,
	})
}

func NewGetVolume() Command {
	return NewRequest("get_1", URIGetVolume, nil)
}

func NewSetVolume(level int) Command {
	return NewRequest("set_1", URISetVolume, map[string]any{"volume": level})
}

func NewVolumeUp() Command {
	return NewRequest("set_1", URIVolumeUp, nil)
}

func NewVolumeDown() Command {
	return NewRequest("set_1", URIVolumeDown, nil)
}

func NewTurnOff() Command {
	return NewRequest("set_1", URITurnOff, nil)
}
