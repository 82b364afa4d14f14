package domain

// Command is a single ssap request sent to the TV. Commands are built by
// helpers in this package and passed through the core opaquely.
type Command struct {
	Type    string         `json:"type"`
	ID      string         `json:"id"`
	URI     string         `json:"uri"`
	Payload map[string]any `json:"payload,omitempty"`
}

// CommandResult is the terminal outcome of one command. Exactly one of
// Payload and Err is populated: Err == "" means success.
type CommandResult struct {
	Payload map[string]any
	Err     string
}

func Success(payload map[string]any) CommandResult {
	if payload == nil {
		payload = map[string]any{}
	}
	return CommandResult{Payload: payload}
}

func Failure(text string) CommandResult {
	if text == "" {
		text = "unknown error"
	}
	return CommandResult{Err: text}
}

func (r CommandResult) OK() bool {
	return r.Err == ""
}
