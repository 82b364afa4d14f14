package domain

// SessionState tracks the linear lifecycle of a one-shot TV session.
// Transitions only move forward; Done and Failed are terminal.
type SessionState int

const (
	SessionNew SessionState = iota
	SessionConnecting
	SessionRegistered
	SessionAwaitingResponse
	SessionDone
	SessionFailed
)

func (s SessionState) String() string {
	switch s {
	case SessionNew:
		return "new"
	case SessionConnecting:
		return "connecting"
	case SessionRegistered:
		return "registered"
	case SessionAwaitingResponse:
		return "awaiting-response"
	case SessionDone:
		return "done"
	case SessionFailed:
		return "failed"
	default:
		return "unknown"
	}
}

func (s SessionState) Terminal() bool {
	return s == SessionDone || s == SessionFailed
}
