package application

import "strings"

// Markers of transient transport faults. The TV's WebSocket service returns
// SSL-level errors after the PC reboots or the TV sits idle; those resolve on
// retry. Anything that does not match (protocol rejections, auth failures)
// is permanent and retrying it only produces repeated notifications.
var transientMarkers = []string{
	"ssl",
	"tls",
	"connection",
	"eof",
	"timed out",
}

// IsRetryable reports whether an error description denotes a transient
// transport or handshake fault. Classification is by text match on the
// recorded error, the same way the retry decision has always been made.
func IsRetryable(errText string) bool {
	if errText == "" {
		return false
	}

	lowered := strings.ToLower(errText)
	for _, marker := range transientMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}

	return false
}
