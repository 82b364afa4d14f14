package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		errText string
		want    bool
	}{
		{name: "empty", errText: "", want: false},
		{name: "ssl unexpected eof", errText: "SSL: UNEXPECTED_EOF_WHILE_READING", want: true},
		{name: "ssl unexpected message", errText: "SSL: UNEXPECTED_MESSAGE", want: true},
		{name: "go tls error", errText: "connect: tls: handshake failure", want: true},
		{name: "connection reset", errText: "read: connection reset by peer", want: true},
		{name: "connection refused", errText: "connect: dial tcp: connection refused", want: true},
		{name: "unexpected eof", errText: "read: unexpected EOF", want: true},
		{name: "local wait timeout", errText: "timed out waiting for response", want: true},
		{name: "auth rejection", errText: "Invalid auth", want: false},
		{name: "protocol rejection", errText: "401 insufficient permissions", want: false},
		{name: "malformed command", errText: "invalid uri", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsRetryable(tc.errText))
		})
	}
}
