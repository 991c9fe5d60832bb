package websocket

import "time"

// Reconnect policy shared with the CLI client. Codes 1000 (normal) and
// 1001 (going away) are terminal; any other close code retries with
// exponential backoff until MaxReconnectAttempts is exhausted.
const (
	MaxReconnectAttempts = 3
	MaxReconnectDelay    = 30 * time.Second

	// InitialConnectDelay absorbs rapid connect/teardown churn right
	// after session start.
	InitialConnectDelay = 100 * time.Millisecond
)

// ReconnectDelay returns the backoff before reconnect attempt n
// (0-based): min(2^n * 1s, 30s).
func ReconnectDelay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	delay := time.Duration(1<<uint(attempt)) * time.Second
	if delay > MaxReconnectDelay || delay <= 0 {
		return MaxReconnectDelay
	}
	return delay
}

// TerminalCloseCode reports whether a close code should suppress
// reconnection.
func TerminalCloseCode(code int) bool {
	return code == 1000 || code == 1001
}
