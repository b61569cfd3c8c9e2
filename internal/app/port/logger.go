package port

// Logger is what services and handlers log through. args are slog-style key/value pairs,
// e.g. "contract", addr, "token_id", id.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
