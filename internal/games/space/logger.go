package space

// Logger is the sink for human-readable simulation events.
// The simulation only writes to it.
type Logger interface {
	Log(msg string)
}

// LoggerFunc adapts a function to the Logger interface.
type LoggerFunc func(msg string)

// Log calls f(msg).
func (f LoggerFunc) Log(msg string) { f(msg) }

// NopLogger discards all events.
type NopLogger struct{}

// Log does nothing.
func (NopLogger) Log(string) {}

// Tee returns a Logger that forwards every event to each of loggers in order.
func Tee(loggers ...Logger) Logger {
	return LoggerFunc(func(msg string) {
		for _, l := range loggers {
			l.Log(msg)
		}
	})
}
