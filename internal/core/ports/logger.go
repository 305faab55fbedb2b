package ports

// Logger defines the interface for logging.
//
// Args are alternating key/value pairs, as accepted by log/slog.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(err error, args ...any)
}

// LevelSetter is implemented by loggers whose verbosity can be changed at runtime.
type LevelSetter interface {
	// SetLevel sets the minimum level: debug, info, warn or error.
	SetLevel(level string) error
}
