package ports

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	// Warn accepts slog-style key/value pairs describing the warning.
	Warn(msg string, args ...any)
	Error(err error)
}
