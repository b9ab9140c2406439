package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs a message shown only in verbose mode.
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	// Error logs err together with its cause chain and metadata.
	Error(err error)
}
