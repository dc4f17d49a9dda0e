package cliconfig

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(zerolog.InfoLevel)
}

// Logger returns the CLI logger.
func Logger() zerolog.Logger {
	return logger
}

// SetVerbose lowers the CLI logger level to debug.
func SetVerbose() {
	logger = logger.Level(zerolog.DebugLevel)
}
