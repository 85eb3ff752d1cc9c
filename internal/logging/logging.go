// Package logging builds the loggers used across the server and CLI. All
// output goes to stderr: stdout belongs to the MCP transport and must stay
// clean.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a component-tagged logger. Level is info unless ANOTES_DEBUG
// is set in the environment.
func New(component string) zerolog.Logger {
	level := zerolog.InfoLevel
	if os.Getenv("ANOTES_DEBUG") != "" {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(w).Level(level).With().Timestamp().Str("component", component).Logger()
}
