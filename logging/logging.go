package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures zerolog for the process.
func Setup(environment, level string) zerolog.Logger {
	return SetupWithWriter(environment, level, os.Stdout)
}

// SetupWithWriter configures the global logger to write to out. Development
// gets human-readable console output at debug level; anything else gets
// JSON lines at info level. A non-empty level overrides both.
func SetupWithWriter(environment, level string, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logLevel := zerolog.InfoLevel
	writer := out
	if environment == "development" {
		logLevel = zerolog.DebugLevel
		writer = zerolog.ConsoleWriter{Out: out, NoColor: true}
	}
	if level != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil {
			logLevel = parsed
		}
	}

	logger := zerolog.New(writer).With().Timestamp().Logger().Level(logLevel)
	log.Logger = logger
	return logger
}
