package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup builds the root logger every component derives its sub-logger from.
//   - level: log level string (trace, debug, info, warn, error, fatal, panic);
//     unknown values fall back to info
//   - format: "json" for production, "pretty" for human-readable dev output
//
// Every event carries a `service` field so dispenser logs stay attributable
// when aggregated alongside the other school-system services.
func Setup(level, format string) zerolog.Logger {
	var writer io.Writer

	if format == "pretty" {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	} else {
		writer = os.Stdout
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(lvl)

	return zerolog.New(writer).
		With().
		Timestamp().
		Caller().
		Str("service", "dispenser-backend").
		Logger()
}
