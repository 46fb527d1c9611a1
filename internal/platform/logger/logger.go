package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New arma el logger de la aplicación.
// format "json" escribe una línea JSON por evento (producción);
// cualquier otro valor usa ConsoleWriter legible para dev.
// Un level irreconocible cae en info.
func New(level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var lg zerolog.Logger
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		lg = zerolog.New(os.Stdout)
	} else {
		lg = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	return lg.Level(lvl).With().Timestamp().Logger()
}
