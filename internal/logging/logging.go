package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init points the global logger at a console writer on stderr. Debug
// lowers the level from info to debug.
func Init(debug bool) {
	InitWriter(os.Stderr, debug)
}

func InitWriter(w io.Writer, debug bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: w != os.Stderr}
	log.Logger = zerolog.New(out).
		With().
		Timestamp().
		Logger()
}
