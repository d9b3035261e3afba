package raycast3d

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Log is the package logger; SetupLogging replaces it.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
	With().Timestamp().Logger().Level(zerolog.InfoLevel)

// SetupLogging points Log at w and sets the level from Debug.
func SetupLogging(w io.Writer, debug bool) {
	Debug = debug
	lvl := zerolog.InfoLevel
	if debug {
		lvl = zerolog.DebugLevel
	}
	Log = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger().Level(lvl)
}

func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	Log.Debug().Msgf(format, args...)
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		Log.Debug().Msgf(format, args...)
	})
}
