package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var log = zerolog.New(os.Stderr).Level(zerolog.InfoLevel).With().Timestamp().Logger()

// Init configures the process logger. development gets a human readable
// console at debug level; anything else gets JSON at info level. LOG_LEVEL
// overrides the level in both cases.
func Init(env string) {
	level := zerolog.InfoLevel
	var out io.Writer = os.Stdout

	if env == "development" {
		level = zerolog.DebugLevel
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	if lv := os.Getenv("LOG_LEVEL"); lv != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(lv)); err == nil {
			level = parsed
		}
	}

	setup(out, level, env)
}

func setup(out io.Writer, level zerolog.Level, env string) {
	zerolog.TimeFieldFormat = time.RFC3339
	log = zerolog.New(out).Level(level).With().Timestamp().Str("env", env).Logger()
}

func Debug(msg string, keyvals ...any) {
	write(log.Debug(), msg, keyvals)
}

func Info(msg string, keyvals ...any) {
	write(log.Info(), msg, keyvals)
}

func Warn(msg string, keyvals ...any) {
	write(log.Warn(), msg, keyvals)
}

func Error(msg string, keyvals ...any) {
	write(log.Error(), msg, keyvals)
}

// Fatal logs and exits the process.
func Fatal(msg string, keyvals ...any) {
	write(log.Fatal(), msg, keyvals)
}

// write attaches alternating key/value pairs. A non-string key or a dangling
// value is kept under "extra".
func write(e *zerolog.Event, msg string, keyvals []any) {
	if e == nil {
		return
	}

	for i := 0; i < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok || i+1 >= len(keyvals) {
			e = e.Interface("extra", keyvals[i:])
			break
		}

		switch v := keyvals[i+1].(type) {
		case error:
			e = e.AnErr(key, v)
		case string:
			e = e.Str(key, v)
		default:
			e = e.Interface(key, v)
		}
	}
	e.Msg(msg)
}
