package logging

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

type Options struct {
	Level string
	JSON  bool
	// Output defaults to stderr.
	Output io.Writer
}

var def atomic.Value

func init() {
	Configure(Options{})
}

func Configure(opts Options) {
	w := opts.Output
	if w == nil {
		w = os.Stderr
	}
	lvl := parseLevel(opts.Level)
	var h slog.Handler
	if opts.JSON {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	} else {
		h = tint.NewHandler(w, &tint.Options{
			Level:      lvl,
			TimeFormat: time.RFC3339,
			NoColor:    !isTerminal(w),
		})
	}
	def.Store(slog.New(h))
}

func parseLevel(s string) slog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func L() *slog.Logger {
	l, _ := def.Load().(*slog.Logger)
	return l
}

// FromEnv reads FLUX_LOG_LEVEL and FLUX_LOG_JSON.
func FromEnv() Options {
	json := false
	if b, err := strconv.ParseBool(strings.TrimSpace(os.Getenv("FLUX_LOG_JSON"))); err == nil {
		json = b
	}
	return Options{Level: os.Getenv("FLUX_LOG_LEVEL"), JSON: json}
}

func InitFromEnv() {
	Configure(FromEnv())
}
