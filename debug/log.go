package debug

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/signadot/boxed-json/encode"
	"github.com/signadot/boxed-json/ir"
)

var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// SetOutput redirects debug logging to w.
func SetOutput(w io.Writer) {
	logger = newLogger(w)
}

// Logf formats and logs a debug message.  ir.Value arguments are rendered
// as compact JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		x, ok := args[i].(ir.Value)
		if !ok {
			continue
		}
		s, err := encode.String(x, encode.EncodeWire(true))
		if err != nil {
			s = fmt.Sprintf("[raw %T]", x)
		}
		args[i] = s
	}
	logger.Log(context.Background(), slog.LevelDebug, fmt.Sprintf(msg, args...))
}
