package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"
)

var theLog = newLog(slog.LevelInfo)

func newLog(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func setLogLevel(v string) error {
	if v == "" {
		return nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		return fmt.Errorf("%w: log level %q: %w", cli.ErrUsage, v, err)
	}
	theLog = newLog(level)
	return nil
}
