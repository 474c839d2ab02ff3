package cmd

import (
	"context"
	"log/slog"
	"os"
)

type cmdLogger struct{}

var cmdLoggerKey cmdLogger

func loggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(cmdLoggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return defaultLogger
}

// commandLogger is the context logger tagged with the running subcommand.
func commandLogger(ctx context.Context, name string) *slog.Logger {
	return loggerFromCtx(ctx).With("command", name)
}

func ctxWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, cmdLoggerKey, logger)
}

// stdout carries answers only, so log lines stay out of pipelines.
var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))
