package serviceutil

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// SignalContext returns a context that is cancelled the first time the
// process receives SIGINT or SIGTERM.
func SignalContext() context.Context {
	ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	return ctx
}

// Fatal logs an error and exits. meant for CLI entrypoints where the
// error has nowhere further up to go.
func Fatal(message string, err error) {
	slog.Error(message, "err", err)
	os.Exit(1)
}
