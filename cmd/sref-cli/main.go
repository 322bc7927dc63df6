package main

import (
	"context"
	"errors"
	"io/fs"

	"sportsref/cmd/sref-cli/commands"
	"sportsref/lib/serviceutil"
	"sportsref/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	err := telemetry.SetupFromEnv(ctx, "sref-cli")
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	if err == nil {
		defer telemetry.Shutdown(context.Background())
		telemetry.InstrumentPerfStats(ctx)
	}

	commands.ExecuteContext(ctx)
}
