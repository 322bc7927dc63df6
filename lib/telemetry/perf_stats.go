package telemetry

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"go.opentelemetry.io/otel"
)

var meter = otel.Meter("go.perf_stats")

// InstrumentPerfStats records process health gauges until ctx is
// cancelled. it samples immediately and then on a short interval,
// scraper runs usually only live for a few seconds.
func InstrumentPerfStats(ctx context.Context) {
	cpuGauge, err := meter.Float64Gauge("cpu_usage")
	if err != nil {
		slog.Warn("failed to register perf gauges", "err", err)
		return
	}
	heapGauge, _ := meter.Int64Gauge("allocated_mb")
	liveObjectsGauge, _ := meter.Int64Gauge("live_objects")
	goroutineGauge, _ := meter.Int64Gauge("goroutine_count")

	// prime the counters so later non-blocking reads have a baseline
	cpu.Percent(0, false)

	sample := func() {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		usage, err := cpu.Percent(0, false)
		if err != nil {
			slog.Warn("failed to read cpu usage", "err", err)
		} else if len(usage) > 0 {
			cpuGauge.Record(ctx, usage[0])
		}

		heapGauge.Record(ctx, int64(memStats.Alloc/1_000_000))
		liveObjectsGauge.Record(ctx, int64(memStats.Mallocs)-int64(memStats.Frees))
		goroutineGauge.Record(ctx, int64(runtime.NumGoroutine()))
	}

	go func() {
		sample()

		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sample()
			case <-ctx.Done():
				return
			}
		}
	}()
}
