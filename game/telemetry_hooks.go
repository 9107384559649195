package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/driftfield/systems"
	"github.com/pthm-cable/driftfield/telemetry"
)

// recordFrame feeds one frame into the collector and emits completed windows.
func (g *Game) recordFrame(res systems.FrameResult, elapsed time.Duration) {
	ws, ok := g.collector.Record(telemetry.FrameStats{
		Particles:  res.Particles,
		Influenced: res.Influenced,
		Links:      res.Links,
		StepMicros: float64(elapsed.Nanoseconds()) / 1e3,
	})
	if ok {
		g.emitStats(ws)
	}
}

func (g *Game) emitStats(ws telemetry.WindowStats) {
	if g.opts.LogStats {
		ws.LogStats()
	}
	if err := g.output.WriteStats(ws); err != nil {
		slog.Error("failed to write stats", "error", err)
	}
}
