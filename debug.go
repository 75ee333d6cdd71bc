package raybox

import (
	"fmt"
	"io"
	"os"
	"time"
)

// frameStats holds per-frame timing and trace metrics.
// Only populated when the scene is in debug mode.
type frameStats struct {
	traceTime time.Duration
	drawTime  time.Duration
	sources   int
	obstacles int
	trace     TraceStats
}

// debugOut is where debug stats are written. Tests swap it out.
var debugOut io.Writer = os.Stderr

// debugLog prints timing and trace stats to stderr.
func (g *Game) debugLog(stats frameStats) {
	if !g.Scene.debug {
		return
	}
	writeFrameStats(debugOut, stats)
}

func writeFrameStats(w io.Writer, stats frameStats) {
	total := stats.traceTime + stats.drawTime
	_, _ = fmt.Fprintf(w,
		"[raybox] trace: %v | draw: %v | total: %v\n",
		stats.traceTime, stats.drawTime, total)
	_, _ = fmt.Fprintf(w,
		"[raybox] sources: %d | obstacles: %d | rays: %d | segments: %d | tests: %d\n",
		stats.sources, stats.obstacles, stats.trace.Rays, stats.trace.Segments, stats.trace.ObstacleTests)
}
