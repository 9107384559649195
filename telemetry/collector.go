// Package telemetry aggregates per-frame measurements of the particle field.
package telemetry

// Collector accumulates frame stats and produces WindowStats every windowFrames frames.
type Collector struct {
	windowFrames int
	frames       []FrameStats
	next         int64
}

// NewCollector creates a collector with the given window size in frames.
func NewCollector(windowFrames int) *Collector {
	if windowFrames < 1 {
		windowFrames = 1
	}
	return &Collector{
		windowFrames: windowFrames,
		frames:       make([]FrameStats, 0, windowFrames),
	}
}

// Record adds a frame. The frame number is assigned by the collector.
// When the window fills, the aggregated stats are returned with ok = true
// and a new window begins.
func (c *Collector) Record(f FrameStats) (ws WindowStats, ok bool) {
	f.Frame = c.next
	c.next++
	c.frames = append(c.frames, f)
	if len(c.frames) < c.windowFrames {
		return WindowStats{}, false
	}
	ws = computeWindow(c.frames)
	c.frames = c.frames[:0]
	return ws, true
}

// Flush returns stats for a partially filled window, if any.
func (c *Collector) Flush() (WindowStats, bool) {
	if len(c.frames) == 0 {
		return WindowStats{}, false
	}
	ws := computeWindow(c.frames)
	c.frames = c.frames[:0]
	return ws, true
}

// Frames returns the number of frames recorded so far.
func (c *Collector) Frames() int64 {
	return c.next
}
