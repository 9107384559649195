package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// FrameStats holds the measurements of a single frame.
type FrameStats struct {
	Frame      int64
	Particles  int
	Influenced int
	Links      int
	StepMicros float64 // Wall time of advance + draw
}

// WindowStats holds aggregated statistics for a window of frames.
type WindowStats struct {
	WindowStartFrame int64 `csv:"-"`
	WindowEndFrame   int64 `csv:"window_end"`
	Frames           int   `csv:"frames"`

	Particles int `csv:"particles"` // Count at window end

	InfluencedMean float64 `csv:"influenced_mean"`
	InfluencedMax  int     `csv:"influenced_max"`

	LinksMean float64 `csv:"links_mean"`
	LinksStd  float64 `csv:"links_std"`
	LinksMax  int     `csv:"links_max"`

	StepMeanUs float64 `csv:"step_mean_us"`
	StepStdUs  float64 `csv:"step_std_us"`
	StepP95Us  float64 `csv:"step_p95_us"`
	StepMaxUs  float64 `csv:"step_max_us"`
}

// computeWindow aggregates frames into window stats. frames must be non-empty.
func computeWindow(frames []FrameStats) WindowStats {
	n := len(frames)
	influenced := make([]float64, n)
	links := make([]float64, n)
	steps := make([]float64, n)

	ws := WindowStats{
		WindowStartFrame: frames[0].Frame,
		WindowEndFrame:   frames[n-1].Frame,
		Frames:           n,
		Particles:        frames[n-1].Particles,
	}
	for i, f := range frames {
		influenced[i] = float64(f.Influenced)
		links[i] = float64(f.Links)
		steps[i] = f.StepMicros
		ws.InfluencedMax = max(ws.InfluencedMax, f.Influenced)
		ws.LinksMax = max(ws.LinksMax, f.Links)
		ws.StepMaxUs = math.Max(ws.StepMaxUs, f.StepMicros)
	}

	ws.InfluencedMean = stat.Mean(influenced, nil)
	ws.LinksMean, ws.LinksStd = meanStd(links)
	ws.StepMeanUs, ws.StepStdUs = meanStd(steps)

	sort.Float64s(steps)
	ws.StepP95Us = stat.Quantile(0.95, stat.Empirical, steps, nil)
	return ws
}

// meanStd returns the mean and sample standard deviation, with std 0 for a single value.
func meanStd(values []float64) (mean, std float64) {
	if len(values) < 2 {
		return stat.Mean(values, nil), 0
	}
	return stat.MeanStdDev(values, nil)
}

// LogStats outputs the window stats via slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndFrame,
		"frames", s.Frames,
		"particles", s.Particles,
		"influenced_mean", round2(s.InfluencedMean),
		"links_mean", round2(s.LinksMean),
		"links_max", s.LinksMax,
		"step_mean_us", round2(s.StepMeanUs),
		"step_p95_us", round2(s.StepP95Us),
	)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
