package profiler

import (
	"runtime"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// Stats is one reporting interval worth of frame and memory figures.
type Stats struct {
	// FPS is frames per second over the interval.
	FPS float64
	// ViewChanges is how many of those frames moved the camera.
	ViewChanges int
	// HeapMB is live heap memory.
	HeapMB float64
	// AllocRateMB is heap churn in MB per second.
	AllocRateMB float64
	// GCCount is the total number of collections so far.
	GCCount uint32
	// LastPauseUs and MaxPauseUs are the latest and the worst GC pause during the interval.
	LastPauseUs uint64
	MaxPauseUs  uint64
	// SysMB is memory obtained from the OS.
	SysMB float64
}

// Profiler tracks frame rate, camera activity and memory statistics.
// Not safe for concurrent use; call Tick from the render loop.
type Profiler struct {
	frameCount     int
	viewChanges    int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Stats

	now    func() time.Time
	logger common.Logger
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often stats are produced. Defaults to one second.
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// WithLogger reports every interval at info level. Without it Tick stays silent.
func WithLogger(logger common.Logger) ProfilerOption {
	return func(p *Profiler) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithClock replaces time.Now, for deterministic frame timing.
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		p.now = now
	}
}

// NewProfiler creates a Profiler whose first interval starts now.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
		logger:         common.NewNopLogger(),
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick records one frame. viewChanged is what the controls' Update returned for it.
//
// Parameters:
//   - viewChanged: whether the camera moved or zoomed this frame
//
// Returns:
//   - bool: true if an interval elapsed and Stats was refreshed
func (p *Profiler) Tick(viewChanged bool) bool {
	p.frameCount++
	if viewChanged {
		p.viewChanges++
	}

	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	seconds := elapsed.Seconds()

	stats := Stats{
		FPS:         float64(p.frameCount) / seconds,
		ViewChanges: p.viewChanges,
		HeapMB:      float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB: float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / seconds,
		GCCount:     p.memStats.NumGC,
		SysMB:       float64(p.memStats.Sys) / 1024 / 1024,
	}

	// PauseNs is a circular buffer of the last 256 pauses.
	if gcCount := p.memStats.NumGC; gcCount > 0 {
		stats.LastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000
		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			stats.MaxPauseUs = max(stats.MaxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	p.logger.Infof("FPS: %.2f | view changes: %d | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		stats.FPS, stats.ViewChanges, stats.HeapMB, stats.AllocRateMB, stats.GCCount, stats.LastPauseUs, stats.MaxPauseUs, stats.SysMB)

	p.last = stats
	p.frameCount = 0
	p.viewChanges = 0
	p.lastTime = currentTime
	p.lastGCCount = p.memStats.NumGC
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Stats returns the figures from the last completed interval, zero before the first.
func (p *Profiler) Stats() Stats {
	return p.last
}
