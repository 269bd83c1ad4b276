package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Lightweight per-frame CPU profiler for the render loop.

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
	frameCount  int
)

// Track returns a stop function that records the elapsed time under the
// given name. Usage: defer profiling.Track("render.Draw")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// EndFrame advances the frame counter; averages in Summary are per frame.
func EndFrame() {
	mu.Lock()
	frameCount++
	mu.Unlock()
}

// Reset clears accumulated totals and the frame counter. Call after logging
// a summary.
func Reset() {
	mu.Lock()
	for k := range frameTotals {
		delete(frameTotals, k)
	}
	frameCount = 0
	mu.Unlock()
}

// Summary formats the tracked sections as per-frame averages, slowest first.
// Example: "render.Draw:0.42ms, viewer.Update:0.03ms (120 frames)"
func Summary() string {
	mu.Lock()
	frames := frameCount
	totals := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		totals[k] = v
	}
	mu.Unlock()

	if frames == 0 {
		return "no frames"
	}

	type section struct {
		name string
		avg  time.Duration
	}
	list := make([]section, 0, len(totals))
	for name, total := range totals {
		list = append(list, section{name: name, avg: total / time.Duration(frames)})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].avg > list[j].avg })

	parts := make([]string, 0, len(list))
	for _, s := range list {
		ms := float64(s.avg.Microseconds()) / 1000.0
		parts = append(parts, fmt.Sprintf("%s:%.2fms", s.name, ms))
	}
	return fmt.Sprintf("%s (%d frames)", strings.Join(parts, ", "), frames)
}
