// Package perf records coarse frame timings behind the MARQUEE_PROFILE
// environment variable. When disabled every call is a no-op.
package perf

import (
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/andyrewlee/marquee/internal/logging"
)

const sampleWindow = 256

type stat struct {
	count   int64
	total   time.Duration
	min     time.Duration
	max     time.Duration
	samples []time.Duration
	idx     int
	full    bool
}

var (
	enabled bool

	mu    sync.Mutex
	stats = map[string]*stat{}
)

func init() {
	raw := strings.TrimSpace(os.Getenv("MARQUEE_PROFILE"))
	switch strings.ToLower(raw) {
	case "", "0", "false", "no":
		enabled = false
	default:
		enabled = true
	}
}

// Enabled reports whether profiling is enabled.
func Enabled() bool {
	return enabled
}

// Time returns a function that records elapsed time when invoked.
func Time(name string) func() {
	if !enabled {
		return func() {}
	}
	start := time.Now()
	return func() {
		Record(name, time.Since(start))
	}
}

// Record captures a duration sample for the given name.
func Record(name string, d time.Duration) {
	if !enabled {
		return
	}
	mu.Lock()
	defer mu.Unlock()

	s, ok := stats[name]
	if !ok {
		s = &stat{samples: make([]time.Duration, sampleWindow)}
		stats[name] = s
	}
	s.count++
	s.total += d
	if s.count == 1 || d < s.min {
		s.min = d
	}
	if d > s.max {
		s.max = d
	}
	s.samples[s.idx] = d
	s.idx++
	if s.idx >= len(s.samples) {
		s.idx = 0
		s.full = true
	}
}

// Flush logs a summary of collected stats and resets them.
func Flush(reason string) {
	if !enabled {
		return
	}
	mu.Lock()
	snapshot := stats
	stats = map[string]*stat{}
	mu.Unlock()

	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)

	prefix := "PERF"
	if strings.TrimSpace(reason) != "" {
		prefix = "PERF " + reason
	}
	for _, name := range names {
		s := snapshot[name]
		if s.count == 0 {
			continue
		}
		avg := time.Duration(int64(s.total) / s.count)
		logging.Info("%s %s count=%d avg=%s p95=%s min=%s max=%s",
			prefix, name, s.count, avg, p95(s), s.min, s.max)
	}
}

func p95(s *stat) time.Duration {
	n := s.idx
	if s.full {
		n = len(s.samples)
	}
	if n == 0 {
		return 0
	}
	window := make([]time.Duration, n)
	copy(window, s.samples[:n])
	sort.Slice(window, func(i, j int) bool { return window[i] < window[j] })
	pos := n*95/100 - 1
	if pos < 0 {
		pos = 0
	}
	return window[pos]
}
