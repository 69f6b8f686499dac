// marquee-harness drives scripted gestures through the interaction engine
// headlessly and reports frames-to-settle plus render timings.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/andyrewlee/marquee/internal/config"
	"github.com/andyrewlee/marquee/internal/deck"
	"github.com/andyrewlee/marquee/internal/keymap"
	"github.com/andyrewlee/marquee/internal/ui/carousel"
)

type stats struct {
	avg time.Duration
	min time.Duration
	max time.Duration
	p50 time.Duration
	p95 time.Duration
	p99 time.Duration
}

func main() {
	gesture := flag.String("gesture", "fling", "gesture to script: fling, wheel, or jump")
	slides := flag.Int("slides", 8, "number of slides in the synthetic deck")
	width := flag.Int("width", 160, "screen width in columns")
	height := flag.Int("height", 48, "screen height in rows")
	repeat := flag.Int("repeat", 50, "number of gestures to run")
	velocity := flag.Float64("velocity", 40, "release velocity for fling, delta for wheel")
	flag.Parse()

	d := syntheticDeck(*slides)
	cfg, err := config.DefaultConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "harness init failed: %v\n", err)
		os.Exit(1)
	}

	m := carousel.New(d, cfg.Carousel, keymap.New(config.KeyMapConfig{}))
	m.SetSize(*width, *height)

	eng := m.Engine()
	renders := make([]time.Duration, 0, *repeat*64)
	settleFrames := make([]int, 0, *repeat)
	startAll := time.Now()

	for i := 0; i < *repeat; i++ {
		now := time.Now()
		switch *gesture {
		case "fling":
			x := float64(*width / 2)
			eng.DragStart(x, now)
			eng.DragMove(x-*velocity, now.Add(16*time.Millisecond))
			eng.DragEnd(now.Add(17 * time.Millisecond))
		case "wheel":
			eng.Wheel(*velocity, now)
		case "jump":
			eng.ScrollTo(i%*slides, false)
		default:
			fmt.Fprintf(os.Stderr, "unknown gesture %q\n", *gesture)
			os.Exit(1)
		}

		frames := 0
		for {
			start := time.Now()
			_ = m.View()
			renders = append(renders, time.Since(start))
			if !eng.StepFrame() {
				break
			}
			frames++
		}
		settleFrames = append(settleFrames, frames)
	}

	total := time.Since(startAll)
	s := summarize(renders)
	fmt.Printf("gesture=%s slides=%d size=%dx%d repeat=%d velocity=%.1f\n",
		*gesture, *slides, *width, *height, *repeat, *velocity)
	fmt.Printf("total=%s renders=%d avg=%s p50=%s p95=%s p99=%s min=%s max=%s\n",
		total, len(renders), s.avg, s.p50, s.p95, s.p99, s.min, s.max)
	fmt.Printf("settle_frames avg=%.1f max=%d final_index=%d\n",
		avgInt(settleFrames), maxInt(settleFrames), eng.CurrentIndex())
}

func syntheticDeck(n int) *deck.Deck {
	d := &deck.Deck{Title: "harness"}
	for i := 0; i < n; i++ {
		d.Slides = append(d.Slides, deck.Slide{
			Title: fmt.Sprintf("Slide %d", i+1),
			Body:  "Synthetic slide body used for render timing.",
			Badge: fmt.Sprintf("%d", i+1),
		})
	}
	return d
}

func summarize(durations []time.Duration) stats {
	if len(durations) == 0 {
		return stats{}
	}
	sorted := make([]time.Duration, len(durations))
	copy(sorted, durations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	return stats{
		avg: total / time.Duration(len(sorted)),
		min: sorted[0],
		max: sorted[len(sorted)-1],
		p50: percentile(sorted, 50),
		p95: percentile(sorted, 95),
		p99: percentile(sorted, 99),
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := (len(sorted) - 1) * p / 100
	return sorted[idx]
}

func avgInt(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0
	for _, v := range values {
		total += v
	}
	return float64(total) / float64(len(values))
}

func maxInt(values []int) int {
	out := 0
	for _, v := range values {
		if v > out {
			out = v
		}
	}
	return out
}
