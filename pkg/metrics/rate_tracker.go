package metrics

import (
	"sync"
	"time"
)

// RateTracker keeps cumulative count samples inside a sliding window and
// derives a per-second rate from the oldest and newest ones.
type RateTracker struct {
	mu         sync.RWMutex
	samples    []Sample
	windowSize time.Duration
	maxSamples int
	now        func() time.Time
}

type Sample struct {
	Count     int64
	Timestamp time.Time
}

func NewRateTracker(windowSize time.Duration, maxSamples int) *RateTracker {
	if maxSamples < 2 {
		maxSamples = 2
	}
	return &RateTracker{
		samples:    make([]Sample, 0, maxSamples),
		windowSize: windowSize,
		maxSamples: maxSamples,
		now:        time.Now,
	}
}

// Record appends the current cumulative count.
func (rt *RateTracker) Record(totalCount int64) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	now := rt.now()
	rt.samples = append(rt.samples, Sample{Count: totalCount, Timestamp: now})

	// Drop samples that fell out of the window
	cutoff := now.Add(-rt.windowSize)
	first := 0
	for first < len(rt.samples)-1 && !rt.samples[first].Timestamp.After(cutoff) {
		first++
	}

	if excess := len(rt.samples) - first - rt.maxSamples; excess > 0 {
		first += excess
	}
	if first > 0 {
		n := copy(rt.samples, rt.samples[first:])
		rt.samples = rt.samples[:n]
	}
}

// Rate computes the rate of change per second based on the recorded samples.
func (rt *RateTracker) Rate() float64 {
	rt.mu.RLock()
	defer rt.mu.RUnlock()

	if len(rt.samples) < 2 {
		return 0.0
	}

	oldest := rt.samples[0]
	newest := rt.samples[len(rt.samples)-1]

	elapsed := newest.Timestamp.Sub(oldest.Timestamp).Seconds()
	if elapsed <= 0 {
		return 0.0
	}
	return float64(newest.Count-oldest.Count) / elapsed
}

func (rt *RateTracker) GetSamples() []Sample {
	rt.mu.RLock()
	defer rt.mu.RUnlock()

	samplesCopy := make([]Sample, len(rt.samples))
	copy(samplesCopy, rt.samples)
	return samplesCopy
}

func (rt *RateTracker) Clear() {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	rt.samples = rt.samples[:0]
}
