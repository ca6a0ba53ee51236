package main

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/keilerkonzept/worldcup-dashboard/internal/worldcup"
)

type durationRing struct {
	buf   []time.Duration
	idx   int
	count int
}

func newDurationRing(n int) *durationRing {
	if n < 1 {
		n = 1
	}
	return &durationRing{buf: make([]time.Duration, n)}
}

func (r *durationRing) add(d time.Duration) {
	r.buf[r.idx] = d
	r.idx++
	if r.idx >= len(r.buf) {
		r.idx = 0
	}
	if r.count < len(r.buf) {
		r.count++
	}
}

type durationStats struct {
	last time.Duration
	max  time.Duration
	avg  time.Duration
	n    int
}

func (r *durationRing) snapshot() durationStats {
	if r.count == 0 {
		return durationStats{}
	}
	var sum, maxD time.Duration
	for i := 0; i < r.count; i++ {
		d := r.buf[i]
		sum += d
		maxD = max(maxD, d)
	}

	lastIdx := r.idx - 1
	if lastIdx < 0 {
		lastIdx = len(r.buf) - 1
	}
	return durationStats{
		last: r.buf[lastIdx],
		max:  maxD,
		avg:  sum / time.Duration(r.count),
		n:    r.count,
	}
}

// deriveMetrics records how often and how fast each dashboard output is
// recomputed. It implements worldcup.Observer.
type deriveMetrics struct {
	enabled atomic.Bool

	events      atomic.Uint64
	derivations atomic.Uint64

	mu    sync.Mutex
	rings map[worldcup.Output]*durationRing
}

func newDeriveMetrics(window int) *deriveMetrics {
	return &deriveMetrics{
		rings: map[worldcup.Output]*durationRing{
			worldcup.OutputMap:     newDurationRing(window),
			worldcup.OutputYear:    newDurationRing(window),
			worldcup.OutputCountry: newDurationRing(window),
		},
	}
}

func (m *deriveMetrics) setEnabled(v bool) { m.enabled.Store(v) }
func (m *deriveMetrics) isEnabled() bool   { return m.enabled.Load() }

func (m *deriveMetrics) observeEvent() {
	if !m.isEnabled() {
		return
	}
	m.events.Add(1)
}

func (m *deriveMetrics) ObserveDerive(out worldcup.Output, d time.Duration) {
	if !m.isEnabled() {
		return
	}
	m.derivations.Add(1)
	m.mu.Lock()
	if r, ok := m.rings[out]; ok {
		r.add(d)
	}
	m.mu.Unlock()
}

type metricsSnapshot struct {
	events      uint64
	derivations uint64
	mapLatency  durationStats
	yearLatency durationStats
	ctyLatency  durationStats
}

func (m *deriveMetrics) snapshot() metricsSnapshot {
	if !m.isEnabled() {
		return metricsSnapshot{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return metricsSnapshot{
		events:      m.events.Load(),
		derivations: m.derivations.Load(),
		mapLatency:  m.rings[worldcup.OutputMap].snapshot(),
		yearLatency: m.rings[worldcup.OutputYear].snapshot(),
		ctyLatency:  m.rings[worldcup.OutputCountry].snapshot(),
	}
}
