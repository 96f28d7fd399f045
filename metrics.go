package mitsvalidator

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics tracks validation counters using lock-free atomics.
// All methods are safe for concurrent use.
type Metrics struct {
	validationsTotal atomic.Uint64
	validationsValid atomic.Uint64

	// Timing stored as nanoseconds
	validationTimeTotal atomic.Uint64
	validationTimeMin   atomic.Uint64
	validationTimeMax   atomic.Uint64

	errorsTotal   atomic.Uint64
	warningsTotal atomic.Uint64
	infosTotal    atomic.Uint64

	phaseTiming sync.Map // map[string]*phaseMetrics
}

type phaseMetrics struct {
	invocations atomic.Uint64
	totalTime   atomic.Uint64 // nanoseconds
	messages    atomic.Uint64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	// Min starts at max uint64 so the first sample becomes the minimum
	m.validationTimeMin.Store(^uint64(0))
	return m
}

// RecordValidation records a completed validation run.
func (m *Metrics) RecordValidation(duration time.Duration, valid bool) {
	m.validationsTotal.Add(1)
	if valid {
		m.validationsValid.Add(1)
	}

	ns := uint64(duration.Nanoseconds())
	m.validationTimeTotal.Add(ns)

	for {
		old := m.validationTimeMin.Load()
		if ns >= old || m.validationTimeMin.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.validationTimeMax.Load()
		if ns <= old || m.validationTimeMax.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordPhase records one phase execution.
func (m *Metrics) RecordPhase(name string, duration time.Duration, messageCount int) {
	v, _ := m.phaseTiming.LoadOrStore(name, &phaseMetrics{})
	pm := v.(*phaseMetrics)
	pm.invocations.Add(1)
	pm.totalTime.Add(uint64(duration.Nanoseconds()))
	pm.messages.Add(uint64(messageCount))
}

// RecordResult tallies the severity counts of a finished result.
func (m *Metrics) RecordResult(r *Result) {
	if r == nil {
		return
	}
	m.errorsTotal.Add(uint64(len(r.Errors)))
	m.warningsTotal.Add(uint64(len(r.Warnings)))
	m.infosTotal.Add(uint64(len(r.Info)))
}

// Snapshot is a point-in-time copy of the collected metrics.
type Snapshot struct {
	ValidationsTotal uint64           `json:"validationsTotal"`
	ValidationsValid uint64           `json:"validationsValid"`
	AvgDuration      time.Duration    `json:"avgDuration"`
	MinDuration      time.Duration    `json:"minDuration"`
	MaxDuration      time.Duration    `json:"maxDuration"`
	ErrorsTotal      uint64           `json:"errorsTotal"`
	WarningsTotal    uint64           `json:"warningsTotal"`
	InfosTotal       uint64           `json:"infosTotal"`
	Phases           map[string]Phase `json:"phases"`
}

// Phase summarizes one phase's collected metrics.
type Phase struct {
	Invocations uint64        `json:"invocations"`
	AvgDuration time.Duration `json:"avgDuration"`
	Messages    uint64        `json:"messages"`
}

// Snapshot returns a copy of the current metric values.
func (m *Metrics) Snapshot() Snapshot {
	total := m.validationsTotal.Load()

	s := Snapshot{
		ValidationsTotal: total,
		ValidationsValid: m.validationsValid.Load(),
		ErrorsTotal:      m.errorsTotal.Load(),
		WarningsTotal:    m.warningsTotal.Load(),
		InfosTotal:       m.infosTotal.Load(),
		Phases:           make(map[string]Phase),
	}

	if total > 0 {
		s.AvgDuration = time.Duration(m.validationTimeTotal.Load() / total)
		s.MaxDuration = time.Duration(m.validationTimeMax.Load())
		if min := m.validationTimeMin.Load(); min != ^uint64(0) {
			s.MinDuration = time.Duration(min)
		}
	}

	m.phaseTiming.Range(func(key, value any) bool {
		pm := value.(*phaseMetrics)
		inv := pm.invocations.Load()
		p := Phase{
			Invocations: inv,
			Messages:    pm.messages.Load(),
		}
		if inv > 0 {
			p.AvgDuration = time.Duration(pm.totalTime.Load() / inv)
		}
		s.Phases[key.(string)] = p
		return true
	})

	return s
}

// Reset clears all counters.
func (m *Metrics) Reset() {
	m.validationsTotal.Store(0)
	m.validationsValid.Store(0)
	m.validationTimeTotal.Store(0)
	m.validationTimeMin.Store(^uint64(0))
	m.validationTimeMax.Store(0)
	m.errorsTotal.Store(0)
	m.warningsTotal.Store(0)
	m.infosTotal.Store(0)
	m.phaseTiming.Range(func(key, _ any) bool {
		m.phaseTiming.Delete(key)
		return true
	})
}
