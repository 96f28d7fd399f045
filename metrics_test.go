package mitsvalidator

import (
	"sync"
	"testing"
	"time"
)

func TestMetricsRecordValidation(t *testing.T) {
	m := NewMetrics()
	m.RecordValidation(10*time.Millisecond, true)
	m.RecordValidation(30*time.Millisecond, false)

	s := m.Snapshot()
	if s.ValidationsTotal != 2 || s.ValidationsValid != 1 {
		t.Errorf("totals = %d/%d, want 2/1", s.ValidationsTotal, s.ValidationsValid)
	}
	if s.MinDuration != 10*time.Millisecond {
		t.Errorf("min = %v", s.MinDuration)
	}
	if s.MaxDuration != 30*time.Millisecond {
		t.Errorf("max = %v", s.MaxDuration)
	}
	if s.AvgDuration != 20*time.Millisecond {
		t.Errorf("avg = %v", s.AvgDuration)
	}
}

func TestMetricsRecordPhase(t *testing.T) {
	m := NewMetrics()
	m.RecordPhase("structure", 4*time.Millisecond, 2)
	m.RecordPhase("structure", 6*time.Millisecond, 1)

	s := m.Snapshot()
	p, ok := s.Phases["structure"]
	if !ok {
		t.Fatal("phase missing from snapshot")
	}
	if p.Invocations != 2 || p.Messages != 3 {
		t.Errorf("phase = %+v", p)
	}
	if p.AvgDuration != 5*time.Millisecond {
		t.Errorf("phase avg = %v", p.AvgDuration)
	}
}

func TestMetricsRecordResult(t *testing.T) {
	m := NewMetrics()
	r := NewResult()
	r.AddError(RuleClassHasCode, "e", "/x")
	r.AddWarning(RuleMonthlyRangeWarning, "w", "/y")
	m.RecordResult(r)
	m.RecordResult(nil)

	s := m.Snapshot()
	if s.ErrorsTotal != 1 || s.WarningsTotal != 1 || s.InfosTotal != 0 {
		t.Errorf("severity totals = %d/%d/%d", s.ErrorsTotal, s.WarningsTotal, s.InfosTotal)
	}
}

func TestMetricsReset(t *testing.T) {
	m := NewMetrics()
	m.RecordValidation(time.Millisecond, true)
	m.RecordPhase("identity", time.Millisecond, 1)
	m.Reset()

	s := m.Snapshot()
	if s.ValidationsTotal != 0 || len(s.Phases) != 0 {
		t.Errorf("reset snapshot = %+v", s)
	}
	if s.MinDuration != 0 {
		t.Errorf("min after reset = %v", s.MinDuration)
	}
}

func TestMetricsConcurrent(t *testing.T) {
	m := NewMetrics()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.RecordValidation(time.Millisecond, true)
				m.RecordPhase("structure", time.Microsecond, 1)
			}
		}()
	}
	wg.Wait()

	s := m.Snapshot()
	if s.ValidationsTotal != 800 {
		t.Errorf("total = %d, want 800", s.ValidationsTotal)
	}
	if s.Phases["structure"].Invocations != 800 {
		t.Errorf("phase invocations = %d, want 800", s.Phases["structure"].Invocations)
	}
}
