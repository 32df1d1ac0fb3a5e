package service

import (
	"sync/atomic"
	"time"
)

// Metrics tracks generation call counters for the health endpoint.
type Metrics struct {
	generationCalls   atomic.Int64
	generationErrors  atomic.Int64
	parseFailures     atomic.Int64
	generationLatency atomic.Int64 // total nanoseconds
	kitsSaved         atomic.Int64
}

// Snapshot is a point-in-time copy of Metrics.
type Snapshot struct {
	GenerationCalls    int64   `json:"generation_calls"`
	GenerationErrors   int64   `json:"generation_errors"`
	ParseFailures      int64   `json:"parse_failures"`
	KitsSaved          int64   `json:"kits_saved"`
	AvgGenerationMs    float64 `json:"avg_generation_ms"`
	GenerationErrorPct float64 `json:"generation_error_pct"`
}

func (m *Metrics) recordGeneration(d time.Duration, err error) {
	m.generationCalls.Add(1)
	m.generationLatency.Add(d.Nanoseconds())
	if err != nil {
		m.generationErrors.Add(1)
	}
}

func (m *Metrics) recordParseFailure() { m.parseFailures.Add(1) }

func (m *Metrics) recordKitSaved() { m.kitsSaved.Add(1) }

func (m *Metrics) Snapshot() Snapshot {
	s := Snapshot{
		GenerationCalls:  m.generationCalls.Load(),
		GenerationErrors: m.generationErrors.Load(),
		ParseFailures:    m.parseFailures.Load(),
		KitsSaved:        m.kitsSaved.Load(),
	}
	if s.GenerationCalls > 0 {
		s.AvgGenerationMs = float64(m.generationLatency.Load()) / float64(s.GenerationCalls) / 1e6
		s.GenerationErrorPct = float64(s.GenerationErrors) / float64(s.GenerationCalls) * 100
	}
	return s
}
