package server

import (
	"sync/atomic"
	"time"
)

// Metrics tracks server statistics using atomic operations for thread-safety
type Metrics struct {
	RequestsTotal    atomic.Int64
	RequestsInFlight atomic.Int32
	ClientErrors     atomic.Int64
	ServerErrors     atomic.Int64
	Reorders         atomic.Int64
	Moves            atomic.Int64
	StartTime        time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// observe records a finished request by its status code
func (m *Metrics) observe(status int) {
	m.RequestsTotal.Add(1)
	switch {
	case status >= 500:
		m.ServerErrors.Add(1)
	case status >= 400:
		m.ClientErrors.Add(1)
	}
}

// IncReorders increments the successful reorder counter
func (m *Metrics) IncReorders() {
	m.Reorders.Add(1)
}

// IncMoves increments the successful card move counter
func (m *Metrics) IncMoves() {
	m.Moves.Add(1)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	RequestsTotal    int64     `json:"requests_total"`
	RequestsInFlight int32     `json:"requests_in_flight"`
	ClientErrors     int64     `json:"client_errors"`
	ServerErrors     int64     `json:"server_errors"`
	Reorders         int64     `json:"reorders"`
	Moves            int64     `json:"moves"`
	StartTime        time.Time `json:"start_time"`
	Uptime           string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		RequestsTotal:    m.RequestsTotal.Load(),
		RequestsInFlight: m.RequestsInFlight.Load(),
		ClientErrors:     m.ClientErrors.Load(),
		ServerErrors:     m.ServerErrors.Load(),
		Reorders:         m.Reorders.Load(),
		Moves:            m.Moves.Load(),
		StartTime:        m.StartTime,
		Uptime:           time.Since(m.StartTime).Round(time.Second).String(),
	}
}
