package metrics

import (
	"sync"
	"time"
)

// RecordedRequest is one call to MockCollector.RecordRequest.
type RecordedRequest struct {
	Method   string
	Endpoint string
	Status   int
	Elapsed  time.Duration
}

// RecordedParseFailure is one call to MockCollector.RecordParseFailure.
type RecordedParseFailure struct {
	Resource string
	Kind     string
}

// MockCollector is a simple mock implementation of MetricsCollector for testing.
type MockCollector struct {
	mu sync.RWMutex

	requests      []RecordedRequest
	parseFailures []RecordedParseFailure

	enabled bool
}

// NewMockCollector creates a new mock collector.
func NewMockCollector() *MockCollector {
	return &MockCollector{enabled: true}
}

func (m *MockCollector) RecordRequest(method, endpoint string, status int, elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, RecordedRequest{Method: method, Endpoint: endpoint, Status: status, Elapsed: elapsed})
}

func (m *MockCollector) RecordParseFailure(resource, kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parseFailures = append(m.parseFailures, RecordedParseFailure{Resource: resource, Kind: kind})
}

func (m *MockCollector) Requests() []RecordedRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]RecordedRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

func (m *MockCollector) ParseFailures() []RecordedParseFailure {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]RecordedParseFailure, len(m.parseFailures))
	copy(out, m.parseFailures)
	return out
}

// Utility
func (m *MockCollector) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = nil
	m.parseFailures = nil
}

func (m *MockCollector) IsEnabled() bool {
	return m.enabled
}
