package metrics

import "time"

// MetricsCollector is the interface for client-side metrics in rmqadmin.
// This interface allows for easy mocking in tests.
type MetricsCollector interface {
	// RecordRequest records one management API round trip. endpoint is the
	// route template (e.g. "/queues/{vhost}"), never the escaped URL.
	RecordRequest(method, endpoint string, status int, elapsed time.Duration)
	// RecordParseFailure records a response that could not be parsed.
	RecordParseFailure(resource, kind string)

	IsEnabled() bool
}

var (
	_ MetricsCollector = (*Collector)(nil)
	_ MetricsCollector = NoopCollector{}
	_ MetricsCollector = (*MockCollector)(nil)
)

// NoopCollector discards everything.
type NoopCollector struct{}

func (NoopCollector) RecordRequest(string, string, int, time.Duration) {}
func (NoopCollector) RecordParseFailure(string, string)                {}
func (NoopCollector) IsEnabled() bool                                  { return false }
