package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCollector(t *testing.T, config *Config) (*Collector, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg, config)
	require.NoError(t, err)
	return c, reg
}

func TestNewCollector_Defaults(t *testing.T) {
	c, _ := newTestCollector(t, nil)
	assert.True(t, c.IsEnabled())
	assert.Equal(t, "rmqadmin", c.config.Namespace)
}

func TestNewCollector_DoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg, nil)
	require.NoError(t, err)

	_, err = NewCollector(reg, nil)
	assert.Error(t, err)
}

func TestCollector_RecordRequest(t *testing.T) {
	c, reg := newTestCollector(t, nil)

	c.RecordRequest("GET", "/queues/{vhost}", 200, 15*time.Millisecond)
	c.RecordRequest("GET", "/queues/{vhost}", 200, 20*time.Millisecond)
	c.RecordRequest("PUT", "/queues/{vhost}/{name}", 201, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.requestCount.WithLabelValues("GET", "/queues/{vhost}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requestCount.WithLabelValues("PUT", "/queues/{vhost}/{name}", "201")))
	assert.Equal(t, int64(3), c.TotalRequests())

	count, err := testutil.GatherAndCount(reg, "rmqadmin_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCollector_RecordParseFailure(t *testing.T) {
	c, _ := newTestCollector(t, nil)

	c.RecordParseFailure("cluster node", "malformed field")
	c.RecordParseFailure("cluster node", "malformed field")
	c.RecordParseFailure("policy", "unknown enum variant")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.parseFailures.WithLabelValues("cluster node", "malformed field")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.parseFailures.WithLabelValues("policy", "unknown enum variant")))
}

func TestCollector_Disabled(t *testing.T) {
	config := DefaultConfig()
	config.Enabled = false
	c, reg := newTestCollector(t, config)

	c.RecordRequest("GET", "/nodes", 200, time.Millisecond)
	c.RecordParseFailure("queue", "missing field")

	assert.False(t, c.IsEnabled())
	assert.Zero(t, c.TotalRequests())

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNoopCollector(t *testing.T) {
	var c MetricsCollector = NoopCollector{}
	c.RecordRequest("GET", "/nodes", 200, time.Millisecond)
	c.RecordParseFailure("queue", "missing field")
	assert.False(t, c.IsEnabled())
}

func TestMockCollector(t *testing.T) {
	m := NewMockCollector()
	m.RecordRequest("DELETE", "/policies/{vhost}/{name}", 404, time.Millisecond)
	m.RecordParseFailure("policy", "missing field")

	require.Len(t, m.Requests(), 1)
	assert.Equal(t, 404, m.Requests()[0].Status)
	assert.Equal(t, []RecordedParseFailure{{Resource: "policy", Kind: "missing field"}}, m.ParseFailures())

	m.Clear()
	assert.Empty(t, m.Requests())
	assert.Empty(t, m.ParseFailures())
}
