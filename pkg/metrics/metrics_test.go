package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolCollector_RecordsEvents(t *testing.T) {
	c := NewPoolCollector("metrics-test")
	c.Configured(2)

	c.Borrowed(false, 0)
	c.Released(true, 1)
	c.Borrowed(true, 0)
	c.Released(true, 1)
	c.Released(false, 1)

	assert.Equal(t, 1.0, testutil.ToFloat64(PoolBorrows.WithLabelValues("metrics-test", "created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(PoolBorrows.WithLabelValues("metrics-test", "reused")))
	assert.Equal(t, 2.0, testutil.ToFloat64(PoolReleases.WithLabelValues("metrics-test", "stored")))
	assert.Equal(t, 1.0, testutil.ToFloat64(PoolReleases.WithLabelValues("metrics-test", "discarded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(PoolIdle.WithLabelValues("metrics-test")))
	assert.Equal(t, 2.0, testutil.ToFloat64(PoolCapacity.WithLabelValues("metrics-test")))
	assert.Equal(t, "metrics-test", c.Name())
}

func TestPoolCollector_NilIsNoop(t *testing.T) {
	var c *PoolCollector
	assert.NotPanics(t, func() {
		c.Configured(1)
		c.Borrowed(true, 0)
		c.Released(false, 0)
	})
	assert.Equal(t, "", c.Name())
}

func TestWriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(RequestsHandled)
	other := prometheus.NewCounter(prometheus.CounterOpts{Name: "unrelated_total", Help: "not ours"})
	reg.MustRegister(other)

	RequestsHandled.WithLabelValues("FeedingHandler").Inc()
	other.Inc()

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, reg))

	out := buf.String()
	assert.Contains(t, out, "# TYPE patternlab_requests_handled_total counter")
	assert.Contains(t, out, `patternlab_requests_handled_total{handler="FeedingHandler"}`)
	assert.NotContains(t, out, "unrelated_total")
}
