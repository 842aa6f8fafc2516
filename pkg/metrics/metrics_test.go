package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewWithRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry("nail-studio", reg)

	m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/slots", "200").Inc()
	m.SlotCacheRequests.WithLabelValues("hit").Add(2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/slots", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.SlotCacheRequests.WithLabelValues("hit")))
}
