package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/marromlanches/storefront-backend/pkg/metrics"
)

func TestObserveRequestCountsByLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewHTTPMetrics(reg)

	m.ObserveRequest("POST", "/api/v1/orders", "201", 15*time.Millisecond)
	m.ObserveRequest("POST", "/api/v1/orders", "201", 20*time.Millisecond)
	m.ObserveRequest("GET", "", "200", time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := map[string]*dto.MetricFamily{}
	for _, fam := range families {
		byName[fam.GetName()] = fam
	}

	counter := byName["http_requests_total"]
	require.NotNil(t, counter)

	found := false
	for _, metric := range counter.GetMetric() {
		labels := map[string]string{}
		for _, pair := range metric.GetLabel() {
			labels[pair.GetName()] = pair.GetValue()
		}
		if labels["method"] == "POST" && labels["route"] == "/api/v1/orders" {
			require.Equal(t, float64(2), metric.GetCounter().GetValue())
			found = true
		}
		if labels["method"] == "GET" {
			require.Equal(t, "unmatched", labels["route"])
		}
	}
	require.True(t, found, "expected POST /api/v1/orders series")
}

func TestNilRegistererIsNoop(t *testing.T) {
	m := metrics.NewHTTPMetrics(nil)
	m.ObserveRequest("GET", "/", "200", time.Millisecond)
	m.IncInFlight()
	m.DecInFlight()
}
