package metrics_test

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"tenantfinder/pkg/metrics"
)

func TestProbeInstrumentsExportedToPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	p, err := metrics.NewProbe(mp)
	require.NoError(t, err)

	ctx := context.Background()
	p.Request(ctx, "HEAD", metrics.ProbeResultOK)
	p.Retry(ctx)
	p.Duration(ctx, 0.2)

	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	joined := strings.Join(names, ",")
	require.Contains(t, joined, "tenantfinder_probe_requests")
	require.Contains(t, joined, "tenantfinder_probe_retries")
	require.Contains(t, joined, "tenantfinder_probe_duration")
}

func TestNewProbe_NilProviderUsesGlobal(t *testing.T) {
	p, err := metrics.NewProbe(nil)
	require.NoError(t, err)
	require.NotPanics(t, func() {
		p.Request(context.Background(), "GET", metrics.ProbeResultFailed)
	})
}
