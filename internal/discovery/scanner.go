package discovery

import (
	"context"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tenantfinder/pkg/datacenter"
	"tenantfinder/pkg/domain"
	"tenantfinder/pkg/logger"
	"tenantfinder/pkg/serrors"
)

// LabelPrefix prefixes the index of an implementation tenant label.
const LabelPrefix = "IMPL"

// ImplementationLabel returns the display label of the i-th implementation tenant.
func ImplementationLabel(i int) string {
	return LabelPrefix + strconv.Itoa(i)
}

// ScanImplementationTenants probes tenantID+i for i in 1..maxIndex against
// sandboxTemplate and returns the valid ones sorted by ascending index,
// whatever order the probes complete in. maxIndex 0 returns an empty slice.
//
// With StrategyEarlyStop the first indices are probed one by one and the scan
// is abandoned after EarlyStopThreshold consecutive misses; after the first hit
// the remaining indices are probed in parallel. StrategyExhaustive probes the
// whole range in parallel.
func (e *Engine) ScanImplementationTenants(
	ctx context.Context,
	sandboxTemplate, tenantID string,
	maxIndex int,
) ([]domain.ImplementationTenant, error) {
	if err := ValidateTenantID(tenantID); err != nil {
		return nil, err
	}
	if maxIndex < 0 || maxIndex > e.options.MaxIndexLimit {
		return nil, serrors.With(serrors.ErrBadRequest, "max index must be between 0 and %d", e.options.MaxIndexLimit)
	}
	if strings.Count(sandboxTemplate, datacenter.Placeholder) != 1 {
		return nil, serrors.With(serrors.ErrBadRequest, "sandbox template must contain %s exactly once", datacenter.Placeholder)
	}

	ctx, span := e.tracer.Start(ctx, "discovery.ScanImplementationTenants", trace.WithAttributes(
		attribute.String("tenant_id", tenantID),
		attribute.Int("max_index", maxIndex),
		attribute.String("strategy", string(e.options.Strategy)),
	))
	defer span.End()

	found := []domain.ImplementationTenant{}
	if maxIndex == 0 {
		return found, nil
	}

	first := 1
	if e.options.Strategy == StrategyEarlyStop {
		misses := 0
		hit := false
		for first <= maxIndex && !hit {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if t, ok := e.checkImplementation(ctx, sandboxTemplate, tenantID, first); ok {
				found = append(found, t)
				hit = true
			} else {
				misses++
			}
			first++

			if !hit && misses >= e.options.EarlyStopThreshold {
				logger.Debug(ctx, "implementation scan abandoned",
					zap.String("tenant_id", tenantID),
					zap.Int("misses", misses))

				return found, nil
			}
		}
	}

	rest, err := e.scanRange(ctx, sandboxTemplate, tenantID, first, maxIndex)
	if err != nil {
		return nil, err
	}
	found = append(found, rest...)
	span.SetAttributes(attribute.Int("found", len(found)))

	return found, nil
}

// scanRange probes indices from..to (inclusive) with at most ScannerWorkers
// probes in flight. Each worker writes its own slot, so collecting the slots in
// order yields tenants sorted by index.
func (e *Engine) scanRange(
	ctx context.Context,
	tmpl, tenantID string,
	from, to int,
) ([]domain.ImplementationTenant, error) {
	if from > to {
		return nil, nil
	}

	type slot struct {
		tenant domain.ImplementationTenant
		ok     bool
	}
	slots := make([]slot, to-from+1)

	var g errgroup.Group
	g.SetLimit(e.options.ScannerWorkers)
	for i := from; i <= to; i++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			t, ok := e.checkImplementation(ctx, tmpl, tenantID, i)
			slots[i-from] = slot{tenant: t, ok: ok}

			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.ImplementationTenant, 0, len(slots))
	for _, s := range slots {
		if s.ok {
			out = append(out, s.tenant)
		}
	}

	return out, nil
}

func (e *Engine) checkImplementation(
	ctx context.Context,
	tmpl, tenantID string,
	i int,
) (domain.ImplementationTenant, bool) {
	URL := datacenter.Substitute(tmpl, tenantID+strconv.Itoa(i))
	if !e.check(ctx, URL).Valid {
		return domain.ImplementationTenant{}, false
	}

	return domain.ImplementationTenant{Index: i, Label: ImplementationLabel(i), URL: URL}, true
}
