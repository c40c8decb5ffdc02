package discovery

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tenantfinder/pkg/datacenter"
	"tenantfinder/pkg/domain"
	"tenantfinder/pkg/logger"
)

type candidateState uint8

const (
	statePending candidateState = iota
	stateInvalid
	stateValid
)

type verdict struct {
	index int
	valid bool
	url   string
}

// LocateProduction probes the production template of every data center for
// tenantID with at most LocatorWorkers probes in flight and returns the match,
// or nil when no data center serves the tenant.
//
// The reported match is the valid candidate that comes first in registry order.
// The search short-circuits as soon as every earlier candidate is known to be
// invalid; remaining probes are then cancelled and not waited for.
func (e *Engine) LocateProduction(ctx context.Context, tenantID string) (*domain.ProductionMatch, error) {
	if err := ValidateTenantID(tenantID); err != nil {
		return nil, err
	}

	ctx, span := e.tracer.Start(ctx, "discovery.LocateProduction",
		trace.WithAttributes(attribute.String("tenant_id", tenantID)))
	defer span.End()

	entries := e.registry.Enumerate()
	probeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// buffered so abandoned workers never block
	verdicts := make(chan verdict, len(entries))
	go func() {
		var g errgroup.Group
		g.SetLimit(e.options.LocatorWorkers)
		for i, dc := range entries {
			if probeCtx.Err() != nil {
				break
			}
			URL := datacenter.Substitute(dc.ProductionTemplate, tenantID)
			g.Go(func() error {
				if probeCtx.Err() != nil {
					verdicts <- verdict{index: i, url: URL}

					return nil
				}
				outcome := e.check(probeCtx, URL)
				verdicts <- verdict{index: i, valid: outcome.Valid, url: URL}

				return nil
			})
		}
		_ = g.Wait()
		close(verdicts)
	}()

	states := make([]candidateState, len(entries))
	urls := make([]string, len(entries))
	next := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case v, ok := <-verdicts:
			if !ok {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				logger.Debug(ctx, "no data center serves tenant", zap.String("tenant_id", tenantID))

				return nil, nil
			}
			if v.valid {
				states[v.index] = stateValid
			} else {
				states[v.index] = stateInvalid
			}
			urls[v.index] = v.url

			for next < len(states) && states[next] == stateInvalid {
				next++
			}
			if next < len(states) && states[next] == stateValid {
				match := &domain.ProductionMatch{DataCenter: entries[next].ID, URL: urls[next]}
				span.SetAttributes(attribute.String("data_center", match.DataCenter))

				return match, nil
			}
		}
	}
}
