// Package discovery locates the data center serving a tenant and enumerates
// its implementation tenants by probing candidate URLs built from the
// registry templates.
//
// Probe failures never abort a run: a candidate that cannot be reached is an
// invalid candidate. Only caller misuse (bad tenant identifier, out of range
// index) and cancellation of the caller's context are reported as errors.
//
// Every operation accepts a per-call probe timeout through the context, see
// probe.WithTimeout. It overrides the prober's configured timeout for each
// candidate probed on behalf of that call.
package discovery

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"tenantfinder/pkg/datacenter"
	"tenantfinder/pkg/domain"
	"tenantfinder/pkg/logger"
	"tenantfinder/pkg/serrors"
	"tenantfinder/pkg/validity"
)

const tracerName = "tenantfinder/internal/discovery"

// Engine runs discoveries. It holds no mutable state and is safe for
// concurrent use; the prober's connection pool is shared by every run.
type Engine struct {
	registry *datacenter.Registry
	prober   Prober
	oracle   *validity.Oracle
	options  Options
	tracer   trace.Tracer
}

var _ Discoverer = (*Engine)(nil)

// New creates an Engine. A nil oracle uses the registry sentinels.
func New(registry *datacenter.Registry, prober Prober, oracle *validity.Oracle, options Options) *Engine {
	if oracle == nil {
		oracle = validity.New(registry.Sentinels())
	}

	return &Engine{
		registry: registry,
		prober:   prober,
		oracle:   oracle,
		options:  options.withDefaults(),
		tracer:   otel.Tracer(tracerName),
	}
}

// Options returns the effective options of the engine.
func (e *Engine) Options() Options { return e.options }

// Registry returns the registry candidates are built from.
func (e *Engine) Registry() *datacenter.Registry { return e.registry }

// ValidateTenantID rejects identifiers that cannot be substituted into a
// template: empty, surrounded by or containing whitespace, or containing a slash.
func ValidateTenantID(tenantID string) error {
	switch {
	case tenantID == "":
		return serrors.With(serrors.ErrBadRequest, "tenant id is required")
	case strings.TrimSpace(tenantID) != tenantID || strings.ContainsAny(tenantID, " \t\r\n"):
		return serrors.With(serrors.ErrBadRequest, "tenant id must not contain whitespace")
	case strings.ContainsAny(tenantID, "/?#"):
		return serrors.With(serrors.ErrBadRequest, "tenant id must not contain '/', '?' or '#'")
	}

	return nil
}

// DeriveSandboxURL returns the sandbox URL of tenantID in the given data center.
func (e *Engine) DeriveSandboxURL(dataCenter, tenantID string) (string, bool) {
	tmpl, ok := e.registry.SandboxTemplate(dataCenter)
	if !ok {
		return "", false
	}

	return datacenter.Substitute(tmpl, tenantID), true
}

// DerivePreviewURL returns the preview URL of a sandbox template or sandbox URL.
func (e *Engine) DerivePreviewURL(sandboxURL, tenantID string) string {
	return datacenter.DerivePreviewURL(sandboxURL, tenantID)
}

// DeriveCentralURL returns the customer-central URL of a sandbox template or
// sandbox URL.
func (e *Engine) DeriveCentralURL(sandboxURL, tenantID string) string {
	return datacenter.DeriveCentralURL(sandboxURL, tenantID)
}

// Discover locates the production endpoint of tenantID, derives the sandbox,
// preview and customer-central URLs of the matched data center and scans the
// implementation tenants 1..maxIndex. A non-positive maxIndex uses the default.
//
// A tenant that is not found is a normal result: the returned result has an
// empty DataCenter and no implementation tenants.
func (e *Engine) Discover(ctx context.Context, tenantID string, maxIndex int) (*domain.TenantDiscoveryResult, error) {
	if err := ValidateTenantID(tenantID); err != nil {
		return nil, err
	}
	if maxIndex <= 0 {
		maxIndex = e.options.MaxIndex
	}
	if maxIndex > e.options.MaxIndexLimit {
		return nil, serrors.With(serrors.ErrBadRequest, "max index must not exceed %d", e.options.MaxIndexLimit)
	}

	ctx, span := e.tracer.Start(ctx, "discovery.Discover", trace.WithAttributes(
		attribute.String("tenant_id", tenantID),
		attribute.Int("max_index", maxIndex),
	))
	defer span.End()

	result := &domain.TenantDiscoveryResult{
		TenantID:              tenantID,
		ImplementationTenants: []domain.ImplementationTenant{},
	}

	match, err := e.LocateProduction(ctx, tenantID)
	if err != nil {
		span.RecordError(err)

		return nil, err
	}
	if match == nil {
		logger.Info(ctx, "tenant not found in any data center", zap.String("tenant_id", tenantID))

		return result, nil
	}
	result.DataCenter = match.DataCenter
	result.ProductionURL = match.URL

	sandboxURL, ok := e.DeriveSandboxURL(match.DataCenter, tenantID)
	if !ok {
		return result, nil
	}
	result.SandboxURL = sandboxURL
	result.PreviewURL = e.DerivePreviewURL(sandboxURL, tenantID)
	result.CentralURL = e.DeriveCentralURL(sandboxURL, tenantID)

	tmpl, _ := e.registry.SandboxTemplate(match.DataCenter)
	impls, err := e.ScanImplementationTenants(ctx, tmpl, tenantID, maxIndex)
	if err != nil {
		span.RecordError(err)

		return nil, err
	}
	result.ImplementationTenants = impls

	logger.Info(ctx, "tenant discovered",
		zap.String("tenant_id", tenantID),
		zap.String("data_center", result.DataCenter),
		zap.Int("implementation_tenants", len(impls)))

	return result, nil
}

// check probes URL and applies the validity policy. Probe errors yield an
// invalid outcome.
func (e *Engine) check(ctx context.Context, URL string) domain.ProbeOutcome {
	res, err := e.prober.Probe(ctx, URL)
	if err != nil {
		return domain.ProbeOutcome{RequestedURL: URL}
	}

	outcome, reason := e.oracle.Evaluate(res.Outcome, res.Body)
	logger.Debug(ctx, "candidate checked",
		zap.String("url", URL),
		zap.Bool("valid", outcome.Valid),
		zap.String("reason", string(reason)))

	return outcome
}
