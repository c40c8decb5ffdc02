package probe

import (
	"time"

	"go.opentelemetry.io/otel/metric"
)

const (
	// MaxAttemptsLimit is the hard upper bound of attempts per request.
	MaxAttemptsLimit = 3

	DefaultTimeout        = 2 * time.Second
	DefaultInitialBackoff = 300 * time.Millisecond
	DefaultMaxBackoff     = 2 * time.Second
	DefaultMaxRedirects   = 10
	DefaultMaxBodyBytes   = 64 << 10
	DefaultUserAgent      = "TenantFinder/1.0"
)

// Options configure a Client. Zero values fall back to the defaults above.
type Options struct {
	// Timeout bounds every single HTTP attempt, redirects included.
	Timeout time.Duration
	// MaxAttempts is the number of attempts for transient failures, capped at MaxAttemptsLimit.
	MaxAttempts int
	// InitialBackoff is the wait before the first retry; it doubles on every retry.
	InitialBackoff time.Duration
	// MaxBackoff caps the wait between retries.
	MaxBackoff time.Duration
	// MaxRedirects is the number of redirects followed before the last
	// redirect response is reported as final.
	MaxRedirects int
	// UserAgent identifies the prober to the target service.
	UserAgent string
	// MaxBodyBytes caps how much of a response body is read.
	MaxBodyBytes int64
	// RateLimit is the number of requests per second shared by all probes of
	// the client. Zero disables rate limiting.
	RateLimit float64
	// RateBurst is the token bucket size used with RateLimit.
	RateBurst int
	// MeterProvider receives the probe metrics. Nil uses the global provider.
	MeterProvider metric.MeterProvider
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.MaxAttempts <= 0 || o.MaxAttempts > MaxAttemptsLimit {
		o.MaxAttempts = MaxAttemptsLimit
	}
	if o.InitialBackoff <= 0 {
		o.InitialBackoff = DefaultInitialBackoff
	}
	if o.MaxBackoff <= 0 {
		o.MaxBackoff = DefaultMaxBackoff
	}
	if o.MaxBackoff < o.InitialBackoff {
		o.MaxBackoff = o.InitialBackoff
	}
	if o.MaxRedirects <= 0 {
		o.MaxRedirects = DefaultMaxRedirects
	}
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if o.RateLimit > 0 && o.RateBurst <= 0 {
		o.RateBurst = 1
	}

	return o
}
