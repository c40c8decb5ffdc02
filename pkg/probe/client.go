// Package probe issues single HTTP probes against candidate URLs.
//
// A probe follows redirects, records the final URL and status code, and
// retries transient failures (timeouts, connection resets, 429 and 5xx gateway
// statuses) with exponential backoff. It never decides whether a candidate is
// valid; that is left to the validity package.
package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashicorp/go-cleanhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"tenantfinder/pkg/domain"
	"tenantfinder/pkg/logger"
	"tenantfinder/pkg/metrics"
	"tenantfinder/pkg/serrors"
)

// Result is the raw outcome of a probe. Outcome.Valid is never set here.
type Result struct {
	Outcome domain.ProbeOutcome
	// Body holds up to Options.MaxBodyBytes of the final response body. It is
	// empty when only a HEAD request was needed.
	Body []byte
	// Method is the HTTP method of the exchange that produced Outcome.
	Method string
	// Attempts counts every HTTP attempt, retries and method fallback included.
	Attempts int
}

// Client probes URLs. It is immutable after construction and safe for
// concurrent use; the underlying connection pool and rate limiter are shared
// by all probes.
type Client struct {
	httpClient *http.Client
	options    Options
	limiter    *rate.Limiter
	metrics    *metrics.Probe
}

// New creates a Client. A nil httpClient uses a pooled go-cleanhttp client.
// The given client is copied; its redirect policy is replaced.
func New(httpClient *http.Client, options Options) (*Client, error) {
	options = options.withDefaults()

	if httpClient == nil {
		httpClient = cleanhttp.DefaultPooledClient()
	}
	hc := *httpClient
	maxRedirects := options.MaxRedirects
	hc.CheckRedirect = func(_ *http.Request, via []*http.Request) error {
		if len(via) > maxRedirects {
			// report the redirect response itself as final
			return http.ErrUseLastResponse
		}

		return nil
	}

	m, err := metrics.NewProbe(options.MeterProvider)
	if err != nil {
		return nil, fmt.Errorf("could not create probe metrics: %w", err)
	}

	c := &Client{
		httpClient: &hc,
		options:    options,
		metrics:    m,
	}
	if options.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(options.RateLimit), options.RateBurst)
	}

	return c, nil
}

type timeoutKey struct{}

// WithTimeout returns a context that makes every probe issued with it bound
// each attempt by timeout instead of Options.Timeout. A non-positive timeout
// leaves ctx unchanged.
func WithTimeout(ctx context.Context, timeout time.Duration) context.Context {
	if timeout <= 0 {
		return ctx
	}

	return context.WithValue(ctx, timeoutKey{}, timeout)
}

// TimeoutFromContext returns the per-call timeout set with WithTimeout.
func TimeoutFromContext(ctx context.Context) (time.Duration, bool) {
	timeout, ok := ctx.Value(timeoutKey{}).(time.Duration)

	return timeout, ok
}

// Timeout returns the per-attempt timeout applied to probes issued with ctx.
func (c *Client) Timeout(ctx context.Context) time.Duration {
	if timeout, ok := TimeoutFromContext(ctx); ok {
		return timeout
	}

	return c.options.Timeout
}

// exchange is what a single completed HTTP request yielded.
type exchange struct {
	finalURL string
	status   int
	header   http.Header
	body     []byte
}

// Probe issues a HEAD request to URL and falls back to GET when the server
// rejects HEAD, when HEAD fails for a reason other than DNS or TLS, or when a
// successful HEAD advertises a JSON body worth inspecting.
//
// A non-nil error means no response was obtained; the returned Result still
// carries the requested URL and the attempt count. Callers treat such probes as
// invalid candidates rather than fatal failures.
func (c *Client) Probe(ctx context.Context, URL string) (Result, error) {
	start := time.Now()
	res := Result{Outcome: domain.ProbeOutcome{RequestedURL: URL}, Method: http.MethodHead}
	defer func() {
		c.metrics.Duration(ctx, time.Since(start).Seconds())
	}()

	ex, err := c.do(ctx, http.MethodHead, URL, &res.Attempts)
	if c.needsGET(ctx, ex, err) {
		res.Method = http.MethodGet
		ex, err = c.do(ctx, http.MethodGet, URL, &res.Attempts)
	}

	if err != nil {
		logger.Debug(ctx, "probe failed",
			zap.String("url", URL),
			zap.String("method", res.Method),
			zap.Int("attempts", res.Attempts),
			zap.Error(err))

		return res, fmt.Errorf("could not probe %s: %w", URL, err)
	}

	res.Outcome.FinalURL = ex.finalURL
	res.Outcome.StatusCode = ex.status
	res.Body = ex.body

	logger.Debug(ctx, "probe finished",
		zap.String("url", URL),
		zap.String("final_url", ex.finalURL),
		zap.String("method", res.Method),
		zap.Int("status", ex.status),
		zap.Int("attempts", res.Attempts))

	return res, nil
}

func (c *Client) needsGET(ctx context.Context, ex exchange, err error) bool {
	if err != nil {
		return ctx.Err() == nil && !isTransientErr(err) && !isTerminal(err) && !errors.Is(err, errRateLimitWait)
	}
	switch ex.status {
	case http.StatusMethodNotAllowed, http.StatusNotImplemented:
		return true
	}
	if ex.status >= 200 && ex.status < 300 {
		return isJSON(ex.header.Get("Content-Type"))
	}

	return false
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}

var errRateLimitWait = errors.New("rate limit wait aborted")

// do performs method against URL with the retry policy. A transient status that
// survives every attempt is returned as a regular exchange, not as an error.
func (c *Client) do(ctx context.Context, method, URL string, attempts *int) (exchange, error) {
	var last exchange
	first := true

	op := func() error {
		if !first {
			c.metrics.Retry(ctx)
		}
		first = false
		*attempts++

		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return backoff.Permanent(fmt.Errorf("%w: %w", errRateLimitWait, err))
			}
		}

		ex, err := c.attempt(ctx, method, URL)
		if err != nil {
			if ctx.Err() == nil && isTransientErr(err) {
				c.metrics.Request(ctx, method, metrics.ProbeResultTransient)

				return serrors.Wrap(serrors.ErrTransient, err, "%s %s", method, URL)
			}
			c.metrics.Request(ctx, method, metrics.ProbeResultFailed)

			return backoff.Permanent(err)
		}

		last = ex
		if isTransientStatus(ex.status) {
			c.metrics.Request(ctx, method, metrics.ProbeResultTransient)

			return serrors.With(serrors.ErrTransient, "%s %s: status %d", method, URL, ex.status)
		}
		c.metrics.Request(ctx, method, metrics.ProbeResultOK)

		return nil
	}

	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), uint64(c.options.MaxAttempts-1)), ctx))
	if err != nil && last.status != 0 && isTransientStatus(last.status) && ctx.Err() == nil {
		return last, nil
	}
	if err != nil {
		return exchange{}, err
	}

	return last, nil
}

func (c *Client) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.options.InitialBackoff
	b.MaxInterval = c.options.MaxBackoff
	b.Multiplier = 2
	b.RandomizationFactor = 0.1
	b.MaxElapsedTime = 0
	b.Reset()

	return b
}

// attempt issues a single request bounded by the per-attempt timeout.
func (c *Client) attempt(ctx context.Context, method, URL string) (exchange, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout(ctx))
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, URL, nil)
	if err != nil {
		return exchange{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("User-Agent", c.options.UserAgent)
	req.Header.Set("Accept", "text/html,application/json;q=0.9,*/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return exchange{}, fmt.Errorf("could not send %s request: %w", method, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	final := req
	if resp.Request != nil {
		final = resp.Request
	}
	ex := exchange{
		finalURL: final.URL.String(),
		status:   resp.StatusCode,
		header:   resp.Header,
	}
	if method == http.MethodHead || isTransientStatus(resp.StatusCode) {
		return ex, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.options.MaxBodyBytes))
	if err != nil {
		// a truncated body only weakens the body heuristic
		logger.Debug(ctx, "could not read probe body", zap.String("url", URL), zap.Error(err))
	}
	ex.body = body

	return ex, nil
}
