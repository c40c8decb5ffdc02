// Package validity decides whether a probe exchange proves that a candidate
// URL serves an existing tenant.
//
// The decision policy is ordered and the first matching rule wins:
//  1. no response obtained: invalid
//  2. final URL equals a sentinel URL (trailing slash ignored): invalid
//  3. HTTP status >= 400: invalid
//  4. JSON body with "failover": false or an error-message field: invalid
//  5. 2xx status: valid; anything else: invalid
//
// Rule 4 is a best-effort secondary signal. A body that is not a JSON object,
// or that fails to parse, is inconclusive and never changes the outcome.
package validity

import (
	"tenantfinder/pkg/domain"
)

// Reason explains which rule decided an outcome.
type Reason string

const (
	ReasonNoResponse Reason = "no_response"
	ReasonSentinel   Reason = "sentinel"
	ReasonStatus     Reason = "error_status"
	ReasonFailover   Reason = "failover_disabled"
	ReasonErrorBody  Reason = "error_body"
	ReasonNot2xx     Reason = "not_2xx"
	ReasonOK         Reason = "ok"
)

// Oracle applies the decision policy. It is immutable and safe for concurrent use.
type Oracle struct {
	sentinels []string
}

// New creates an Oracle that treats the given URLs as "tenant does not exist"
// redirect destinations.
func New(sentinels []string) *Oracle {
	o := &Oracle{sentinels: make([]string, 0, len(sentinels))}
	for _, s := range sentinels {
		if n, err := NormalizeURL(s); err == nil {
			o.sentinels = append(o.sentinels, n)
		}
	}

	return o
}

// IsValid reports whether outcome (and the optional response body) proves the
// candidate is valid.
func (o *Oracle) IsValid(outcome domain.ProbeOutcome, body []byte) bool {
	valid, _ := o.Decide(outcome, body)

	return valid
}

// Evaluate returns a copy of outcome with Valid set according to the policy.
func (o *Oracle) Evaluate(outcome domain.ProbeOutcome, body []byte) (domain.ProbeOutcome, Reason) {
	valid, reason := o.Decide(outcome, body)
	outcome.Valid = valid

	return outcome, reason
}

// Decide applies the policy and returns the verdict along with the deciding rule.
func (o *Oracle) Decide(outcome domain.ProbeOutcome, body []byte) (bool, Reason) {
	if !outcome.Responded() {
		return false, ReasonNoResponse
	}
	if o.isSentinel(outcome.FinalURL) {
		return false, ReasonSentinel
	}
	if outcome.StatusCode >= 400 {
		return false, ReasonStatus
	}
	if signal, ok := InspectBody(body); ok {
		if signal.FailoverSet && !signal.Failover {
			return false, ReasonFailover
		}
		if signal.HasError {
			return false, ReasonErrorBody
		}
	}
	if outcome.StatusCode >= 200 && outcome.StatusCode < 300 {
		return true, ReasonOK
	}

	return false, ReasonNot2xx
}

func (o *Oracle) isSentinel(finalURL string) bool {
	if finalURL == "" {
		return false
	}
	n, err := NormalizeURL(finalURL)
	if err != nil {
		return false
	}
	for _, s := range o.sentinels {
		if s == n {
			return true
		}
	}

	return false
}
