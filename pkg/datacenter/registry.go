// Package datacenter holds the candidate registry: the fixed, ordered set of
// data centers and the URL templates used to build probe candidates for a
// tenant identifier.
//
// A template is a URL containing exactly one Placeholder. Substitute fills it
// with a tenant identifier; DerivePreview and DeriveCentral produce the
// templates of the preview and customer-central variants of a sandbox tenant,
// and DerivePreviewURL and DeriveCentralURL do the same for concrete URLs.
package datacenter

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"tenantfinder/pkg/domain"
)

// Placeholder is the tenant identifier substitution point of every template.
const Placeholder = "{id}"

const (
	// PreviewMarker is appended to the tenant identifier of preview tenants.
	PreviewMarker = "_Preview"
	// CentralMarker is appended to the tenant identifier of customer-central tenants.
	CentralMarker = "_cc"
)

// Validation errors returned by New.
var (
	ErrNoEntries       = errors.New("registry has no data centers")
	ErrDuplicateID     = errors.New("duplicate data center id")
	ErrEmptyID         = errors.New("empty data center id")
	ErrBadPlaceholder  = errors.New("template must contain exactly one placeholder")
	ErrInvalidSentinel = errors.New("invalid sentinel URL")
)

// Registry is an immutable, ordered set of data centers. Lookups are constant
// time; Enumerate preserves registration order, which is also the priority
// order used to break ties between concurrently validated candidates.
type Registry struct {
	entries   []domain.DataCenter
	index     map[string]int
	sentinels []string
}

// New validates entries and sentinels and builds a Registry from them.
func New(entries []domain.DataCenter, sentinels []string) (*Registry, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	r := &Registry{
		entries: make([]domain.DataCenter, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.ID == "" {
			return nil, ErrEmptyID
		}
		if _, ok := r.index[e.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
		}
		if err := checkTemplate(e.ProductionTemplate); err != nil {
			return nil, fmt.Errorf("data center %s production template: %w", e.ID, err)
		}
		if err := checkTemplate(e.SandboxTemplate); err != nil {
			return nil, fmt.Errorf("data center %s sandbox template: %w", e.ID, err)
		}
		r.index[e.ID] = len(r.entries)
		r.entries = append(r.entries, e)
	}

	seen := make(map[string]bool)
	paths := make([]string, 0, len(sentinels))
	for _, s := range sentinels {
		u, err := url.Parse(s)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSentinel, s)
		}
		r.addSentinel(seen, s)
		paths = append(paths, u.RequestURI())
	}

	// Each data center redirects unknown tenants to the sentinel page on its
	// own host, so the sentinel path is registered on every template origin.
	for _, p := range paths {
		for _, e := range r.entries {
			for _, tmpl := range []string{e.ProductionTemplate, e.SandboxTemplate} {
				if origin, ok := templateOrigin(tmpl); ok {
					r.addSentinel(seen, origin+p)
				}
			}
		}
	}

	return r, nil
}

func (r *Registry) addSentinel(seen map[string]bool, s string) {
	if seen[s] {
		return
	}
	seen[s] = true
	r.sentinels = append(r.sentinels, s)
}

// templateOrigin returns the scheme and host of tmpl. Templates with the
// placeholder in the host have no fixed origin.
func templateOrigin(tmpl string) (string, bool) {
	u, err := url.Parse(strings.Replace(tmpl, Placeholder, "tenant", 1))
	if err != nil {
		return "", false
	}
	origin := u.Scheme + "://" + u.Host
	if !strings.HasPrefix(tmpl, origin) {
		return "", false
	}

	return origin, true
}

func checkTemplate(tmpl string) error {
	if strings.Count(tmpl, Placeholder) != 1 {
		return fmt.Errorf("%w: %q", ErrBadPlaceholder, tmpl)
	}
	u, err := url.Parse(strings.Replace(tmpl, Placeholder, "tenant", 1))
	if err != nil {
		return fmt.Errorf("could not parse template: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q in %q", u.Scheme, tmpl)
	}

	return nil
}

// Enumerate returns the data centers in registration order. The returned slice
// is a copy.
func (r *Registry) Enumerate() []domain.DataCenter {
	out := make([]domain.DataCenter, len(r.entries))
	copy(out, r.entries)

	return out
}

// Len returns the number of registered data centers.
func (r *Registry) Len() int { return len(r.entries) }

// Lookup returns the data center with the given id.
func (r *Registry) Lookup(id string) (domain.DataCenter, bool) {
	i, ok := r.index[id]
	if !ok {
		return domain.DataCenter{}, false
	}

	return r.entries[i], true
}

// ProductionTemplate returns the production template of the given data center.
func (r *Registry) ProductionTemplate(id string) (string, bool) {
	dc, ok := r.Lookup(id)

	return dc.ProductionTemplate, ok
}

// SandboxTemplate returns the sandbox template of the given data center.
func (r *Registry) SandboxTemplate(id string) (string, bool) {
	dc, ok := r.Lookup(id)

	return dc.SandboxTemplate, ok
}

// Sentinels returns the URLs the target service redirects unknown tenants to.
// The configured sentinels come first, followed by their paths on the origin
// of every registered template.
func (r *Registry) Sentinels() []string {
	out := make([]string, len(r.sentinels))
	copy(out, r.sentinels)

	return out
}

// Substitute fills the placeholder of tmpl with the path-escaped tenant id.
func Substitute(tmpl, tenantID string) string {
	return strings.Replace(tmpl, Placeholder, url.PathEscape(tenantID), 1)
}

// DerivePreview returns the preview variant of a sandbox template by inserting
// PreviewMarker right after the placeholder path segment. Templates already
// carrying the marker, or lacking a "/{id}/" segment, are returned unchanged.
func DerivePreview(tmpl string) string {
	return deriveVariant(tmpl, PreviewMarker)
}

// DeriveCentral returns the customer-central variant of a sandbox template.
// It follows the same rules as DerivePreview.
func DeriveCentral(tmpl string) string {
	return deriveVariant(tmpl, CentralMarker)
}

// DerivePreviewURL returns the preview URL of a sandbox template or of a
// concrete sandbox URL of tenantID, e.g. https://x/acme/login becomes
// https://x/acme_Preview/login. Templates are handled like DerivePreview.
// URLs already carrying the marker, or with no tenantID path segment, are
// returned unchanged.
func DerivePreviewURL(sandboxURL, tenantID string) string {
	return deriveURLVariant(sandboxURL, tenantID, PreviewMarker)
}

// DeriveCentralURL returns the customer-central URL of a sandbox template or
// of a concrete sandbox URL of tenantID. It follows the same rules as
// DerivePreviewURL.
func DeriveCentralURL(sandboxURL, tenantID string) string {
	return deriveURLVariant(sandboxURL, tenantID, CentralMarker)
}

func deriveURLVariant(raw, tenantID, marker string) string {
	if strings.Contains(raw, Placeholder) {
		return deriveVariant(raw, marker)
	}
	if tenantID == "" {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	escaped := url.PathEscape(tenantID)
	segments := strings.Split(u.EscapedPath(), "/")
	for i, segment := range segments {
		if segment == escaped+marker {
			return raw
		}
		if segment != escaped {
			continue
		}
		segments[i] = escaped + marker
		rawPath := strings.Join(segments, "/")
		path, err := url.PathUnescape(rawPath)
		if err != nil {
			return raw
		}
		u.Path, u.RawPath = path, rawPath

		return u.String()
	}

	return raw
}

func deriveVariant(tmpl, marker string) string {
	segment := "/" + Placeholder + "/"
	if strings.Contains(tmpl, "/"+Placeholder+marker+"/") || !strings.Contains(tmpl, segment) {
		return tmpl
	}

	return strings.Replace(tmpl, segment, "/"+Placeholder+marker+"/", 1)
}
