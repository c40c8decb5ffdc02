package v1handler

import (
	"net/http"
	"time"

	"tenantfinder/pkg/domain"
	"tenantfinder/pkg/probe"
	"tenantfinder/pkg/serrors"
)

// MaxProbeTimeout bounds the per-probe timeout a caller may request.
const MaxProbeTimeout = 10 * time.Second

// DataCenterList is the registry as served by GET /v1/datacenters.
type DataCenterList struct {
	Items []domain.DataCenter `json:"items"`
}

// ListDataCenters returns the registry entries in enumeration order.
func (h *Handler) ListDataCenters(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, &DataCenterList{Items: h.deps.Registry.Enumerate()})
}

// LocateProduction synchronously locates the production endpoint of a tenant.
// The optional timeout query parameter (a Go duration such as 1500ms) bounds
// every probe of the lookup.
func (h *Handler) LocateProduction(w http.ResponseWriter, r *http.Request) {
	tenantID := r.PathValue("tenantId")

	ctx := r.Context()
	if raw := r.URL.Query().Get("timeout"); raw != "" {
		timeout, err := parseProbeTimeout(raw)
		if err != nil {
			h.writeError(w, r, err)

			return
		}
		ctx = probe.WithTimeout(ctx, timeout)
	}

	match, err := h.deps.Discoverer.LocateProduction(ctx, tenantID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if match == nil {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "no data center serves tenant %q", tenantID))

		return
	}

	writeJSON(ctx, w, http.StatusOK, productionMatchJSON{match})
}

func parseProbeTimeout(raw string) (time.Duration, error) {
	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid timeout %q", raw)
	}
	if timeout <= 0 || timeout > MaxProbeTimeout {
		return 0, serrors.With(serrors.ErrBadRequest, "timeout must be within (0, %s]", MaxProbeTimeout)
	}

	return timeout, nil
}
