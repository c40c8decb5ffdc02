package v1handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"tenantfinder/pkg/domain"
	"tenantfinder/pkg/serrors"
)

// CreateDiscoveryRequest is the body of POST /v1/discoveries.
type CreateDiscoveryRequest struct {
	TenantID string `json:"tenantId"`
	// MaxIndex is optional; zero uses the configured default.
	MaxIndex int `json:"maxIndex,omitempty"`
}

// DiscoveryList is a page of discoveries.
type DiscoveryList struct {
	Items      []domain.Discovery `json:"items"`
	NextCursor *string            `json:"nextCursor"`
}

func parseDiscoveryID(r *http.Request) (domain.DiscoveryID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return domain.DiscoveryID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid discovery id")
	}

	return domain.DiscoveryID(id), nil
}

// CreateDiscovery schedules a discovery for the tenant named in the body.
func (h *Handler) CreateDiscovery(w http.ResponseWriter, r *http.Request) {
	var req CreateDiscoveryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	d, err := h.deps.Finder.Enqueue(r.Context(), req.TenantID, req.MaxIndex)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	status := http.StatusAccepted
	if d.Status == domain.DiscoveryStatusCompleted {
		status = http.StatusOK
	}
	writeJSON(r.Context(), w, status, discoveryJSON{d})
}

// GetDiscovery returns a discovery by ID.
func (h *Handler) GetDiscovery(w http.ResponseWriter, r *http.Request) {
	id, err := parseDiscoveryID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	d, err := h.deps.Finder.Result(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, discoveryJSON{d})
}

// DeleteDiscovery soft deletes a discovery by ID.
func (h *Handler) DeleteDiscovery(w http.ResponseWriter, r *http.Request) {
	id, err := parseDiscoveryID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Finder.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListDiscoveries returns a page of discoveries filtered by the tenantId and
// status query parameters.
func (h *Handler) ListDiscoveries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := uint(DefaultLimit)
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "limit must be a positive integer"))

			return
		}
		limit = uint(parsed)
	}

	discoveries, nextCursor, err := h.deps.Finder.Discoveries(r.Context(),
		query.Get("tenantId"),
		domain.DiscoveryStatus(query.Get("status")),
		query.Get("cursor"),
		limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	out := DiscoveryList{Items: discoveries}
	if out.Items == nil {
		out.Items = []domain.Discovery{}
	}
	if nextCursor != "" {
		out.NextCursor = &nextCursor
	}

	writeJSON(r.Context(), w, http.StatusOK, &out)
}
