// Package v1handler implements the version 1 JSON API of the tenant finder.
package v1handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"

	"tenantfinder/internal/discovery"
	"tenantfinder/internal/finder"
	"tenantfinder/pkg/datacenter"
	"tenantfinder/pkg/logger"
	"tenantfinder/pkg/serrors"
)

// DefaultLimit is the page size used when a list request does not set one.
const DefaultLimit = 20

// maxRequestBytes caps request bodies.
const maxRequestBytes = 1 << 16

// Deps holds the collaborators the handlers delegate to.
type Deps struct {
	Finder     finder.Finder
	Discoverer discovery.Discoverer
	Registry   *datacenter.Registry
}

// Handler serves the v1 routes.
type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register adds every v1 route to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/discoveries", h.CreateDiscovery)
	mux.HandleFunc("GET /v1/discoveries", h.ListDiscoveries)
	mux.HandleFunc("GET /v1/discoveries/{id}", h.GetDiscovery)
	mux.HandleFunc("DELETE /v1/discoveries/{id}", h.DeleteDiscovery)
	mux.HandleFunc("GET /v1/datacenters", h.ListDataCenters)
	mux.HandleFunc("GET /v1/tenants/{tenantId}/production", h.LocateProduction)
}

// ErrorBody is the JSON payload of every error response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse pairs an ErrorBody with the HTTP status it is sent with.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

var kindStatus = map[serrors.Kind]struct { //nolint: gochecknoglobals
	status  int
	message string
}{
	serrors.ErrBadRequest:  {http.StatusBadRequest, "bad request"},
	serrors.ErrNotFound:    {http.StatusNotFound, "resource not found"},
	serrors.ErrConflict:    {http.StatusConflict, "conflict"},
	serrors.ErrRateLimited: {http.StatusTooManyRequests, "too many requests"},
	serrors.ErrUnavailable: {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrTransient:   {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrTimeout:     {http.StatusGatewayTimeout, "request timed out"},
}

// NewError maps err to an ErrorResponse using its semantic kind. Errors
// without a known kind are logged and reported as internal errors without
// exposing their text.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	if errors.Is(err, context.DeadlineExceeded) {
		return &ErrorResponse{
			StatusCode: http.StatusGatewayTimeout,
			Response:   ErrorBody{Code: serrors.ErrTimeout.Error(), Message: "request timed out"},
		}
	}

	kind := serrors.KindOf(err)
	mapped, ok := kindStatus[kind]
	if !ok {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Response:   ErrorBody{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}

	message := mapped.message
	var sErr *serrors.Error
	if errors.As(err, &sErr) && sErr.Message() != "" {
		message = sErr.Message()
	}

	return &ErrorResponse{
		StatusCode: mapped.status,
		Response:   ErrorBody{Code: kind.Error(), Message: message},
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(r.Context(), w, res.StatusCode, &res.Response)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v jsonEncoder) {
	e := new(jx.Encoder)
	v.Encode(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := e.WriteTo(w); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{ Decode(d *jx.Decoder) error }) error {
	buf, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	d := jx.DecodeBytes(buf)
	if err := v.Decode(d); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if d.Next() != jx.Invalid {
		return serrors.With(serrors.ErrBadRequest, "invalid request body: unexpected trailing data")
	}

	return nil
}
