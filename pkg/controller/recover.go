package controller

import (
	"net/http"

	"go.uber.org/zap"

	"tenantfinder/pkg/logger"
)

// WithRecover returns a middleware that logs panics raised by next and answers
// with a JSON 500. http.ErrAbortHandler is re-raised so net/http can abort the
// connection as usual.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler { //nolint: errorlint
				panic(p)
			}

			logger.Error(r.Context(), "recovered from handler panic",
				zap.Any("panic", p),
				zap.Stack("stack"))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"code":"INTERNAL","message":"internal error"}`))
		}()

		next.ServeHTTP(w, r)
	})
}
