package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/shopyard/shopyard-backend/pkg/logger"
)

const (
	requestIDHeader = "X-Request-Id"
	// Client-supplied ids are kept as-is up to this length so storefront
	// callers can correlate their own traces; anything longer is replaced.
	maxRequestIDLength = 64
)

// RequestID tags every request with an id, echoed on the response header and
// attached to the request-scoped log context.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := strings.TrimSpace(r.Header.Get(requestIDHeader))
			if reqID == "" || len(reqID) > maxRequestIDLength {
				reqID = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
