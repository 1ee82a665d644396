// Package requestid assigns each request a correlation ID. An incoming
// X-Request-ID from the gateway is trusted and propagated; otherwise a new
// one is generated.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"touchline/pkg/requestcontext"
)

const Header = "X-Request-ID"

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(Header, requestID)
		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
