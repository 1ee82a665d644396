// Package staffauth extracts the acting staff identity from gateway headers.
// The service sits behind an authenticating gateway that verifies staff
// sessions and forwards the identity; this middleware only parses it into
// the request context. Requests without the headers pass through and are
// rejected by the handlers.
package staffauth

import (
	"net/http"

	id "touchline/pkg/domain"
	"touchline/pkg/requestcontext"
)

const (
	HeaderStaffID   = "X-Staff-ID"
	HeaderStaffRole = "X-Staff-Role"
)

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if raw := r.Header.Get(HeaderStaffID); raw != "" {
			if staffID, err := id.ParseStaffID(raw); err == nil {
				ctx = requestcontext.WithStaffID(ctx, staffID)
				if role := r.Header.Get(HeaderStaffRole); role != "" {
					ctx = requestcontext.WithStaffRole(ctx, role)
				}
			}
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
