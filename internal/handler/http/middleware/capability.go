package middleware

import (
	"net/http"

	"github.com/workpulse/hrms-backend-go/internal/domain/user"
	"github.com/workpulse/hrms-backend-go/internal/handler/http/response"
)

// RequireCapability gates a route on a single capability check. Role policy
// lives in the capability table, not in the routing tree.
func RequireCapability(capability user.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Authentication required")
				return
			}

			if !user.Can(actor.Role, capability) {
				response.Forbidden(w, "You do not have permission to perform this action")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
