package http

import (
	"net/http"

	"github.com/workpulse/hrms-backend-go/internal/domain/user"
	"github.com/workpulse/hrms-backend-go/internal/handler/http/middleware"
	"github.com/workpulse/hrms-backend-go/internal/handler/http/response"
)

// actor pulls the authenticated Actor from the request. It only fails when a
// route is wired outside the auth middleware, which is a routing bug.
func actor(w http.ResponseWriter, r *http.Request) (user.Actor, bool) {
	a, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
	}
	return a, ok
}
