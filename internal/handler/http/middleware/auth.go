package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workpulse/hrms-backend-go/internal/domain/auth"
	"github.com/workpulse/hrms-backend-go/internal/domain/user"
	"github.com/workpulse/hrms-backend-go/internal/handler/http/response"
)

type actorKey struct{}

// ActorFromContext returns the Actor placed by AuthRequired.
func ActorFromContext(ctx context.Context) (user.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(user.Actor)
	return actor, ok
}

// AuthRequired rejects requests without a valid access token and derives the
// Actor from its claims. Everything downstream trusts the Actor and never
// touches raw claims again.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			userID, _ := claims["user_id"].(string)
			employeeID, _ := claims["employee_id"].(string)
			role, _ := claims["role"].(string)
			if userID == "" || role == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			actor := user.Actor{
				ID:         userID,
				EmployeeID: employeeID,
				Role:       user.Role(role),
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey{}, actor)))
		}
		return http.HandlerFunc(hfn)
	}
}
