package auth

import "context"

// AuthService verifies credentials and mints access tokens. The ledgers never
// call this directly; they consume the Actor the middleware derives from the
// token.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
