package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/workpulse/hrms-backend-go/internal/domain/auth"
	"github.com/workpulse/hrms-backend-go/internal/domain/user"
	"github.com/workpulse/hrms-backend-go/internal/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*user.User
}

var _ user.UserRepository = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func newTestService(t *testing.T) auth.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{byEmail: map[string]*user.User{
		"ana@example.com": {
			ID:           "user-1",
			EmployeeID:   "emp-1",
			Email:        "ana@example.com",
			PasswordHash: string(hash),
			Role:         user.RoleEmployee,
		},
	}}
	return NewAuthService(repo, jwt.NewJWTService("test-secret", "15m"))
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials return a token", func(t *testing.T) {
		svc := newTestService(t)

		resp, err := svc.Login(ctx, auth.LoginRequest{Email: "ana@example.com", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "user-1", resp.UserID)
		assert.Equal(t, "emp-1", resp.EmployeeID)
		assert.Equal(t, "EMPLOYEE", resp.Role)
		assert.Greater(t, resp.AccessTokenExpiresAt, int64(0))
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.Login(ctx, auth.LoginRequest{Email: "ana@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email gets the same error as a bad password", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.Login(ctx, auth.LoginRequest{Email: "ghost@example.com", Password: "s3cret-pass"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.Login(ctx, auth.LoginRequest{Email: "not-an-email", Password: ""})
		assert.Error(t, err)
	})
}
