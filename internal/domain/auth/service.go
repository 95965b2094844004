package auth

import (
	"context"

	"github.com/sitehub/sitehub-backend-go/internal/domain/user"
)

// AuthService defines authentication operations.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh validates a persisted refresh token and issues a new
	// access token.
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)

	// Logout revokes the refresh token server-side.
	Logout(ctx context.Context, refreshToken string) error

	// Me returns the authenticated user's profile.
	Me(ctx context.Context) (user.UserResponse, error)

	// ChangePassword verifies the current password and stores a new hash.
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error

	// LoginWithGoogle completes an OAuth code exchange and logs in the
	// matching existing account.
	LoginWithGoogle(ctx context.Context, code string) (LoginResponse, error)
}
