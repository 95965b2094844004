package user

import (
	"context"
	"time"
)

// UserRepository defines data access for user accounts. Soft-deleted rows
// are invisible to every method except hard lookups by refresh token.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]User, int64, error)
	Update(ctx context.Context, u User) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	SoftDelete(ctx context.Context, id string, deletedBy string) error
}

// RefreshTokenRepository persists refresh tokens so they can be revoked
// server-side.
type RefreshTokenRepository interface {
	Store(ctx context.Context, userID string, token string, expiresAt time.Time) error
	Get(ctx context.Context, token string) (RefreshToken, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}

// UserService defines admin user management operations.
type UserService interface {
	List(ctx context.Context, filter ListUsersFilter) ([]UserResponse, int64, error)
	Get(ctx context.Context, id string) (UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id string) error
	ResetPassword(ctx context.Context, id string) (ResetPasswordResponse, error)
}
