package user

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/sitehub/sitehub-backend-go/internal/domain/user"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/email"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	user.UserRepository
	user.RefreshTokenRepository
	emailService email.EmailService
}

func NewUserService(
	userRepository user.UserRepository,
	refreshTokenRepository user.RefreshTokenRepository,
	emailService email.EmailService,
) user.UserService {
	return &UserServiceImpl{
		UserRepository:         userRepository,
		RefreshTokenRepository: refreshTokenRepository,
		emailService:           emailService,
	}
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context, filter user.ListUsersFilter) ([]user.UserResponse, int64, error) {
	filter.Normalize()

	users, total, err := s.UserRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}

	return responses, total, nil
}

// Get implements user.UserService.
func (s *UserServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(u), nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
		IsActive:     true,
		CreatedBy:    &actor.UserID,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	existing, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.FirstName != nil {
		existing.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		existing.LastName = *req.LastName
	}
	if req.Role != nil {
		existing.Role = *req.Role
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	existing.UpdatedBy = &actor.UserID

	if err := s.UserRepository.Update(ctx, existing); err != nil {
		return user.UserResponse{}, err
	}

	// Deactivation kills all outstanding sessions.
	if req.IsActive != nil && !*req.IsActive {
		if err := s.RefreshTokenRepository.RevokeAllForUser(ctx, existing.ID); err != nil {
			slog.Warn("failed to revoke sessions for deactivated user", "user_id", existing.ID, "error", err)
		}
	}

	return s.Get(ctx, req.ID)
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	if actor.UserID == id {
		return user.ErrCannotDeleteSelf
	}

	if err := s.UserRepository.SoftDelete(ctx, id, actor.UserID); err != nil {
		return err
	}

	return s.RefreshTokenRepository.RevokeAllForUser(ctx, id)
}

const passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generateTemporaryPassword(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		out[i] = passwordAlphabet[n.Int64()]
	}
	return string(out), nil
}

// ResetPassword implements user.UserService. The temporary password is
// mailed when SMTP is configured; otherwise it is returned once in the
// response body.
func (s *UserServiceImpl) ResetPassword(ctx context.Context, id string) (user.ResetPasswordResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.ResetPasswordResponse{}, err
	}

	temporaryPassword, err := generateTemporaryPassword(12)
	if err != nil {
		return user.ResetPasswordResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return user.ResetPasswordResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.UserRepository.UpdatePassword(ctx, u.ID, string(hash)); err != nil {
		return user.ResetPasswordResponse{}, err
	}

	if err := s.RefreshTokenRepository.RevokeAllForUser(ctx, u.ID); err != nil {
		return user.ResetPasswordResponse{}, err
	}

	if s.emailService.Configured() {
		if err := s.emailService.SendTemporaryPassword(u.Email, u.FirstName, temporaryPassword); err != nil {
			slog.Error("failed to send temporary password email", "user_id", u.ID, "error", err)
			return user.ResetPasswordResponse{TemporaryPassword: &temporaryPassword}, nil
		}
		return user.ResetPasswordResponse{EmailSent: true}, nil
	}

	return user.ResetPasswordResponse{TemporaryPassword: &temporaryPassword}, nil
}
