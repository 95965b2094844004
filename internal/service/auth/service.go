package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/sitehub/sitehub-backend-go/internal/domain/auth"
	"github.com/sitehub/sitehub-backend-go/internal/domain/user"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/jwt"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	user.RefreshTokenRepository
	jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(
	userRepository user.UserRepository,
	refreshTokenRepository user.RefreshTokenRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:         userRepository,
		RefreshTokenRepository: refreshTokenRepository,
		Service:                jwtService,
		googleService:          googleService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		// Uniform error so login failures do not reveal which emails exist.
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if !userData.IsActive {
		return auth.LoginResponse{}, user.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData)
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User) (auth.LoginResponse, error) {
	accessToken, accessExpiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.EmployeeID, userData.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := a.RefreshTokenRepository.Store(ctx, userData.ID, refreshToken, time.Unix(refreshExpiresAt, 0)); err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken:         accessToken,
		ExpiresAt:           accessExpiresAt,
		User:                user.ToResponse(userData),
		RefreshToken:        refreshToken,
		RefreshTokenExpires: refreshExpiresAt,
	}, nil
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	if refreshToken == "" {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	stored, err := a.RefreshTokenRepository.Get(ctx, refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	if stored.RevokedAt != nil {
		return auth.RefreshResponse{}, auth.ErrRefreshTokenRevoked
	}

	if time.Now().After(stored.ExpiresAt) {
		return auth.RefreshResponse{}, auth.ErrTokenExpired
	}

	userData, err := a.UserRepository.GetByID(ctx, stored.UserID)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrUserNotFound
	}

	if !userData.IsActive {
		return auth.RefreshResponse{}, user.ErrUserInactive
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.EmployeeID, userData.Role)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.RefreshResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return a.RefreshTokenRepository.Revoke(ctx, refreshToken)
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (user.UserResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	userData, err := a.UserRepository.GetByID(ctx, actor.UserID)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(userData), nil
}

// ChangePassword implements auth.AuthService.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	userData, err := a.UserRepository.GetByID(ctx, actor.UserID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.UserRepository.UpdatePassword(ctx, userData.ID, string(hash)); err != nil {
		return err
	}

	// Changing the password invalidates all outstanding sessions.
	return a.RefreshTokenRepository.RevokeAllForUser(ctx, userData.ID)
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.LoginResponse, error) {
	token, err := a.googleService.Exchange(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	info, err := a.googleService.FetchUser(ctx, token)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to fetch google account: %w", err)
	}

	if !info.VerifiedEmail {
		return auth.LoginResponse{}, auth.ErrOAuthEmailUnknown
	}

	userData, err := a.UserRepository.GetByEmail(ctx, info.Email)
	if err != nil {
		// Google login never provisions accounts; the email must already
		// belong to a user an admin created.
		return auth.LoginResponse{}, auth.ErrOAuthEmailUnknown
	}

	if !userData.IsActive {
		return auth.LoginResponse{}, user.ErrUserInactive
	}

	return a.issueTokens(ctx, userData)
}
