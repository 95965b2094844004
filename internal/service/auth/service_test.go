package auth

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sitehub/sitehub-backend-go/internal/domain/auth"
	"github.com/sitehub/sitehub-backend-go/internal/domain/user"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testUserID   = "99999999-9999-4999-8999-999999999999"
	testEmail    = "admin@example.com"
	testPassword = "correct-horse-battery"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo(seed ...user.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]user.User)}
	for _, u := range seed {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, filter user.ListUsersFilter) ([]user.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) SoftDelete(ctx context.Context, id string, deletedBy string) error {
	delete(f.users, id)
	return nil
}

type fakeRefreshTokenRepo struct {
	tokens map[string]user.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]user.RefreshToken)}
}

func (f *fakeRefreshTokenRepo) Store(ctx context.Context, userID string, token string, expiresAt time.Time) error {
	f.tokens[token] = user.RefreshToken{UserID: userID, Token: token, ExpiresAt: expiresAt}
	return nil
}

func (f *fakeRefreshTokenRepo) Get(ctx context.Context, token string) (user.RefreshToken, error) {
	t, ok := f.tokens[token]
	if !ok {
		return user.RefreshToken{}, user.ErrRefreshTokenNotFound
	}
	return t, nil
}

func (f *fakeRefreshTokenRepo) Revoke(ctx context.Context, token string) error {
	t, ok := f.tokens[token]
	if !ok {
		return user.ErrRefreshTokenNotFound
	}
	now := time.Now()
	t.RevokedAt = &now
	f.tokens[token] = t
	return nil
}

func (f *fakeRefreshTokenRepo) RevokeAllForUser(ctx context.Context, userID string) error {
	now := time.Now()
	for token, t := range f.tokens {
		if t.UserID == userID && t.RevokedAt == nil {
			t.RevokedAt = &now
			f.tokens[token] = t
		}
	}
	return nil
}

func testJWTService() jwt.Service {
	return jwt.NewJWTService("test-secret", "15m", "168h")
}

func activeUser(t *testing.T) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return user.User{
		ID:           testUserID,
		Email:        testEmail,
		PasswordHash: string(hash),
		FirstName:    "Alex",
		LastName:     "Rivera",
		Role:         user.RoleOfficeAdmin,
		IsActive:     true,
	}
}

func actorContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	_, tokenString, err := ja.Encode(map[string]interface{}{
		"user_id": testUserID,
		"email":   testEmail,
		"role":    "OFFICE_ADMIN",
		"type":    "access",
	})
	require.NoError(t, err)
	token, err := ja.Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newService(users *fakeUserRepo, tokens *fakeRefreshTokenRepo) auth.AuthService {
	return NewAuthService(users, tokens, testJWTService(), nil)
}

func TestLogin(t *testing.T) {
	users := newFakeUserRepo(activeUser(t))
	tokens := newFakeRefreshTokenRepo()
	svc := newService(users, tokens)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, testEmail, resp.User.Email)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())

	// The refresh token must be stored so it can be revoked later.
	stored, err := tokens.Get(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, testUserID, stored.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newService(newFakeUserRepo(activeUser(t)), newFakeRefreshTokenRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: testEmail, Password: "not-the-password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newService(newFakeUserRepo(), newFakeRefreshTokenRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "nobody@example.com", Password: testPassword})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	u := activeUser(t)
	u.IsActive = false
	svc := newService(newFakeUserRepo(u), newFakeRefreshTokenRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: testEmail, Password: testPassword})
	assert.ErrorIs(t, err, user.ErrUserInactive)
}

func TestRefresh(t *testing.T) {
	users := newFakeUserRepo(activeUser(t))
	tokens := newFakeRefreshTokenRepo()
	svc := newService(users, tokens)

	login, err := svc.Login(context.Background(), auth.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefreshRevokedToken(t *testing.T) {
	users := newFakeUserRepo(activeUser(t))
	tokens := newFakeRefreshTokenRepo()
	svc := newService(users, tokens)

	login, err := svc.Login(context.Background(), auth.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)
	require.NoError(t, svc.Logout(context.Background(), login.RefreshToken))

	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshExpiredToken(t *testing.T) {
	users := newFakeUserRepo(activeUser(t))
	tokens := newFakeRefreshTokenRepo()
	svc := newService(users, tokens)

	require.NoError(t, tokens.Store(context.Background(), testUserID, "stale", time.Now().Add(-time.Hour)))

	_, err := svc.Refresh(context.Background(), "stale")
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestRefreshMissingToken(t *testing.T) {
	svc := newService(newFakeUserRepo(), newFakeRefreshTokenRepo())

	_, err := svc.Refresh(context.Background(), "")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutWithoutCookie(t *testing.T) {
	svc := newService(newFakeUserRepo(), newFakeRefreshTokenRepo())
	assert.NoError(t, svc.Logout(context.Background(), ""))
}

func TestChangePassword(t *testing.T) {
	users := newFakeUserRepo(activeUser(t))
	tokens := newFakeRefreshTokenRepo()
	svc := newService(users, tokens)
	ctx := actorContext(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, auth.ChangePasswordRequest{
		CurrentPassword: testPassword,
		NewPassword:     "an-even-longer-secret",
	})
	require.NoError(t, err)

	// Old sessions die with the old password.
	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)

	_, err = svc.Login(context.Background(), auth.LoginRequest{Email: testEmail, Password: testPassword})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Email: testEmail, Password: "an-even-longer-secret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	svc := newService(newFakeUserRepo(activeUser(t)), newFakeRefreshTokenRepo())

	err := svc.ChangePassword(actorContext(t), auth.ChangePasswordRequest{
		CurrentPassword: "not-the-password",
		NewPassword:     "an-even-longer-secret",
	})
	assert.ErrorIs(t, err, auth.ErrWrongPassword)
}
