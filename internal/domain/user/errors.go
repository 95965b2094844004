package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrPermissionRequired = errors.New("insufficient permissions")
	ErrCannotDeleteSelf   = errors.New("cannot delete your own account")

	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)
