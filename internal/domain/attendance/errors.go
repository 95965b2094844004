package attendance

import "errors"

var (
	ErrAlreadySignedIn  = errors.New("employee already has an open sign-in for this date")
	ErrAlreadySignedOut = errors.New("sign-in record already has a sign-out time")
	ErrSignInNotFound   = errors.New("sign-in record not found")
	ErrNoneToSignIn     = errors.New("all requested employees already have open sign-ins")
	ErrEmployeeNotFound = errors.New("referenced employee not found")
	ErrSignOutBeforeIn  = errors.New("sign-out time must be after the sign-in time")
)
