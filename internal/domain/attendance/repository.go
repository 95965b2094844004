package attendance

import (
	"context"
	"time"
)

// SignInRepository defines data access for attendance records.
type SignInRepository interface {
	Create(ctx context.Context, s SignIn) (SignIn, error)
	GetByID(ctx context.Context, id string) (SignIn, error)

	// GetOpen returns the open (no sign-out) record for an employee on a
	// date, or nil when none exists. Used to enforce the single-open-
	// session invariant.
	GetOpen(ctx context.Context, employeeID string, date time.Time) (*SignIn, error)

	// OpenEmployeeIDs returns which of the given employees have an open
	// record on the date. Used by bulk sign-in partitioning.
	OpenEmployeeIDs(ctx context.Context, employeeIDs []string, date time.Time) ([]string, error)

	SetSignOut(ctx context.Context, id string, signOutTime time.Time, signedOutBy string) error

	List(ctx context.Context, filter ListSignInsFilter) ([]SignIn, int64, error)
	ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]SignIn, error)
}

// SignInService defines attendance ledger operations.
type SignInService interface {
	SignIn(ctx context.Context, req SignInRequest) (SignInResponse, error)
	BulkSignIn(ctx context.Context, req BulkSignInRequest) (BulkSignInResponse, error)
	SignOut(ctx context.Context, req SignOutRequest) (SignInResponse, error)

	List(ctx context.Context, filter ListSignInsFilter) ([]SignInResponse, int64, error)
	ListToday(ctx context.Context) ([]SignInResponse, error)
	ListActive(ctx context.Context) ([]SignInResponse, error)
	History(ctx context.Context, employeeID string, start, end time.Time) ([]SignInResponse, error)
}
