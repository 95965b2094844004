package attendance

import "time"

// SignIn is one sign-in/sign-out pair for an employee on a work day.
// SignOutTime is nil while the session is open; at most one open session
// may exist per (employee, date).
type SignIn struct {
	ID          string
	EmployeeID  string
	Date        time.Time // calendar day, midnight UTC
	SignInTime  time.Time
	SignOutTime *time.Time
	ProjectID   *string
	Location    *string
	Notes       *string
	SignedInBy  *string
	SignedOutBy *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName   *string
	EmployeeNumber *string
	ProjectName    *string
}

// IsOpen reports whether the session has not been signed out yet.
func (s SignIn) IsOpen() bool {
	return s.SignOutTime == nil
}
