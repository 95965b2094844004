package timeentry

import "errors"

var (
	ErrTimeEntryNotFound = errors.New("time entry not found")
	ErrHoursOutOfRange   = errors.New("hours must be greater than 0 and at most 24")
	ErrNotSignedOut      = errors.New("sign-in record has no sign-out time yet")
	ErrSignInNotFound    = errors.New("referenced sign-in record not found")
	ErrEmployeeNotFound  = errors.New("referenced employee not found")
	ErrProjectNotFound   = errors.New("referenced project not found")
	ErrAlreadyProcessed  = errors.New("time entry has already been approved or rejected")
	ErrTimesheetLocked   = errors.New("time entry belongs to an approved timesheet")
)
