package timesheet

import "errors"

var (
	ErrTimesheetNotFound = errors.New("timesheet not found")
	ErrTimesheetLocked   = errors.New("cannot edit approved timesheet")
	ErrDeleteNonDraft    = errors.New("only draft timesheets can be deleted")
)
