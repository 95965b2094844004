package payroll

import "errors"

var (
	ErrNoEntriesForProject = errors.New("no time entries for this project in the requested range")
	ErrInvalidDateRange    = errors.New("start date must not be after end date")
)
