package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeNumberExists = errors.New("employee number already exists")
	ErrUserAlreadyLinked    = errors.New("user account already linked to another employee")
	ErrEmployeeInactive     = errors.New("employee is inactive")
)
