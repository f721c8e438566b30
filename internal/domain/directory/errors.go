package directory

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("directory: employee not found")
	ErrDuplicateEmployeeID = errors.New("directory: duplicate employee id")
	ErrUserNotFound        = errors.New("directory: current user not found")
)
