package application

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrAdminForbidden = errors.New("admin cannot own applications")
	ErrAlreadyExists  = errors.New("application already exists")
	ErrNotFound       = errors.New("application not found")
)
