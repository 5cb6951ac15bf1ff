package auth

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateTel   = errors.New("tel already registered")
	ErrBlocked        = errors.New("user blocked")
	ErrBadPassword    = errors.New("bad password")
)
