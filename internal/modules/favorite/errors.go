package favorite

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrOfficeNotFound = errors.New("office not found")
	ErrAdminForbidden = errors.New("admin cannot have favorites")
	ErrAlreadyAdded   = errors.New("office already in favorites")
	ErrNotFavorite    = errors.New("office not in favorites")
)
