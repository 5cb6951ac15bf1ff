package office

import "errors"

var (
	ErrNotFound    = errors.New("office not found")
	ErrPhotoSave   = errors.New("photo save failed")
	ErrPhotoRemove = errors.New("photo directory removal failed")
)
