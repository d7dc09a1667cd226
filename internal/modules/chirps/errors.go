package chirps

import "errors"

var (
	ErrEmptyBody     = errors.New("chirp body is empty")
	ErrBodyTooLong   = errors.New("chirp is too long")
	ErrChirpNotFound = errors.New("chirp not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrNotOwner      = errors.New("not the author of this chirp")
)
