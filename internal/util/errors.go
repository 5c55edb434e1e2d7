package util

import "errors"

var (
	ErrEmptyTranscript  = errors.New("no transcript provided")
	ErrEmptyWord        = errors.New("word must not be empty")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrInvalidSession   = errors.New("invalid session token")
	ErrStoreUnavailable = errors.New("profile store unavailable")
)
