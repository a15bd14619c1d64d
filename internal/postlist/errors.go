package postlist

import "errors"

// ErrorMessage is the only text a reader ever sees about a failed load.
const ErrorMessage = "Error"

var (
	ErrLoadFailed      = errors.New("posts load failed")
	ErrUnknownCategory = errors.New("unknown category")
	ErrNotReady        = errors.New("posts are not loaded")
)
