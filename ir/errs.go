package ir

import "errors"

var (
	// ErrPathNotFound reports navigation through a missing field,
	// an out-of-bounds index, or a non-container mid-path.
	ErrPathNotFound = errors.New("path not found")

	// ErrIndexOutOfRange reports an array edit whose target index
	// does not exist.
	ErrIndexOutOfRange = errors.New("index out of range")
)
