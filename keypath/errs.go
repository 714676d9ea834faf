package keypath

import "errors"

var (
	// ErrMalformedPath reports location text that cannot be parsed,
	// typically unbalanced brackets or an unterminated quote.
	ErrMalformedPath = errors.New("malformed path")
)
