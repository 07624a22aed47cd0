package parse

import "errors"

var (
	// ErrUnknownTag is returned for an unrecognized value type byte.
	ErrUnknownTag = errors.New("unknown tag")

	// ErrTrailingData is returned when bytes remain after a complete
	// record has been decoded.
	ErrTrailingData = errors.New("trailing data")
)
