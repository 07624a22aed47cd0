package wire

import "errors"

var (
	// ErrUnexpectedEOF is returned when the buffer is exhausted in the
	// middle of a field. The format has no resynchronization marker, so
	// this is always fatal to the current decode.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrInvalidEncoding is returned for malformed string payloads.
	ErrInvalidEncoding = errors.New("invalid encoding")
)
