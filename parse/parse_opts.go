package parse

import (
	"github.com/hornwitser/factorio-dat/format"
)

type parseOpts struct {
	format   *format.Format
	fileName string
}

type ParseOption func(*parseOpts)

// ParseFormat names the format explicitly, taking precedence over any
// file name inference.
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = &f }
}

// ParseFileName provides a file name the format may be inferred from
// when no explicit format is given.
func ParseFileName(name string) ParseOption {
	return func(o *parseOpts) { o.fileName = name }
}
