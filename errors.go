// Package mtif reads and writes the Movable Type import/export format, a
// line-oriented text format used to move blog posts between systems.
//
// A document is a sequence of posts, each terminated by a line of eight
// dashes. A post opens with single-line "LABEL: value" fields and continues
// with blocks introduced by a five-dash separator line, each holding a
// "LABEL:" line followed by a value that may span many lines. Field labels
// map onto a fixed vocabulary of keys (see Key); anything else is dropped.
//
// Parsing produces typed values (integers, timestamps, strings) and
// serialization regenerates the original text line for line, so a document
// that is parsed and written back unchanged comes out byte-identical.
package mtif

import "errors"

// Sentinel errors for programmatic handling. Parsing and serialization never
// fail; these are returned by accessors and by the I/O and export helpers.
var (
	ErrInvalidKey     = errors.New("invalid key")
	ErrMultivalue     = errors.New("key holds multiple values")
	ErrSingleValue    = errors.New("key holds a single value")
	ErrInvalidPattern = errors.New("invalid regex pattern")
	ErrUnknownFormat  = errors.New("unknown export format")
	ErrDecompress     = errors.New("decompression failed")
)
