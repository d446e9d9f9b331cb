package pairup

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnCount indicates a line without exactly two columns.
	ErrColumnCount = errors.New("pairup: line must have exactly two columns")
	// ErrInvalidID indicates a column that is not an integer.
	ErrInvalidID = errors.New("pairup: location id is not an integer")
	// ErrLengthMismatch indicates left and right lists of different lengths.
	ErrLengthMismatch = errors.New("pairup: left and right lists must have the same length")
	// ErrEmptyList indicates a summary over no pairs.
	ErrEmptyList = errors.New("pairup: no pairs to summarize")
)

// ParseError locates a malformed line in the input.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
