package monoguard

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLevel indicates a token in the input is not an integer.
	ErrInvalidLevel = errors.New("monoguard: level is not an integer")
	// ErrInvalidExpression indicates an expression rule failed to compile.
	ErrInvalidExpression = errors.New("monoguard: invalid rule expression")
)

// ParseError locates a malformed token in the input.
type ParseError struct {
	Line   int
	Column int
	Token  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %q: %v", e.Line, e.Column, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
