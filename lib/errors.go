package lib

import (
	"errors"
)

var (
	ErrMismatchedParentheses = errors.New("mismatched parentheses")
	ErrBadExpression         = errors.New("bad input expression")
	ErrDivisionByZero        = errors.New("division by zero")
)

// InvalidTokenError reports a character run that is not a number. Text is
// the run exactly as it appeared in the input.
type InvalidTokenError struct {
	Text string
}

func (e *InvalidTokenError) Error() string {
	return "bad token " + e.Text
}
