package lib

import (
	"math"
)

// Evaluate computes the value of an infix expression rounded to two decimal
// places.
func Evaluate(expr string) (float64, error) {
	postfix, err := InfixToPostfix(expr)
	if err != nil {
		return 0, err
	}
	return EvaluatePostfix(postfix)
}

// EvaluatePostfix computes a reverse polish token sequence. Exactly one value
// must be left once every token is consumed, so an empty sequence is
// ErrBadExpression.
func EvaluatePostfix(postfix []Token) (float64, error) {
	stack := []float64{}

	for _, tok := range postfix {
		switch tok := tok.(type) {
		case Operand:
			stack = append(stack, tok.Value)
		case Operator:
			if len(stack) < 2 {
				return 0, ErrBadExpression
			}
			a, b := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]
			value, err := tok.apply(a, b)
			if err != nil {
				return 0, err
			}
			stack = append(stack, value)
		default:
			// brackets never survive conversion
			return 0, ErrBadExpression
		}
	}

	if len(stack) != 1 {
		return 0, ErrBadExpression
	}
	return roundCents(stack[0]), nil
}

// math.Round breaks ties away from zero.
func roundCents(value float64) float64 {
	return math.Round(value*100) / 100
}
