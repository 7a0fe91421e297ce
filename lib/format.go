package lib

import (
	"strconv"
	"strings"
)

func (o Operand) String() string {
	return FormatNumber(o.Value)
}

func (o Operator) String() string {
	switch o.Kind {
	case OperatorAdd:
		return "+"
	case OperatorSub:
		return "-"
	case OperatorMul:
		return "*"
	case OperatorDiv:
		return "/"
	default:
		return "?"
	}
}

func (LeftBracket) String() string  { return "(" }
func (RightBracket) String() string { return ")" }

// FormatTokens joins tokens with single spaces, e.g. "1 2 3 * +".
func FormatTokens(tokens []Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, tok.String())
	}
	return strings.Join(parts, " ")
}

// FormatNumber prints the shortest form that reads back as value.
func FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
