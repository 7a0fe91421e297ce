package lib

type OperatorKind int

const (
	OperatorAdd OperatorKind = iota
	OperatorSub
	OperatorMul
	OperatorDiv
)

const bracketPrecedence = 1

// Token is one of Operand, Operator, LeftBracket or RightBracket.
type Token interface {
	String() string
	isToken()
}

type Operand struct {
	Value float64
}

type Operator struct {
	Kind OperatorKind
}

type LeftBracket struct{}

type RightBracket struct{}

func (Operand) isToken()      {}
func (Operator) isToken()     {}
func (LeftBracket) isToken()  {}
func (RightBracket) isToken() {}

// Precedence is 2 for + and -, 3 for * and /.
func (o Operator) Precedence() int {
	switch o.Kind {
	case OperatorMul, OperatorDiv:
		return 3
	default:
		return 2
	}
}

func (LeftBracket) Precedence() int  { return bracketPrecedence }
func (RightBracket) Precedence() int { return bracketPrecedence }

func (o Operator) apply(a float64, b float64) (float64, error) {
	switch o.Kind {
	case OperatorAdd:
		return a + b, nil
	case OperatorSub:
		return a - b, nil
	case OperatorMul:
		return a * b, nil
	case OperatorDiv:
		if b == 0.0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return 0, ErrBadExpression
	}
}

// precedence returns 0 for operands, which never sit on the operator stack.
func precedence(tok Token) int {
	switch tok := tok.(type) {
	case Operator:
		return tok.Precedence()
	case LeftBracket:
		return tok.Precedence()
	case RightBracket:
		return tok.Precedence()
	default:
		return 0
	}
}

// Operator and LeftBracket tokens are followed by a negated operand rather
// than a subtraction.
func allowsNegation(tok Token) bool {
	switch tok.(type) {
	case Operand, RightBracket:
		return false
	default:
		return true
	}
}
