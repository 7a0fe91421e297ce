package lib

// Shorthands for building expected token lists.
var (
	add = Operator{Kind: OperatorAdd}
	sub = Operator{Kind: OperatorSub}
	mul = Operator{Kind: OperatorMul}
	div = Operator{Kind: OperatorDiv}
	lb  = LeftBracket{}
	rb  = RightBracket{}
)

func num(v float64) Token {
	return Operand{Value: v}
}
