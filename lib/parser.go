package lib

// InfixToPostfix converts expr to reverse polish order.
func InfixToPostfix(expr string) ([]Token, error) {
	return ToPostfix(NewTokenizer(expr))
}

// ConvertTokens converts an already lexed infix token list.
func ConvertTokens(tokens []Token) ([]Token, error) {
	return ToPostfix(newTokenBuffer(tokens...))
}

// ToPostfix runs the shunting-yard algorithm over the tokens of reader. The
// result holds only operands and operators.
func ToPostfix(reader TokenReader) ([]Token, error) {
	c := converter{
		postfix: []Token{},
		opStack: []Token{},
	}

	for {
		tok, done, err := reader.Next()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		err = c.handle(tok)
		if err != nil {
			return nil, err
		}
	}

	err := c.flush()
	if err != nil {
		return nil, err
	}
	return c.postfix, nil
}

type converter struct {
	postfix []Token
	opStack []Token
}

func (c *converter) handle(tok Token) error {
	switch tok := tok.(type) {
	case Operand:
		c.postfix = append(c.postfix, tok)
	case Operator:
		// equal precedence pops too, which keeps - and / left associative
		for len(c.opStack) > 0 && tok.Precedence() <= precedence(c.top()) {
			c.postfix = append(c.postfix, c.pop())
		}
		c.push(tok)
	case LeftBracket:
		c.push(tok)
	case RightBracket:
		for len(c.opStack) > 0 && !isLeftBracket(c.top()) {
			c.postfix = append(c.postfix, c.pop())
		}
		if len(c.opStack) == 0 {
			return ErrMismatchedParentheses
		}
		c.pop()
	}
	return nil
}

func (c *converter) flush() error {
	for len(c.opStack) > 0 {
		op := c.pop()
		if isLeftBracket(op) {
			return ErrMismatchedParentheses
		}
		c.postfix = append(c.postfix, op)
	}
	return nil
}

func (c *converter) top() Token {
	return c.opStack[len(c.opStack)-1]
}

func (c *converter) pop() Token {
	tok := c.top()
	c.opStack = c.opStack[:len(c.opStack)-1]
	return tok
}

func (c *converter) push(tok Token) {
	c.opStack = append(c.opStack, tok)
}

func isLeftBracket(tok Token) bool {
	_, ok := tok.(LeftBracket)
	return ok
}
