package lib

import (
	"strconv"
	"strings"
)

// Tokenizer splits an expression into tokens lazily. A '-' read while
// allowNegation is set starts a negative operand instead of a subtraction.
type Tokenizer struct {
	expr          string
	current       int
	allowNegation bool
	peeked        *peekResult
}

type peekResult struct {
	tok  Token
	done bool
	err  error
}

func NewTokenizer(expr string) *Tokenizer {
	return &Tokenizer{
		expr:          expr,
		current:       0,
		allowNegation: true,
		peeked:        nil,
	}
}

// Tokenize reads every token of expr.
func Tokenize(expr string) ([]Token, error) {
	t := NewTokenizer(expr)
	tokens := []Token{}
	for {
		tok, done, err := t.Next()
		if err != nil {
			return nil, err
		}
		if done {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func (t *Tokenizer) Next() (Token, bool, error) {
	res, err := t.take()
	if err != nil {
		return nil, false, err
	}
	return res.tok, res.done, nil
}

func (t *Tokenizer) Peek() (Token, bool, error) {
	if t.peeked == nil {
		tok, done, err := t.scan()
		t.peeked = &peekResult{tok: tok, done: done, err: err}
	}
	return t.peeked.tok, t.peeked.done, t.peeked.err
}

func (t *Tokenizer) take() (peekResult, error) {
	if t.peeked != nil {
		res := *t.peeked
		// errors stay peeked so the tokenizer keeps failing
		if res.err == nil {
			t.peeked = nil
		}
		return res, res.err
	}
	tok, done, err := t.scan()
	if err != nil {
		t.peeked = &peekResult{err: err}
	}
	return peekResult{tok: tok, done: done}, err
}

func (t *Tokenizer) scan() (Token, bool, error) {
	for t.current < len(t.expr) && t.expr[t.current] == ' ' {
		t.current++
	}
	if t.current >= len(t.expr) {
		return nil, true, nil
	}

	ch := t.expr[t.current]
	t.current++

	var tok Token
	switch ch {
	case '+':
		tok = Operator{Kind: OperatorAdd}
	case '-':
		if t.allowNegation {
			value, err := t.readOperand(t.current)
			if err != nil {
				return nil, false, err
			}
			tok = Operand{Value: -value}
		} else {
			tok = Operator{Kind: OperatorSub}
		}
	case '*':
		tok = Operator{Kind: OperatorMul}
	case '/':
		tok = Operator{Kind: OperatorDiv}
	case '(':
		tok = LeftBracket{}
	case ')':
		tok = RightBracket{}
	default:
		value, err := t.readOperand(t.current - 1)
		if err != nil {
			return nil, false, err
		}
		tok = Operand{Value: value}
	}

	t.allowNegation = allowsNegation(tok)
	return tok, false, nil
}

func (t *Tokenizer) readOperand(start int) (float64, error) {
	value, n, err := ReadOperand(t.expr[start:])
	t.current = start + n
	return value, err
}

// ReadOperand parses the number at the start of s. The number runs up to the
// first space, operator or bracket; n is its length in bytes. A ',' is read
// as a decimal point.
func ReadOperand(s string) (value float64, n int, err error) {
	for n < len(s) && !isSeparator(s[n]) {
		n++
	}
	raw := s[:n]
	value, err = parseNumber(strings.Replace(raw, ",", ".", -1))
	if err != nil {
		return 0, n, &InvalidTokenError{Text: raw}
	}
	return value, n, nil
}

func isSeparator(ch byte) bool {
	switch ch {
	case ' ', '+', '-', '*', '/', '(', ')':
		return true
	}
	return false
}

// parseNumber only lets through plain decimal literals with an optional
// exponent. strconv alone would also take "inf", "nan" and hex floats.
func parseNumber(text string) (float64, error) {
	if text == "" || !(isDigit(text[0]) || text[0] == '.') {
		return 0, strconv.ErrSyntax
	}
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if !isDigit(ch) && ch != '.' && ch != 'e' && ch != 'E' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.ParseFloat(text, 64)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
