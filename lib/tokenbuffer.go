package lib

// tokenBuffer replays an already lexed token list through the TokenReader
// interface.
type tokenBuffer struct {
	tokens  []Token
	current int
}

func newTokenBuffer(tokens ...Token) *tokenBuffer {
	return &tokenBuffer{
		tokens:  tokens,
		current: 0,
	}
}

func (tb *tokenBuffer) Next() (Token, bool, error) {
	tok, done, err := tb.Peek()
	if !done {
		tb.current++
	}
	return tok, done, err
}

func (tb *tokenBuffer) Peek() (Token, bool, error) {
	if tb.current >= len(tb.tokens) {
		return nil, true, nil
	}
	return tb.tokens[tb.current], false, nil
}

func (tb *tokenBuffer) Write(tok Token) {
	tb.tokens = append(tb.tokens, tok)
}
