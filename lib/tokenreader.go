package lib

// TokenReader yields tokens one at a time. Once done is true every further
// call reports done as well.
type TokenReader interface {
	Next() (tok Token, done bool, err error)
	Peek() (tok Token, done bool, err error)
}
