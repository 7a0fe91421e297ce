package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenStrings(t *testing.T) {
	require.Equal(t, "( -1.5 + 2 ) * 3 / 4 - 5", FormatTokens([]Token{lb, num(-1.5), add, num(2), rb, mul, num(3), div, num(4), sub, num(5)}))
	require.Equal(t, "", FormatTokens(nil))
}

func TestFormatNumber(t *testing.T) {
	require.Equal(t, "7", FormatNumber(7))
	require.Equal(t, "0.33", FormatNumber(0.33))
	require.Equal(t, "-8", FormatNumber(-8))
	require.Equal(t, "1e+06", FormatNumber(1000000))
}

func TestPrecedence(t *testing.T) {
	require.Equal(t, 2, add.Precedence())
	require.Equal(t, 2, sub.Precedence())
	require.Equal(t, 3, mul.Precedence())
	require.Equal(t, 3, div.Precedence())
	require.Equal(t, 1, lb.Precedence())
	require.Equal(t, 1, rb.Precedence())
	require.Equal(t, 0, precedence(num(4)))
}
