package inspect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuoteSymbol(t *testing.T) {
	require.Equal(t, "a", quoteSymbol('a'))
	require.Equal(t, `\n`, quoteSymbol('\n'))
	require.Equal(t, `\t`, quoteSymbol('\t'))
	require.Equal(t, `\'`, quoteSymbol('\''))
	require.Equal(t, "é", quoteSymbol('é'))
}
