package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChars(t *testing.T) {
	g, err := Chars("#..\n.@.\n")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())

	c, ok := g.Find(func(c Char) bool { return c == '@' })
	require.True(t, ok)
	assert.Equal(t, C(1, 0), c)

	v, _ := g.Get(C(0, 1))
	assert.Equal(t, Char('#'), v)

	assert.Equal(t, "#..\n.@.\n", g.String())
}

func TestParseCRLF(t *testing.T) {
	g, err := Chars("ab\r\ncd\r\n")
	require.NoError(t, err)
	assert.Equal(t, "ab\ncd\n", g.String())
}

func TestParseRagged(t *testing.T) {
	_, err := Chars("abc\nde\n")
	require.ErrorIs(t, err, ErrRaggedRows)
}

func TestParseEmpty(t *testing.T) {
	_, err := Chars("")
	require.ErrorIs(t, err, ErrDimensions)
}

func TestParseDigits(t *testing.T) {
	g, err := Parse("12\n34", func(r rune) int { return int(r - '0') })
	require.NoError(t, err)
	v, _ := g.Get(C(1, 1))
	assert.Equal(t, 2, v)
	assert.Equal(t, "12\n34\n", g.String())
}
