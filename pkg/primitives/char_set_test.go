package primitives_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosswarped.com/weave/pkg/primitives"
)

func TestCharSetAddContains(t *testing.T) {
	c := primitives.NewCharSet()
	require.NoError(t, c.Add('A'))
	require.NoError(t, c.Add('Z'))
	require.Error(t, c.Add('a'), "lowercase is out of range")
	require.Error(t, c.Add(' '))

	assert.True(t, c.Contains('A'))
	assert.True(t, c.Contains('Z'))
	assert.False(t, c.Contains('B'))
	assert.False(t, c.Contains('a'))
	assert.Equal(t, 2, c.Count())
}

func TestCharSetOf(t *testing.T) {
	c := primitives.CharSetOf("BANANA")
	assert.Equal(t, 3, c.Count()) // B, A, N
	assert.True(t, c.Contains('B'))
	assert.True(t, c.Contains('A'))
	assert.True(t, c.Contains('N'))
}

func TestCharSetContainsAny(t *testing.T) {
	cat := primitives.CharSetOf("CAT")
	art := primitives.CharSetOf("ART")
	dog := primitives.CharSetOf("DOG")

	assert.True(t, cat.ContainsAny(art))
	assert.False(t, cat.ContainsAny(dog))
	assert.False(t, primitives.NewCharSet().ContainsAny(cat))
}

func TestCharSetContainsAll(t *testing.T) {
	tart := primitives.CharSetOf("TART")
	art := primitives.CharSetOf("ART")

	assert.True(t, tart.ContainsAll(art))
	assert.False(t, art.ContainsAll(primitives.CharSetOf("CART")))
}

func TestCharSetCloneIsIndependent(t *testing.T) {
	orig := primitives.CharSetOf("AB")
	clone := orig.Clone()
	require.NoError(t, clone.Add('C'))

	assert.False(t, orig.Contains('C'))
	assert.True(t, clone.Contains('C'))
}

func TestCharSetAddAllAndClear(t *testing.T) {
	c := primitives.CharSetOf("AB")
	c.AddAll(primitives.CharSetOf("BC"))
	assert.Equal(t, 3, c.Count())

	c.Clear()
	assert.Zero(t, c.Count())
	assert.False(t, c.Contains('A'))
}
