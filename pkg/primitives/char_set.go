package primitives

import (
	"fmt"
	"math/bits"
	"strings"
)

// CharSet efficiently represents a set of grid letters using bit manipulation.
// It supports the uppercase letters 'A' (65) to 'Z' (90), which fits in a uint32.
type CharSet struct {
	bits  uint32
	count int
}

const (
	minChar  = 'A'
	maxChar  = 'Z'
	numChars = maxChar - minChar + 1 // 26 letters
)

// NewCharSet creates a new optimized character set.
func NewCharSet() *CharSet {
	return &CharSet{}
}

// CharSetOf builds a set from the letters of a string.
func CharSetOf(word string) *CharSet {
	c := &CharSet{}
	for _, r := range word {
		// Out-of-range runes are the caller's sanitization bug; skip them here.
		_ = c.Add(r)
	}
	return c
}

// Add adds a letter to the set.
func (c *CharSet) Add(r rune) error {
	if r < minChar || r > maxChar {
		return fmt.Errorf("character %c is out of range", r)
	}

	bitPos := uint(r - minChar)
	if c.bits&(1<<bitPos) == 0 {
		c.bits |= 1 << bitPos
		c.count = bits.OnesCount32(c.bits)
	}
	return nil
}

// AddAll adds all letters from another set to this set.
func (c *CharSet) AddAll(other *CharSet) {
	oldBits := c.bits
	c.bits |= other.bits
	if c.bits != oldBits {
		c.count = bits.OnesCount32(c.bits)
	}
}

// Contains checks if a letter is in the set.
func (c *CharSet) Contains(r rune) bool {
	if r < minChar || r > maxChar {
		return false
	}
	bitPos := uint(r - minChar)
	return c.bits&(1<<bitPos) != 0
}

// ContainsAny reports whether the two sets share at least one letter.
func (c *CharSet) ContainsAny(other *CharSet) bool {
	return c.bits&other.bits != 0
}

// ContainsAll reports whether every letter of other is in the set.
func (c *CharSet) ContainsAll(other *CharSet) bool {
	return c.bits&other.bits == other.bits
}

// Count returns the number of letters in the set.
func (c *CharSet) Count() int {
	return c.count
}

// Clear removes all letters from the set.
func (c *CharSet) Clear() {
	c.bits = 0
	c.count = 0
}

// Clone creates a copy of the character set.
func (c *CharSet) Clone() *CharSet {
	return &CharSet{
		bits:  c.bits,
		count: c.count,
	}
}

// String returns a string representation of the set.
func (c *CharSet) String() string {
	if c.count == 0 {
		return "letters [] (0/26)"
	}

	var chars []string
	for i := range uint(numChars) {
		if c.bits&(1<<i) != 0 {
			chars = append(chars, fmt.Sprintf("'%c'", rune(minChar+i)))
		}
	}
	return fmt.Sprintf("letters [%s] (%d/%d)", strings.Join(chars, ", "), c.count, numChars)
}
