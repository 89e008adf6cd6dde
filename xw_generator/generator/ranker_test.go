package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankOrdersByLetterFrequency(t *testing.T) {
	// Corpus letter counts: A=3 T=3 Z=3 R=2 C=1, total 12.
	// Scores: ZZZ=9/12, TAR=ART=8/12, CAT=7/12.
	got := Rank([]string{"CAT", "TAR", "ART", "ZZZ"})
	assert.Equal(t, []string{"ZZZ", "TAR", "ART", "CAT"}, got)
}

func TestRankIsStableOnTies(t *testing.T) {
	// Anagrams always score identically; input order must survive.
	got := Rank([]string{"RAT", "ART", "TAR"})
	assert.Equal(t, []string{"RAT", "ART", "TAR"}, got)
}

func TestRankDoesNotMutateInput(t *testing.T) {
	in := []string{"CAT", "ZZZ"}
	Rank(in)
	assert.Equal(t, []string{"CAT", "ZZZ"}, in)
}

func TestRankDegenerateInputs(t *testing.T) {
	assert.Empty(t, Rank(nil))
	assert.Equal(t, []string{""}, Rank([]string{""}))
}
