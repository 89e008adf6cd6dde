package generator

import (
	"cmp"
	"slices"
)

// Rank reorders words descending by how useful they are expected to be as
// early placements. A word scores the sum of its letters' relative
// frequencies across the whole input list: words full of common letters
// offer more crossing opportunities, so placing them first leaves later
// words more to intersect with. Equal scores keep their input order.
func Rank(words []string) []string {
	var total float64
	counts := make(map[rune]float64)
	for _, w := range words {
		for _, r := range w {
			counts[r]++
			total++
		}
	}
	if total == 0 {
		return slices.Clone(words)
	}

	scores := make(map[string]float64, len(words))
	for _, w := range words {
		var s float64
		for _, r := range w {
			s += counts[r] / total
		}
		scores[w] = s
	}

	out := slices.Clone(words)
	slices.SortStableFunc(out, func(a, b string) int {
		return cmp.Compare(scores[b], scores[a])
	})
	return out
}
