// Package generator builds dense crossword grids from a word list by
// randomized multi-start search.
//
// One trial seeds a grid with the highest-ranked word, then repeatedly
// places remaining words across existing letters, deferring and requeueing
// the ones that do not fit yet. Many independent trials run in parallel and
// the densest grid wins. The search is a Monte-Carlo heuristic, not an
// exact solver: a fixed seed makes it reproducible, a bigger budget makes
// it better.
package generator
