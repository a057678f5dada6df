// Package suggest finds the closest known flag for a misspelled one.
package suggest

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultMaxDistance is the largest edit distance accepted as a suggestion
const DefaultMaxDistance = 2

// Threshold returns the largest distance accepted for flag: maxDistance,
// tightened to len(flag)/2+1 for short flags.
func Threshold(flag string, maxDistance int) int {
	limit := len(flag)/2 + 1
	if maxDistance < limit {
		return maxDistance
	}
	return limit
}

// Closest returns the candidate nearest to flag by Levenshtein distance.
// The flag itself is never suggested. Ties go to the lexically smallest
// candidate. The boolean is false when nothing is within Threshold.
func Closest(flag string, candidates []string, maxDistance int) (string, bool) {
	sorted := make([]string, len(candidates))
	copy(sorted, candidates)
	sort.Strings(sorted)

	best := ""
	bestDistance := -1
	for _, c := range sorted {
		if c == flag {
			continue
		}
		d := fuzzy.LevenshteinDistance(flag, c)
		if bestDistance < 0 || d < bestDistance {
			best, bestDistance = c, d
		}
	}

	if bestDistance < 0 || bestDistance > Threshold(flag, maxDistance) {
		return "", false
	}
	return best, true
}
