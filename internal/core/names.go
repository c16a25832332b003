package core

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// ClosestName returns the candidate nearest to name by edit distance. The
// match is rejected when the distance exceeds a limit scaled to the
// candidate's length, so short names need to be typed almost exactly.
func ClosestName(name string, candidates []string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return "", false
	}
	best := ""
	bestDist := -1
	for _, cand := range candidates {
		c := strings.ToLower(cand)
		if c == needle {
			return cand, true
		}
		dist := levenshtein.ComputeDistance(needle, c)
		if dist > nameDistanceLimit(len(c)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best = cand
			bestDist = dist
		}
	}
	return best, bestDist >= 0
}

func nameDistanceLimit(length int) int {
	switch {
	case length <= 3:
		return 0
	case length <= 5:
		return 1
	case length <= 9:
		return 2
	default:
		return 3
	}
}
