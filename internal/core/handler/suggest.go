package handler

import (
	"fmt"

	"github.com/agnivade/levenshtein"
)

const maxSuggestionDistance = 3

// closestMatch returns the candidate nearest to name by edit distance, if any is close enough
func closestMatch(name string, candidates []string) (string, bool) {
	best := ""
	bestDistance := maxSuggestionDistance + 1
	for _, candidate := range candidates {
		distance := levenshtein.ComputeDistance(name, candidate)
		if distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}
	return best, best != ""
}

func withSuggestion(err error, name string, candidates []string) error {
	if suggestion, ok := closestMatch(name, candidates); ok {
		return fmt.Errorf("%w (did you mean '%s'?)", err, suggestion)
	}
	return err
}
