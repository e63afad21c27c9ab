// Package scoring implements the per-mode scoring policies and the running
// score state shared by all quiz modes.
package scoring

import "strings"

// ExactScore awards 1 for a choice equal to the target and 0 otherwise.
// Comparison is on the trimmed canonical value and is case-sensitive.
func ExactScore(choice, target string) int {
	if strings.TrimSpace(choice) == strings.TrimSpace(target) {
		return 1
	}
	return 0
}

// AgeScore maps the absolute distance between a guessed and actual age to
// points. This is a fixed step function with inclusive boundaries, not a
// linear formula.
func AgeScore(guess, actual int) int {
	diff := guess - actual
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff == 0:
		return 10
	case diff == 1:
		return 8
	case diff == 2:
		return 6
	case diff <= 3:
		return 4
	case diff <= 5:
		return 2
	default:
		return 0
	}
}

// FreeTextScore converts the fraction of target answers found into partial
// credit on a fixed ratio ladder.
func FreeTextScore(found, total int) float64 {
	if total <= 0 {
		return 0
	}
	ratio := float64(found) / float64(total)
	switch {
	case ratio >= 0.7:
		return 1.0
	case ratio >= 0.5:
		return 0.8
	case ratio >= 0.3:
		return 0.5
	case ratio >= 0.1:
		return 0.2
	default:
		return 0
	}
}

// FreeTextStreakThreshold is the minimum question score that keeps a
// free-text streak alive.
const FreeTextStreakThreshold = 0.8

// MaxSuggestions caps the autocomplete suggestion list.
const MaxSuggestions = 5

// MinSuggestionInput is the minimum input length before suggestions are
// offered; shorter prefixes match too noisily.
const MinSuggestionInput = 2

// Suggest returns up to MaxSuggestions members of answers whose normalized
// form contains the normalized input as a substring and which are not
// already found, preserving the original answer order.
func Suggest(input string, answers, found []string, normalize func(string) string) []string {
	if len(input) < MinSuggestionInput {
		return nil
	}
	needle := normalize(input)
	if needle == "" {
		return nil
	}

	foundSet := make(map[string]bool, len(found))
	for _, f := range found {
		foundSet[normalize(f)] = true
	}

	var out []string
	for _, a := range answers {
		na := normalize(a)
		if !strings.Contains(na, needle) || foundSet[na] {
			continue
		}
		out = append(out, a)
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}
