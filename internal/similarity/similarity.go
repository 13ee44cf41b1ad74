// =============================================================================
// Budget & Actual Validator - Name Similarity Scorer
// =============================================================================
//
// This module scores how alike two record names are, on a normalized [0, 1]
// scale. The reconciliation engine uses the score to pair up line items whose
// names differ slightly between the two report sides ("Rent" vs "Rnt").
//
// The score is a Levenshtein-based sequence ratio:
//
//   score = (len(a) + len(b) - distance(a, b)) / (len(a) + len(b))
//
// computed over lowercased runes. It is symmetric, equals 1.0 for identical
// non-empty inputs, and decreases monotonically as edit distance grows.
//
// =============================================================================

package similarity

import (
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Score returns the normalized similarity between two names.
//
// The comparison is case-insensitive and operates on the full strings as
// given; callers are expected to trim and normalize beforehand. Two empty
// strings are defined as identical (score 1.0).
func Score(a, b string) float64 {
	ar := []rune(strings.ToLower(a))
	br := []rune(strings.ToLower(b))

	if len(ar) == 0 && len(br) == 0 {
		return 1.0
	}

	return levenshtein.RatioForStrings(ar, br, levenshtein.DefaultOptions)
}
