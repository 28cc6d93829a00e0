/*
Package fuzzy scores how well a typed query matches a candidate string.

The scale is fixed so that ranking stays comparable across every field a
company can match on:

	100  candidate starts with the query (case-insensitive)
	 80  query appears later inside the candidate
	 60  every query rune appears in order (subsequence)
	  0  no match

Scoring is pure and allocation-free on the hot path; callers filter empty
queries before invoking.
*/
package fuzzy

import (
	"strings"

	"github.com/finboard/symserve/internal/utils"
)

// Score grades pattern against text on the 0..100 scale above.
func Score(text, pattern string) int {
	t := strings.ToLower(text)
	p := strings.ToLower(pattern)

	if idx := strings.Index(t, p); idx >= 0 {
		if idx == 0 {
			return 100
		}
		return 80
	}
	return subsequenceScore(t, p)
}

// subsequenceScore walks text left to right, greedily consuming pattern
// runes in order. A full consume scores (matched/len)*60, which is always
// exactly 60; the formula is kept as written because older clients expect
// the flat value regardless of match sparseness.
func subsequenceScore(text, pattern string) int {
	patternRunes := []rune(pattern)
	if len(patternRunes) == 0 {
		return 0
	}

	matched := 0
	for _, r := range text {
		if matched >= len(patternRunes) {
			break
		}
		if utils.EqualFold(r, patternRunes[matched]) {
			matched++
		}
	}

	if matched < len(patternRunes) {
		return 0
	}
	return matched * 60 / len(patternRunes)
}
