// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package similarity scores how close two texts are as a percentage.
package similarity

import "math"

// Score returns the closeness of a and b in [0, 100].
//
// # Description
//
// Defined as 100*(maxLen-lev(a,b))/maxLen over code points, where
// maxLen is the longer input's length and lev is the classic
// insert/delete/substitute edit distance. Two empty strings score 100.
// The result is rounded to two decimal places for display.
//
// Symmetric: Score(a, b) == Score(b, a). Identical inputs score 100;
// the score degrades smoothly with the number of edits.
//
// # Inputs
//
//   - a, b: Any strings, compared by code point.
//
// # Outputs
//
//   - float64: Percentage in [0, 100], two-decimal precision.
func Score(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)

	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 100
	}

	dist := levenshtein(ra, rb)
	pct := 100 * float64(maxLen-dist) / float64(maxLen)
	return math.Round(pct*100) / 100
}

// levenshtein computes the edit distance between two rune slices.
//
// Space-optimized dynamic programming with two rows instead of a full
// matrix, O(min(m,n)) space.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Ensure a is the shorter slice for space optimization
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j
		for i := 1; i <= len(a); i++ {
			if a[i-1] == b[j-1] {
				curr[i] = prev[i-1]
			} else {
				curr[i] = 1 + minOf3(prev[i-1], prev[i], curr[i-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// minOf3 returns the minimum of three integers.
func minOf3(a, b, c int) int {
	if a <= b && a <= c {
		return a
	}
	if b <= c {
		return b
	}
	return c
}
