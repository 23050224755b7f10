// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_Boundaries(t *testing.T) {
	assert.Equal(t, float64(100), Score("", ""))
	assert.Equal(t, float64(100), Score("abc", "abc"))
	assert.Equal(t, float64(0), Score("", "abc"))

	mid := Score("abc", "abd")
	assert.Greater(t, mid, float64(0))
	assert.Less(t, mid, float64(100))
}

func TestScore_TwoDecimalRounding(t *testing.T) {
	// One substitution in three runes: 100*2/3 = 66.666... -> 66.67
	assert.Equal(t, 66.67, Score("abc", "abd"))
}

func TestScore_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"", "x"},
		{"localization", "localisation"},
		{"Hello​World", "HelloWorld"},
	}
	for _, p := range pairs {
		assert.Equal(t, Score(p[0], p[1]), Score(p[1], p[0]),
			"Score(%q, %q) not symmetric", p[0], p[1])
	}
}

// The scorer compares code points, not bytes: one multi-byte rune
// swap is one edit.
func TestScore_RuneBased(t *testing.T) {
	// "a b" vs "a b": one substitution in three runes.
	assert.Equal(t, 66.67, Score("a b", "a b"))
}

func TestScore_DegradesSmoothly(t *testing.T) {
	base := "the quick brown fox"
	oneEdit := "the quick brown fix"
	twoEdits := "the quick brawn fix"

	s1 := Score(base, oneEdit)
	s2 := Score(base, twoEdits)
	assert.Greater(t, s1, s2)
	assert.Greater(t, s2, float64(0))
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			got := levenshtein([]rune(tt.a), []rune(tt.b))
			if got != tt.want {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
