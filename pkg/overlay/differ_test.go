// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "words and single spaces",
			in:   "one two",
			want: []string{"one", " ", "two"},
		},
		{
			name: "whitespace run stays one token",
			in:   "a  \t b",
			want: []string{"a", "  \t ", "b"},
		},
		{
			name: "line feed placeholder is atomic",
			in:   "a" + string(LFMarker) + "\n" + "b",
			want: []string{"a", string(LFMarker) + "\n", "b"},
		},
		{
			name: "carriage return placeholder stands alone",
			in:   "a" + string(CRMarker) + string(LFMarker) + "\nb",
			want: []string{"a", string(CRMarker), string(LFMarker) + "\n", "b"},
		},
		{
			name: "orphan marker without line feed",
			in:   "a" + string(LFMarker) + "b",
			want: []string{"a", string(LFMarker), "b"},
		},
		{
			name: "no-break space is its own whitespace token",
			in:   "a b",
			want: []string{"a", " ", "b"},
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenizeWords(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, strings.Join(got, ""),
				"tokens must reproduce the input")
		})
	}
}

func TestTokenVocab_RoundTrip(t *testing.T) {
	var v tokenVocab
	tokens := []string{"alpha", " ", "beta", " ", "alpha"}

	enc := v.encode(tokens)
	assert.Len(t, []rune(enc), len(tokens))
	assert.Equal(t, "alpha beta alpha", v.decode(enc))

	// Repeated tokens share one synthetic rune.
	runes := []rune(enc)
	assert.Equal(t, runes[0], runes[4])
	assert.Equal(t, runes[1], runes[3])
}

func TestWordDiffer_Compare(t *testing.T) {
	d := NewWordDiffer()

	oldSegs, newSegs, err := d.Compare("the quick fox", "the slow fox", false)
	require.NoError(t, err)

	assert.Equal(t, "the quick fox", joinSegments(oldSegs))
	assert.Equal(t, "the slow fox", joinSegments(newSegs))

	var removed, added []string
	for _, s := range oldSegs {
		if s.Status == Removed {
			removed = append(removed, s.Text)
		}
	}
	for _, s := range newSegs {
		if s.Status == Added {
			added = append(added, s.Text)
		}
	}
	assert.Equal(t, []string{"quick"}, removed)
	assert.Equal(t, []string{"slow"}, added)
}

func TestWordDiffer_WholeWordsOnly(t *testing.T) {
	// "two" and "three" share letters; a character diff would split
	// them. Word granularity must keep each word whole.
	d := NewWordDiffer()

	oldSegs, _, err := d.Compare("line two", "line three", false)
	require.NoError(t, err)

	for _, s := range oldSegs {
		if s.Status == Removed {
			assert.Equal(t, "two", s.Text)
		}
	}
}

func TestWordDiffer_ElideDropsEqualRegions(t *testing.T) {
	d := NewWordDiffer()

	oldSegs, newSegs, err := d.Compare("keep this old word", "keep this new word", true)
	require.NoError(t, err)

	for _, s := range append(oldSegs, newSegs...) {
		assert.NotEqual(t, Unchanged, s.Status)
	}
	require.NotEmpty(t, oldSegs)
	require.NotEmpty(t, newSegs)
}

func TestWordDiffer_EmptyInputs(t *testing.T) {
	d := NewWordDiffer()

	oldSegs, newSegs, err := d.Compare("", "", false)
	require.NoError(t, err)
	assert.Nil(t, oldSegs)
	assert.Nil(t, newSegs)

	oldSegs, newSegs, err = d.Compare("", "new", false)
	require.NoError(t, err)
	assert.Empty(t, oldSegs)
	require.Len(t, newSegs, 1)
	assert.Equal(t, Added, newSegs[0].Status)
}
