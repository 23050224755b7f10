// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/glyphlens/pkg/registry"
)

func TestScan_ZeroWidthSpaceBetweenWords(t *testing.T) {
	segs, freq := Scan("Hello​World", registry.Default(), nil)

	require.Len(t, segs, 3)
	assert.Equal(t, KindRun, segs[0].Kind)
	assert.Equal(t, "Hello", segs[0].Text)
	assert.Equal(t, KindToken, segs[1].Kind)
	assert.Equal(t, "​", segs[1].Text)
	assert.Equal(t, "U+200B", segs[1].Entry.Code)
	assert.True(t, segs[1].Visible)
	assert.Equal(t, KindRun, segs[2].Kind)
	assert.Equal(t, "World", segs[2].Text)

	assert.Equal(t, Frequency{'​': 1}, freq)
}

func TestScan_EdgeCases(t *testing.T) {
	reg := registry.Default()

	tests := []struct {
		name      string
		input     string
		wantKinds []Kind
	}{
		{
			name:      "notable at position zero, no leading empty run",
			input:     " after",
			wantKinds: []Kind{KindToken, KindRun},
		},
		{
			name:      "adjacent notables, no empty run between",
			input:     "a​‍b",
			wantKinds: []Kind{KindRun, KindToken, KindToken, KindRun},
		},
		{
			name:      "no notables, single run",
			input:     "plain text only",
			wantKinds: []Kind{KindRun},
		},
		{
			name:      "only notables",
			input:     "\t\t",
			wantKinds: []Kind{KindToken, KindToken},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs, _ := Scan(tt.input, reg, nil)
			require.Len(t, segs, len(tt.wantKinds))
			for i, k := range tt.wantKinds {
				assert.Equal(t, k, segs[i].Kind, "segment %d", i)
				assert.NotEmpty(t, segs[i].Text, "segment %d empty", i)
			}
		})
	}
}

func TestScan_EmptyInput(t *testing.T) {
	segs, freq := Scan("", registry.Default(), nil)
	assert.Empty(t, segs)
	assert.Empty(t, freq)
}

// Round-trip property: concatenating segments reproduces the input
// exactly, whatever the input.
func TestScan_RoundTrip(t *testing.T) {
	reg := registry.Default()
	inputs := []string{
		"",
		"plain",
		"​",
		"Hello​World",
		"tabs\tand\nnewlines\r\n",
		"\uFEFFbom first",
		"bidi ‮evil‬ text",
		"price 1 000 €",
		"emoji 👩‍💻 stays whole",
		"  ⁠­",
		"a\xffb",
		"truncated \xe2\x80",
	}
	for _, in := range inputs {
		segs, _ := Scan(in, reg, nil)
		assert.Equal(t, in, Join(segs), "round-trip failed for %q", in)
	}
}

// Invalid UTF-8 bytes pass through verbatim instead of becoming
// U+FFFD, and never count as notable.
func TestScan_InvalidUTF8Passthrough(t *testing.T) {
	reg := registry.Default()
	in := "a\xff\t\xe2\x80b"

	segs, freq := Scan(in, reg, nil)
	assert.Equal(t, in, Join(segs))
	assert.Equal(t, 1, freq.Total())
	assert.Equal(t, 1, freq['\t'])

	assert.Equal(t, freq, Count(in, reg))
	assert.Equal(t, "a\xff[→]\xe2\x80b", Marked(in, reg))
}

// Frequency consistency: the table total equals the number of
// notable runes in the input, and visibility never changes it.
func TestScan_FrequencyConsistency(t *testing.T) {
	reg := registry.Default()
	input := "a\tb\tc​​​d\ne "

	want := 0
	for _, cp := range input {
		if reg.Contains(cp) {
			want++
		}
	}

	_, freq := Scan(input, reg, nil)
	assert.Equal(t, want, freq.Total())
	assert.Equal(t, 2, freq['\t'])
	assert.Equal(t, 3, freq['​'])

	// Hiding a code point must not change the counts.
	hidden := Visibility{}.Toggle('​')
	_, freqHidden := Scan(input, reg, hidden)
	assert.Equal(t, freq, freqHidden)
}

// Supplementary-plane runes are one logical unit; the scanner must
// never split them.
func TestScan_SupplementaryPlane(t *testing.T) {
	segs, freq := Scan("x😀y", registry.Default(), nil)
	require.Len(t, segs, 1)
	assert.Equal(t, "x😀y", segs[0].Text)
	assert.Empty(t, freq)
}

func TestVisibility(t *testing.T) {
	t.Run("absent defaults to visible", func(t *testing.T) {
		var v Visibility
		assert.True(t, v.Visible('\t'))
		assert.True(t, Visibility{}.Visible('\t'))
	})

	t.Run("toggle flips from default", func(t *testing.T) {
		v := Visibility{}.Toggle('\t')
		assert.False(t, v.Visible('\t'))
	})

	t.Run("double toggle restores", func(t *testing.T) {
		v := Visibility{}.Toggle('\t').Toggle('\t')
		assert.True(t, v.Visible('\t'))
	})

	t.Run("toggle does not mutate the receiver", func(t *testing.T) {
		orig := Visibility{'\t': false}
		_ = orig.Toggle('\t')
		assert.False(t, orig.Visible('\t'))
	})
}

func TestScan_VisibilityAffectsTokensOnly(t *testing.T) {
	reg := registry.Default()
	vis := Visibility{}.Toggle('\t')

	segs, _ := Scan("a\tb", reg, vis)
	require.Len(t, segs, 3)
	assert.Equal(t, KindToken, segs[1].Kind)
	assert.False(t, segs[1].Visible)
	assert.Equal(t, "\t", segs[1].Text, "text must survive hiding")
}

func TestMarked(t *testing.T) {
	reg := registry.Default()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"tab becomes bracketed arrow", "a\tb", "a[→]b"},
		{"zero width space", "Hello​World", "Hello[ZWSP]World"},
		{"plain text unchanged", "plain", "plain"},
		{"newline marked", "a\nb", "a[LF]b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Marked(tt.input, reg); got != tt.want {
				t.Errorf("Marked(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCount_MatchesScan(t *testing.T) {
	reg := registry.Default()
	input := "x​\ty\r\n"
	_, fromScan := Scan(input, reg, nil)
	assert.Equal(t, fromScan, Count(input, reg))
}
