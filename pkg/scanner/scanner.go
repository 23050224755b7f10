// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package scanner partitions text into literal runs and annotated
// notable-character tokens.
//
// # Description
//
// The scanner walks a string once, left to right, by code point, and
// splits it into an ordered, gap-free sequence of segments: maximal
// runs of ordinary characters and single-character tokens for every
// code point found in the registry. Concatenating the segments'
// underlying text reproduces the input exactly; nothing is ever
// normalized or dropped.
//
// Membership is an exact set test against the registry key set, not a
// range check, so the notable class changes only when the catalog does.
//
// # Thread Safety
//
// Scan is a pure function. Visibility maps are plain maps owned by a
// single session; do not share one across goroutines.
package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/AleutianAI/glyphlens/pkg/registry"
)

// Kind discriminates segment variants.
type Kind int

const (
	// KindRun is a maximal run of ordinary characters.
	KindRun Kind = iota

	// KindToken is exactly one notable character.
	KindToken
)

// Segment is one element of the scan partition.
//
// # Fields
//
//   - Kind: Run or token.
//   - Text: The underlying characters (the raw notable character for
//     tokens, never the glyph).
//   - Entry: Catalog metadata; meaningful only for tokens.
//   - Visible: Whether the token should render annotated. Always true
//     for runs. Rendering-only; the underlying text is unaffected.
type Segment struct {
	Kind    Kind
	Text    string
	Entry   registry.Entry
	Visible bool
}

// Frequency counts notable code points actually present in a text.
// Absent keys are implicitly zero.
type Frequency map[rune]int

// Total returns the sum of all counts.
func (f Frequency) Total() int {
	n := 0
	for _, c := range f {
		n += c
	}
	return n
}

// Visibility controls whether a notable code point renders annotated.
// Absent keys default to visible. It never alters the underlying text
// or the frequency counts.
type Visibility map[rune]bool

// Visible reports the effective flag for a code point.
func (v Visibility) Visible(cp rune) bool {
	if v == nil {
		return true
	}
	on, ok := v[cp]
	if !ok {
		return true
	}
	return on
}

// Toggle returns a copy of the map with the flag for cp flipped.
//
// The prior value defaults to visible-true when absent, so the first
// toggle always hides. Toggling twice restores the original effective
// state.
func (v Visibility) Toggle(cp rune) Visibility {
	out := make(Visibility, len(v)+1)
	for k, val := range v {
		out[k] = val
	}
	out[cp] = !v.Visible(cp)
	return out
}

// Scan partitions text against the registry.
//
// # Description
//
// One pass by code point. Runes in the registry close the open run
// (if non-empty) and emit a token; everything else extends the run.
// A trailing run is flushed at end of input.
//
// Supplementary-plane runes (emoji and friends) are handled as single
// logical units; they can never be split into surrogate halves.
//
// # Inputs
//
//   - text: Any string. Empty is fine and yields nil segments. Bytes
//     that are not valid UTF-8 stay in the surrounding run untouched.
//   - reg: The notable-character catalog.
//   - vis: Rendering visibility; nil means everything visible.
//
// # Outputs
//
//   - []Segment: Ordered, gap-free partition of text.
//   - Frequency: Counts of notable runes present, independent of vis.
func Scan(text string, reg *registry.Registry, vis Visibility) ([]Segment, Frequency) {
	var segs []Segment
	freq := make(Frequency)
	var run strings.Builder

	flush := func() {
		if run.Len() > 0 {
			segs = append(segs, Segment{Kind: KindRun, Text: run.String(), Visible: true})
			run.Reset()
		}
	}

	for i := 0; i < len(text); {
		cp, size := utf8.DecodeRuneInString(text[i:])
		if cp == utf8.RuneError && size == 1 {
			// Invalid byte: keep it verbatim so Join round-trips.
			run.WriteByte(text[i])
			i++
			continue
		}
		i += size
		entry, ok := reg.Lookup(cp)
		if !ok {
			run.WriteRune(cp)
			continue
		}
		flush()
		freq[cp]++
		segs = append(segs, Segment{
			Kind:    KindToken,
			Text:    string(cp),
			Entry:   entry,
			Visible: vis.Visible(cp),
		})
	}
	flush()

	return segs, freq
}

// Join reconstructs the original text from a scan partition.
func Join(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Count returns the frequency table for text without building the
// segment list. Used where only the counts matter (replace-all
// reporting, status bars).
func Count(text string, reg *registry.Registry) Frequency {
	freq := make(Frequency)
	for i := 0; i < len(text); {
		cp, size := utf8.DecodeRuneInString(text[i:])
		if cp == utf8.RuneError && size == 1 {
			i++
			continue
		}
		i += size
		if reg.Contains(cp) {
			freq[cp]++
		}
	}
	return freq
}

// Marked returns text with every notable character replaced by its
// bracketed glyph, e.g. tab becomes "[→]".
//
// This is the plain-text clipboard variant: safe to paste into chat
// or a bug tracker without the invisible characters travelling along.
func Marked(text string, reg *registry.Registry) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		cp, size := utf8.DecodeRuneInString(text[i:])
		if cp == utf8.RuneError && size == 1 {
			b.WriteByte(text[i])
			i++
			continue
		}
		i += size
		if e, ok := reg.Lookup(cp); ok {
			b.WriteString("[")
			b.WriteString(e.Glyph)
			b.WriteString("]")
			continue
		}
		b.WriteRune(cp)
	}
	return b.String()
}
