// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package registry holds the catalog of notable Unicode code points.
//
// # Description
//
// A notable code point is one that is invisible, directionally
// significant, or easily confused with a plain space or hyphen: the
// characters that break localized strings in ways a reviewer cannot
// see. Each catalog entry carries enough metadata to explain the
// character to a localization engineer (what it is, what it looks
// like when surfaced, where dropping it causes a defect).
//
// # Thread Safety
//
// A Registry is immutable after construction and safe for concurrent
// read access from any number of goroutines.
package registry

import (
	"fmt"
	"sort"

	"golang.org/x/text/unicode/runenames"
)

// Entry describes one notable code point.
//
// # Fields
//
//   - Rune: The code point itself (a single scalar value, never a
//     multi-rune grapheme cluster).
//   - Name: Short human name, e.g. "No-Break Space".
//   - Code: Formal designation, "U+XXXX" uppercase hex, zero-padded
//     to at least four digits.
//   - Glyph: Compact printable substitute (1-6 visible characters),
//     e.g. "NBSP" or "→".
//   - LongName: Full Unicode character name.
//   - Example: Multi-line sample text demonstrating the character's
//     effect in context.
//   - Usage: The linguistic or technical context where omitting the
//     character causes an observable defect.
type Entry struct {
	Rune     rune
	Name     string
	Code     string
	Glyph    string
	LongName string
	Example  string
	Usage    string
}

// Registry maps code points to their entries.
//
// The zero value is unusable; construct with Default or New.
type Registry struct {
	entries map[rune]Entry
}

// New builds a Registry from the given entries.
//
// # Description
//
// Intended for tests and callers that need a reduced or extended
// catalog. The Code field of each entry is filled in from the rune if
// left empty, so hand-written test entries stay terse.
//
// # Inputs
//
//   - entries: Entries to index. Later duplicates win.
//
// # Outputs
//
//   - *Registry: Ready for lookup.
func New(entries []Entry) *Registry {
	m := make(map[rune]Entry, len(entries))
	for _, e := range entries {
		if e.Code == "" {
			e.Code = FormatCode(e.Rune)
		}
		m[e.Rune] = e
	}
	return &Registry{entries: m}
}

// Default returns the built-in catalog.
//
// The built-in set covers ASCII tab/newline/carriage-return, the
// no-break and narrow/fixed-width space family, the zero-width
// characters, soft hyphen, line and paragraph separators, the full
// bidirectional control family, the byte order mark, and the word
// joiner. Tests assert this coverage; it is a contract, not sample
// data.
func Default() *Registry {
	return defaultRegistry
}

var defaultRegistry = New(builtinEntries)

// Lookup returns the entry for a code point.
//
// # Outputs
//
//   - Entry: The catalog entry (zero value when absent).
//   - bool: Whether the code point is in the catalog.
func (r *Registry) Lookup(cp rune) (Entry, bool) {
	e, ok := r.entries[cp]
	return e, ok
}

// Contains reports whether a code point is notable.
func (r *Registry) Contains(cp rune) bool {
	_, ok := r.entries[cp]
	return ok
}

// Len returns the number of cataloged code points.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Runes returns every cataloged code point in ascending order.
//
// Used by list-style UIs; the sort keeps output deterministic.
func (r *Registry) Runes() []rune {
	out := make([]rune, 0, len(r.entries))
	for cp := range r.entries {
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Resolve returns the entry for a code point, synthesizing a fallback
// when the point is notable-by-detection but absent from the catalog.
//
// # Description
//
// The fallback entry computes its formal designation from the code
// point, describes itself as "Special Character", and uses the raw
// character as its own glyph. The long name is taken from the Unicode
// character database so the UI still has something meaningful to show.
func (r *Registry) Resolve(cp rune) Entry {
	if e, ok := r.entries[cp]; ok {
		return e
	}
	return Fallback(cp)
}

// Fallback synthesizes an entry for an uncataloged code point.
func Fallback(cp rune) Entry {
	return Entry{
		Rune:     cp,
		Name:     "Special Character",
		Code:     FormatCode(cp),
		Glyph:    string(cp),
		LongName: runenames.Name(cp),
		Usage:    "Uncataloged code point; inspect before shipping.",
	}
}

// FormatCode renders a code point as "U+XXXX".
//
// Uppercase hexadecimal, zero-padded to at least four digits. Code
// points above U+FFFF render with their natural width (e.g. U+1F600).
func FormatCode(cp rune) string {
	return fmt.Sprintf("U+%04X", cp)
}
