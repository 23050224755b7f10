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
	"unicode"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// WordDiffer implements Differ at word granularity on top of
// diffmatchpatch.
//
// # Description
//
// diffmatchpatch natively diffs by character. Word granularity uses
// the same trick the library uses for line mode: tokenize both
// inputs into words, map each distinct token to one rune of a
// synthetic alphabet, diff the mapped strings, then expand the
// tokens back. The line-ending placeholder runes are always their
// own single-rune tokens, so the diff can never glue a marker to an
// adjacent word.
type WordDiffer struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewWordDiffer returns a ready-to-use word differ.
func NewWordDiffer() *WordDiffer {
	return &WordDiffer{dmp: diffmatchpatch.New()}
}

// Compare implements Differ.
func (w *WordDiffer) Compare(oldText, newText string, elideUnchanged bool) ([]Segment, []Segment, error) {
	if oldText == "" && newText == "" {
		return nil, nil, nil
	}

	var vocab tokenVocab
	encOld := vocab.encode(tokenizeWords(oldText))
	encNew := vocab.encode(tokenizeWords(newText))

	diffs := w.dmp.DiffMain(encOld, encNew, false)

	var oldSegs, newSegs []Segment
	for _, d := range diffs {
		text := vocab.decode(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			if elideUnchanged {
				continue
			}
			oldSegs = append(oldSegs, Segment{Text: text, Status: Unchanged})
			newSegs = append(newSegs, Segment{Text: text, Status: Unchanged})
		case diffmatchpatch.DiffDelete:
			oldSegs = append(oldSegs, Segment{Text: text, Status: Removed})
		case diffmatchpatch.DiffInsert:
			newSegs = append(newSegs, Segment{Text: text, Status: Added})
		}
	}
	return oldSegs, newSegs, nil
}

// tokenizeWords splits text into word, whitespace-run, and
// line-ending-placeholder tokens. Concatenating the tokens
// reproduces the input exactly.
//
// The two-part line-feed placeholder (marker rune plus the original
// LF) is one atomic token, so no diff boundary can ever fall between
// the marker and its LF.
func tokenizeWords(text string) []string {
	var tokens []string
	var cur strings.Builder
	var curSpace bool

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		cp := runes[i]
		if cp == lfMarker {
			flush()
			if i+1 < len(runes) && runes[i+1] == '\n' {
				tokens = append(tokens, string([]rune{lfMarker, '\n'}))
				i++
			} else {
				tokens = append(tokens, string(cp))
			}
			continue
		}
		if cp == crMarker {
			flush()
			tokens = append(tokens, string(cp))
			continue
		}
		space := unicode.IsSpace(cp)
		if cur.Len() > 0 && space != curSpace {
			flush()
		}
		curSpace = space
		cur.WriteRune(cp)
	}
	flush()
	return tokens
}

// tokenVocab maps distinct tokens to runes of a synthetic alphabet
// starting above the BMP, clear of the placeholder range.
type tokenVocab struct {
	tokens []string
	index  map[string]rune
}

const vocabBase = 0x10000

func (v *tokenVocab) encode(tokens []string) string {
	if v.index == nil {
		v.index = make(map[string]rune)
	}
	var b strings.Builder
	for _, tok := range tokens {
		r, ok := v.index[tok]
		if !ok {
			r = rune(vocabBase + len(v.tokens))
			v.index[tok] = r
			v.tokens = append(v.tokens, tok)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (v *tokenVocab) decode(encoded string) string {
	var b strings.Builder
	for _, r := range encoded {
		b.WriteString(v.tokens[int(r)-vocabBase])
	}
	return b.String()
}
