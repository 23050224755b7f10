// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package overlay re-injects notable-character annotations into the
// output of a word-level text diff.
//
// # Description
//
// A plain word diff of two localized texts hides exactly the
// characters this tool exists to surface: the diff happily reports
// "unchanged" across a swapped no-break space, and it may swallow or
// realign line endings entirely. The compositor fixes both problems:
//
//  1. Before diffing, every line feed and carriage return is replaced
//     by a private-use placeholder so the diff treats line boundaries
//     as ordinary visible tokens it will not rearrange. The line-feed
//     placeholder is two-part (marker rune followed by the original
//     LF) and therefore reversible; the carriage-return placeholder
//     is the marker rune alone.
//  2. After diffing, each segment's text is re-tokenized: notable
//     characters get a single flat annotation span, and the
//     placeholders become fixed line-boundary markers.
//
// The emitted markup uses exactly one wrapper element and a fixed
// attribute set, so it survives the downstream sanitizer untouched.
//
// # Thread Safety
//
// A Compositor is immutable after construction and safe for
// concurrent use.
package overlay

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/AleutianAI/glyphlens/pkg/registry"
)

// ErrIntegrity reports diff output that would corrupt the visual
// comparison: an empty segment list for non-empty input, or a segment
// whose text does not round-trip through the annotation/restore step.
var ErrIntegrity = errors.New("overlay: diff output failed integrity check")

// Placeholder runes for line endings. Private-use code points, so
// they cannot collide with ordinary text and are never in the
// registry. Exported for renderers that consume raw segments.
const (
	// LFMarker precedes every original line feed in encoded text.
	LFMarker = ''

	// CRMarker replaces every original carriage return.
	CRMarker = ''
)

const (
	lfMarker = LFMarker
	crMarker = CRMarker
)

// Status tags a diff segment.
type Status int

const (
	// Unchanged text appears in both panes.
	Unchanged Status = iota

	// Added text appears only in the new pane.
	Added

	// Removed text appears only in the old pane.
	Removed
)

// String returns "unchanged", "added", or "removed".
func (s Status) String() string {
	switch s {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "unchanged"
	}
}

// Segment is one aligned chunk of diff output for a single pane.
// The text still carries the line-ending placeholders; rendering
// resolves them.
type Segment struct {
	Text   string
	Status Status
}

// Differ is the external diff collaborator.
//
// # Description
//
// Compares two already-placeholder-encoded strings at word
// granularity and returns one ordered segment sequence per pane. When
// elideUnchanged is set, unchanged regions are dropped from both
// panes. The compositor depends only on this contract, not on any
// particular diff algorithm.
type Differ interface {
	Compare(oldText, newText string, elideUnchanged bool) (oldSegs, newSegs []Segment, err error)
}

// RenderedSegment pairs a segment's status with its annotated markup.
type RenderedSegment struct {
	Status Status
	HTML   string
}

// Result is the composed dual-pane comparison.
type Result struct {
	Old []RenderedSegment
	New []RenderedSegment
}

// PaneHTML concatenates one pane's segments, each wrapped in a status
// span, into a single markup string.
func PaneHTML(segs []RenderedSegment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(`<span class="gl-` + s.Status.String() + `">`)
		b.WriteString(s.HTML)
		b.WriteString(`</span>`)
	}
	return b.String()
}

// Compositor wires the registry, the external differ, and the markup
// sanitizer together.
type Compositor struct {
	reg      *registry.Registry
	differ   Differ
	sanitize *Sanitizer
	elide    bool
}

// Option configures a Compositor.
type Option func(*Compositor)

// WithDiffer overrides the default word differ. Tests use this to
// inject misbehaving diff output.
func WithDiffer(d Differ) Option {
	return func(c *Compositor) { c.differ = d }
}

// WithElision drops unchanged regions from both panes.
func WithElision(elide bool) Option {
	return func(c *Compositor) { c.elide = elide }
}

// NewCompositor builds a compositor over the given registry.
func NewCompositor(reg *registry.Registry, opts ...Option) *Compositor {
	c := &Compositor{
		reg:      reg,
		differ:   NewWordDiffer(),
		sanitize: NewSanitizer(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compare diffs two raw texts and renders both panes with
// annotations intact.
//
// # Inputs
//
//   - oldText, newText: The raw texts, line endings and all.
//
// # Outputs
//
//   - Result: Annotated, sanitized markup per pane.
//   - error: ErrIntegrity (wrapped) when the diff output would
//     corrupt the comparison. Never an error for empty inputs.
func (c *Compositor) Compare(oldText, newText string) (Result, error) {
	oldSegs, newSegs, err := c.Segments(oldText, newText)
	if err != nil {
		return Result{}, err
	}
	return c.RenderSegments(oldSegs, newSegs)
}

// Segments runs the placeholder encoding and the external diff,
// returning the raw per-pane segments after the integrity checks.
// Renderers that draw segments directly (the terminal dual-pane
// view) consume these instead of markup; segment text still carries
// the line-ending placeholders.
func (c *Compositor) Segments(oldText, newText string) (oldSegs, newSegs []Segment, err error) {
	encOld := encodeLineEndings(oldText)
	encNew := encodeLineEndings(newText)

	oldSegs, newSegs, err = c.differ.Compare(encOld, encNew, c.elide)
	if err != nil {
		return nil, nil, fmt.Errorf("overlay: differ: %w", err)
	}

	if (oldText != "" || newText != "") && len(oldSegs) == 0 && len(newSegs) == 0 {
		return nil, nil, fmt.Errorf("%w: empty diff for non-empty input", ErrIntegrity)
	}
	if !c.elide {
		if got := joinSegments(oldSegs); got != encOld {
			return nil, nil, fmt.Errorf("%w: old pane does not reassemble its input", ErrIntegrity)
		}
		if got := joinSegments(newSegs); got != encNew {
			return nil, nil, fmt.Errorf("%w: new pane does not reassemble its input", ErrIntegrity)
		}
	}
	return oldSegs, newSegs, nil
}

// renderSegment annotates one segment and verifies the round-trip.
func (c *Compositor) renderSegment(seg Segment) (RenderedSegment, error) {
	markup, plain := c.annotate(seg.Text)
	if reencoded := encodeLineEndings(plain); reencoded != seg.Text {
		return RenderedSegment{}, fmt.Errorf(
			"%w: segment %q does not round-trip", ErrIntegrity, seg.Text)
	}
	return RenderedSegment{Status: seg.Status, HTML: c.sanitize.Clean(markup)}, nil
}

// annotate walks a placeholder-encoded segment text and produces the
// annotated markup plus the restored plain text it represents.
//
// Notable characters get one flat annotation span each; literal tab
// is skipped because it renders as ordinary horizontal whitespace
// here. The placeholders become fixed line-boundary markers whose
// glyphs are hard-coded: their role in a diff is "a line boundary
// falls here", not metadata browsing.
func (c *Compositor) annotate(text string) (markup, plain string) {
	var out strings.Builder
	var raw strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		cp := runes[i]
		switch cp {
		case lfMarker:
			// Two-part placeholder: marker then the original LF.
			// A marker with no LF behind it means the diff split
			// the pair; emit the marker glyph alone and let the
			// round-trip check reject the segment.
			out.WriteString(lineBoundarySpan('\n', "¶"))
			if i+1 < len(runes) && runes[i+1] == '\n' {
				out.WriteString("\n")
				raw.WriteString("\n")
				i++
			}
		case crMarker:
			out.WriteString(lineBoundarySpan('\r', "←"))
			raw.WriteString("\r")
		case '\t':
			out.WriteString("\t")
			raw.WriteString("\t")
		default:
			raw.WriteRune(cp)
			if e, ok := c.reg.Lookup(cp); ok {
				out.WriteString(annotationSpan(e))
				continue
			}
			out.WriteString(html.EscapeString(string(cp)))
		}
	}
	return out.String(), raw.String()
}

// annotationSpan emits the single flat wrapper for one notable
// character. Only the sanitizer's allow-listed attributes appear:
// class, code-point tag, tooltip id, tooltip content, title. The
// code-point tag is the hex code point, not the glyph: glyphs can
// collide across code points in a custom catalog, code points never
// do, and click handlers recover the original character from it.
func annotationSpan(e registry.Entry) string {
	hex := fmt.Sprintf("%04X", e.Rune)
	tip := e.Name + " (" + e.Code + ")"
	return `<span class="gl-char" data-codepoint="` + hex +
		`" data-tip="tip-` + hex +
		`" data-tip-content="` + html.EscapeString(tip) +
		`" title="` + html.EscapeString(e.LongName) +
		`">` + html.EscapeString(e.Glyph) + `</span>`
}

// lineBoundarySpan emits the fixed marker for a restored line ending.
func lineBoundarySpan(cp rune, glyph string) string {
	hex := fmt.Sprintf("%04X", cp)
	var name string
	if cp == '\n' {
		name = "Line Feed"
	} else {
		name = "Carriage Return"
	}
	tip := name + " (" + registry.FormatCode(cp) + ")"
	return `<span class="gl-newline" data-codepoint="` + hex +
		`" data-tip="tip-` + hex +
		`" data-tip-content="` + html.EscapeString(tip) +
		`" title="` + html.EscapeString(tip) +
		`">` + glyph + `</span>`
}

// encodeLineEndings substitutes the diff-safe placeholders.
var lineEndingEncoder = strings.NewReplacer(
	"\n", string(lfMarker)+"\n",
	"\r", string(crMarker),
)

func encodeLineEndings(text string) string {
	return lineEndingEncoder.Replace(text)
}

// DecodeLineEndings restores placeholder-encoded text. Exposed for
// renderers that consume raw segments instead of markup.
var lineEndingDecoder = strings.NewReplacer(
	string(lfMarker)+"\n", "\n",
	string(lfMarker), "",
	string(crMarker), "\r",
)

func DecodeLineEndings(text string) string {
	return lineEndingDecoder.Replace(text)
}

func joinSegments(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}
