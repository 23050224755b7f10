// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package session owns a single editing session's mutable state.
//
// # Description
//
// All mutable state (the current text, the undo ledger, the
// visibility flags) lives in one Session value passed to and returned
// from operations; nothing is kept in package globals. Every
// externally visible edit (typed change, programmatic insert,
// replace-all, revert) goes through the ledger via Commit; undo and
// redo only move the ledger cursor, which is what preserves the redo
// branch until the next real edit.
//
// # Thread Safety
//
// A Session is owned by a single goroutine, the UI event loop.
// Sessions never share a ledger or visibility map; the registry is
// immutable and safely shared.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/AleutianAI/glyphlens/pkg/history"
	"github.com/AleutianAI/glyphlens/pkg/registry"
	"github.com/AleutianAI/glyphlens/pkg/scanner"
)

// ErrOffsetRange reports an InsertAt offset outside [0, len].
//
// This is a programming-contract violation, not a user condition:
// callers must clamp cursor positions against the current text
// length before calling, especially after the text changed under a
// stale cursor.
var ErrOffsetRange = errors.New("session: insert offset out of range")

// Session is one editing session.
type Session struct {
	id  string
	reg *registry.Registry

	text   string
	ledger *history.Ledger
	vis    scanner.Visibility
}

// New creates a session over the given registry.
//
// The ledger starts with one empty snapshot; the session text starts
// empty and every code point starts visible.
func New(reg *registry.Registry) *Session {
	return &Session{
		id:     uuid.NewString(),
		reg:    reg,
		ledger: history.New(),
		vis:    scanner.Visibility{},
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Registry returns the shared immutable catalog.
func (s *Session) Registry() *registry.Registry { return s.reg }

// Text returns the current text.
func (s *Session) Text() string { return s.text }

// Ledger exposes the undo/redo ledger for UI control state.
func (s *Session) Ledger() *history.Ledger { return s.ledger }

// Visibility returns the session's rendering flags.
func (s *Session) Visibility() scanner.Visibility { return s.vis }

// Scan returns the annotated partition and frequency table of the
// current text.
func (s *Session) Scan() ([]scanner.Segment, scanner.Frequency) {
	return scanner.Scan(s.text, s.reg, s.vis)
}

// SetText replaces the whole text as one committed edit.
//
// This is the path for typed changes and file loads. A no-op when
// the text is unchanged, so repeated loads do not pollute the
// ledger.
func (s *Session) SetText(text string) {
	if text == s.text {
		return
	}
	s.text = text
	s.ledger.Commit(text)
}

// InsertAt splices a single character into the text at a rune offset.
//
// # Inputs
//
//   - offset: Rune position in [0, len]; anything else returns
//     ErrOffsetRange and leaves the session untouched.
//   - ch: The character to insert.
//
// # Outputs
//
//   - error: nil on success; the edit is committed to the ledger.
func (s *Session) InsertAt(offset int, ch rune) error {
	runes := []rune(s.text)
	if offset < 0 || offset > len(runes) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrOffsetRange, offset, len(runes))
	}

	var b strings.Builder
	b.Grow(len(s.text) + 4)
	b.WriteString(string(runes[:offset]))
	b.WriteRune(ch)
	b.WriteString(string(runes[offset:]))

	s.text = b.String()
	s.ledger.Commit(s.text)
	return nil
}

// ReplaceAll replaces every literal occurrence of target.
//
// # Description
//
// The replacement may be empty, signifying deletion, and is never
// recursive: a replacement string containing the target does not
// loop. The returned count is taken from the pre-replacement
// frequency table so the caller can report "Replaced N occurrences".
// Zero occurrences means no commit.
func (s *Session) ReplaceAll(target rune, replacement string) int {
	count := strings.Count(s.text, string(target))
	if count == 0 {
		return 0
	}
	s.text = strings.ReplaceAll(s.text, string(target), replacement)
	s.ledger.Commit(s.text)
	return count
}

// ToggleVisibility flips the rendering flag for a code point.
//
// Rendering-only: the text and the frequency table are unaffected.
// Toggling twice restores the original state.
func (s *Session) ToggleVisibility(cp rune) {
	s.vis = s.vis.Toggle(cp)
}

// Undo steps back one snapshot.
//
// # Outputs
//
//   - string: The now-current text.
//   - bool: False when there was nothing to undo.
func (s *Session) Undo() (string, bool) {
	text, ok := s.ledger.Undo()
	if ok {
		s.text = text
	}
	return s.text, ok
}

// Redo steps forward one snapshot.
func (s *Session) Redo() (string, bool) {
	text, ok := s.ledger.Redo()
	if ok {
		s.text = text
	}
	return s.text, ok
}

// Revert restores the snapshot at ledger index i as a new committed
// edit, so the revert itself is undoable.
func (s *Session) Revert(i int) error {
	snap, ok := s.ledger.At(i)
	if !ok {
		return fmt.Errorf("session: no snapshot at index %d", i)
	}
	s.SetText(snap)
	return nil
}

// MarkedText returns the clipboard-safe variant of the text: every
// notable character replaced by its bracketed glyph (tab becomes
// "[→]") so it can be shared as plain text without the invisible
// characters travelling along.
func (s *Session) MarkedText() string {
	return scanner.Marked(s.text, s.reg)
}

// Frequency returns the notable-character counts of the current text.
func (s *Session) Frequency() scanner.Frequency {
	return scanner.Count(s.text, s.reg)
}
