// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package history implements a linear undo/redo ledger of full-text
// snapshots.
//
// # Description
//
// The ledger is an append-only sequence of snapshots with a movable
// cursor. A new commit truncates everything after the cursor before
// appending, which is standard linear-history semantics: diverging
// after an undo discards the redo branch. Undo and redo only move the
// cursor; they never commit, so the redo branch survives until the
// next real edit.
//
// # Thread Safety
//
// Not safe for concurrent use. Each session owns exactly one Ledger.
package history

// Ledger holds the snapshot sequence and cursor.
//
// Invariant: 0 <= cursor < len(snapshots); the snapshot at the cursor
// is the currently displayed text. A fresh Ledger starts with one
// empty-string snapshot, so the invariant holds from birth.
type Ledger struct {
	snapshots []string
	cursor    int
}

// New creates a ledger seeded with a single empty snapshot.
func New() *Ledger {
	return &Ledger{snapshots: []string{""}}
}

// Commit records a new snapshot as the current text.
//
// # Description
//
// Truncates all snapshots after the cursor, appends text, and moves
// the cursor to it. Always succeeds. O(k) in the truncated length.
func (l *Ledger) Commit(text string) {
	l.snapshots = append(l.snapshots[:l.cursor+1], text)
	l.cursor = len(l.snapshots) - 1
}

// Undo steps the cursor back one snapshot.
//
// # Outputs
//
//   - string: The snapshot now under the cursor.
//   - bool: False when there is nothing to undo; the ledger is
//     unchanged and the returned string is the current text. A
//     boundary undo is a reported no-op, not an error.
func (l *Ledger) Undo() (string, bool) {
	if l.cursor == 0 {
		return l.snapshots[l.cursor], false
	}
	l.cursor--
	return l.snapshots[l.cursor], true
}

// Redo steps the cursor forward one snapshot.
//
// Mirror of Undo: false means nothing to redo.
func (l *Ledger) Redo() (string, bool) {
	if l.cursor == len(l.snapshots)-1 {
		return l.snapshots[l.cursor], false
	}
	l.cursor++
	return l.snapshots[l.cursor], true
}

// Current returns the snapshot under the cursor.
func (l *Ledger) Current() string {
	return l.snapshots[l.cursor]
}

// CanUndo reports whether Undo would move the cursor. UIs use this to
// enable or disable the corresponding control.
func (l *Ledger) CanUndo() bool {
	return l.cursor > 0
}

// CanRedo reports whether Redo would move the cursor.
func (l *Ledger) CanRedo() bool {
	return l.cursor < len(l.snapshots)-1
}

// Len returns the number of snapshots in the ledger.
func (l *Ledger) Len() int {
	return len(l.snapshots)
}

// Cursor returns the current cursor index.
func (l *Ledger) Cursor() int {
	return l.cursor
}

// At returns the snapshot at index i.
//
// # Outputs
//
//   - string: The snapshot, or "" when i is out of range.
//   - bool: Whether i was a valid index.
func (l *Ledger) At(i int) (string, bool) {
	if i < 0 || i >= len(l.snapshots) {
		return "", false
	}
	return l.snapshots[i], true
}
