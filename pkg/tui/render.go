// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package tui provides the interactive inspector and dual-pane diff
// viewer.
//
// # Description
//
// Both views are bubbletea models. The inspector shows one text with
// every notable character surfaced as a colored chip and supports
// undo/redo, visibility toggles, and clipboard copy. The diff viewer
// shows two texts side by side with the annotation overlay kept
// intact through the diff.
//
// # Thread Safety
//
// Models live inside the bubbletea event loop and are
// single-threaded by construction. Do not touch a model from outside
// the loop.
package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AleutianAI/glyphlens/pkg/overlay"
	"github.com/AleutianAI/glyphlens/pkg/registry"
	"github.com/AleutianAI/glyphlens/pkg/scanner"
)

var (
	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)

	selectedChipStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("16")).
				Background(lipgloss.Color("214")).
				Bold(true)

	boundaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	addedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	removedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Strikethrough(true)

	unchangedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	paneHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))
)

// renderSegments draws a scanned partition for the terminal.
//
// Visible tokens render as glyph chips; hidden tokens pass their raw
// character through. Tab and line feed additionally emit the real
// character after the chip so the text keeps its layout. selected
// (an index into the token subsequence, -1 for none) highlights one
// chip.
func renderSegments(segs []scanner.Segment, selected int) string {
	var b strings.Builder
	tokenIdx := 0
	for _, seg := range segs {
		if seg.Kind == scanner.KindRun {
			b.WriteString(seg.Text)
			continue
		}
		if !seg.Visible {
			b.WriteString(seg.Text)
			tokenIdx++
			continue
		}
		style := chipStyle
		if tokenIdx == selected {
			style = selectedChipStyle
		}
		b.WriteString(style.Render(seg.Entry.Glyph))
		switch seg.Text {
		case "\t":
			b.WriteString("\t")
		case "\n":
			b.WriteString("\n")
		}
		tokenIdx++
	}
	return b.String()
}

// renderDiffPane draws one pane's raw diff segments, resolving the
// compositor's line-ending placeholders to fixed boundary glyphs.
func renderDiffPane(segs []overlay.Segment, reg *registry.Registry) string {
	var b strings.Builder
	for _, seg := range segs {
		var style lipgloss.Style
		switch seg.Status {
		case overlay.Added:
			style = addedStyle
		case overlay.Removed:
			style = removedStyle
		default:
			style = unchangedStyle
		}

		runes := []rune(seg.Text)
		for i := 0; i < len(runes); i++ {
			cp := runes[i]
			switch cp {
			case overlay.LFMarker:
				b.WriteString(boundaryStyle.Render("¶"))
				if i+1 < len(runes) && runes[i+1] == '\n' {
					b.WriteString("\n")
					i++
				}
			case overlay.CRMarker:
				b.WriteString(boundaryStyle.Render("←"))
			case '\t':
				b.WriteString("\t")
			default:
				if e, ok := reg.Lookup(cp); ok {
					b.WriteString(chipStyle.Render(e.Glyph))
					continue
				}
				b.WriteString(style.Render(string(cp)))
			}
		}
	}
	return b.String()
}

// renderFrequency draws the code point histogram for the status area.
func renderFrequency(freq scanner.Frequency, reg *registry.Registry) string {
	if len(freq) == 0 {
		return statusStyle.Render("no notable characters")
	}
	var parts []string
	for _, cp := range reg.Runes() {
		if n, ok := freq[cp]; ok {
			e, _ := reg.Lookup(cp)
			parts = append(parts, e.Glyph+"×"+strconv.Itoa(n))
		}
	}
	return statusStyle.Render(strings.Join(parts, "  "))
}
