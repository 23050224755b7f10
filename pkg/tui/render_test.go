// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/glyphlens/pkg/overlay"
	"github.com/AleutianAI/glyphlens/pkg/registry"
	"github.com/AleutianAI/glyphlens/pkg/scanner"
)

func TestRenderSegments_ChipsAndRuns(t *testing.T) {
	reg := registry.Default()
	segs, _ := scanner.Scan("Hello​World", reg, scanner.Visibility{})

	out := renderSegments(segs, -1)
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "World")
	assert.Contains(t, out, "ZWSP")
	assert.NotContains(t, out, "​", "visible token shows the chip, not the raw character")
}

func TestRenderSegments_HiddenTokenPassesRawCharacter(t *testing.T) {
	reg := registry.Default()
	vis := scanner.Visibility{}.Toggle('​')
	segs, _ := scanner.Scan("a​b", reg, vis)

	out := renderSegments(segs, -1)
	assert.Contains(t, out, "​")
	assert.NotContains(t, out, "ZWSP")
}

func TestRenderSegments_TabKeepsLayout(t *testing.T) {
	reg := registry.Default()
	segs, _ := scanner.Scan("a\tb", reg, scanner.Visibility{})

	out := renderSegments(segs, -1)
	assert.Contains(t, out, "→")
	assert.Contains(t, out, "\t", "the real tab follows the chip so columns still align")
}

func TestRenderSegments_LineFeedKeepsLayout(t *testing.T) {
	reg := registry.Default()
	segs, _ := scanner.Scan("a\nb", reg, scanner.Visibility{})

	// The inspector chips a line feed with its catalog glyph and keeps
	// the real newline after it so the break still happens on screen.
	out := renderSegments(segs, -1)
	assert.Contains(t, out, "LF")
	assert.Contains(t, out, "\n")
	assert.NotContains(t, out, "¶", "the pilcrow belongs to diff pane boundaries")
}

func TestRenderDiffPane_ResolvesPlaceholders(t *testing.T) {
	reg := registry.Default()
	segs := []overlay.Segment{{
		Text:   "a" + string(overlay.LFMarker) + "\n" + string(overlay.CRMarker) + "b c",
		Status: overlay.Unchanged,
	}}

	out := renderDiffPane(segs, reg)
	assert.Contains(t, out, "¶")
	assert.Contains(t, out, "\n")
	assert.Contains(t, out, "←")
	assert.Contains(t, out, "NBSP")
	assert.NotContains(t, out, string(overlay.LFMarker))
	assert.NotContains(t, out, string(overlay.CRMarker))
}

func TestRenderFrequency(t *testing.T) {
	reg := registry.Default()

	out := renderFrequency(scanner.Frequency{}, reg)
	assert.Contains(t, out, "no notable characters")

	freq := scanner.Count("a​b​c\td", reg)
	out = renderFrequency(freq, reg)
	assert.Contains(t, out, "ZWSP×2")
	assert.Contains(t, out, "→×1")
}

func TestRenderFrequency_StableOrder(t *testing.T) {
	reg := registry.Default()
	freq := scanner.Count("​\t", reg)

	first := renderFrequency(freq, reg)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, renderFrequency(freq, reg))
	}
	// Catalog order: tab (U+0009) before ZWSP (U+200B).
	require.NotEqual(t, -1, strings.Index(first, "→"))
	require.NotEqual(t, -1, strings.Index(first, "ZWSP"))
	assert.Less(t, strings.Index(first, "→"), strings.Index(first, "ZWSP"))
}
