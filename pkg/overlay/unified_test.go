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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/glyphlens/pkg/registry"
)

const samplePatch = `--- a/greeting.po
+++ b/greeting.po
@@ -1,3 +1,3 @@
 msgid "hello"
-msgstr "Bonjour le monde"
+msgstr "Bonjour` + " " + `le monde"

`

func TestParseUnifiedPatch(t *testing.T) {
	oldSegs, newSegs, err := ParseUnifiedPatch(samplePatch)
	require.NoError(t, err)

	require.Len(t, oldSegs, 3)
	require.Len(t, newSegs, 3)

	assert.Equal(t, Unchanged, oldSegs[0].Status)
	assert.Equal(t, Unchanged, newSegs[0].Status)
	assert.Equal(t, oldSegs[0].Text, newSegs[0].Text)
	assert.Equal(t, "msgid \"hello\"\n", DecodeLineEndings(oldSegs[0].Text))

	assert.Equal(t, Removed, oldSegs[1].Status)
	assert.Equal(t, "msgstr \"Bonjour le monde\"\n", DecodeLineEndings(oldSegs[1].Text))

	assert.Equal(t, Added, newSegs[1].Status)
	assert.Equal(t, "msgstr \"Bonjour le monde\"\n", DecodeLineEndings(newSegs[1].Text))

	// The trailing blank line of the hunk is an empty context line,
	// not a parse artifact: both panes carry it as an unchanged "\n".
	assert.Equal(t, Unchanged, oldSegs[2].Status)
	assert.Equal(t, "\n", DecodeLineEndings(oldSegs[2].Text))
	assert.Equal(t, "\n", DecodeLineEndings(newSegs[2].Text))
}

func TestParseUnifiedPatch_NoTrailingContext(t *testing.T) {
	patch := "--- a/x\n+++ b/x\n@@ -1,2 +1,2 @@\n ctx\n-old\n+new\n"

	oldSegs, newSegs, err := ParseUnifiedPatch(patch)
	require.NoError(t, err)

	// No segment is invented past the hunk's last real line.
	require.Len(t, oldSegs, 2)
	require.Len(t, newSegs, 2)
	assert.Equal(t, Removed, oldSegs[1].Status)
	assert.Equal(t, Added, newSegs[1].Status)
}

func TestParseUnifiedPatch_BadHunkHeader(t *testing.T) {
	_, _, err := ParseUnifiedPatch("--- a/x\n+++ b/x\n@@ not a range @@\n x\n")
	assert.Error(t, err)
}

func TestRenderSegments_FromPatch(t *testing.T) {
	oldSegs, newSegs, err := ParseUnifiedPatch(samplePatch)
	require.NoError(t, err)

	comp := NewCompositor(registry.Default())
	res, err := comp.RenderSegments(oldSegs, newSegs)
	require.NoError(t, err)
	require.Len(t, res.Old, 3)
	require.Len(t, res.New, 3)

	// The added line carries the no-break space annotation.
	assert.Contains(t, res.New[1].HTML, `data-codepoint="00A0"`)
	assert.Contains(t, res.New[1].HTML, ">NBSP</span>")
	assert.NotContains(t, res.Old[1].HTML, "gl-char")

	// Every line-granular segment ends with a rendered line boundary.
	for _, seg := range append(res.Old, res.New...) {
		assert.Contains(t, seg.HTML, ">¶</span>")
	}
}
