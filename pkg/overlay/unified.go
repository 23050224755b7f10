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
	"fmt"
	"strings"

	"github.com/sourcegraph/go-diff/diff"
)

// ParseUnifiedPatch converts an externally produced unified diff into
// per-pane segment sequences.
//
// # Description
//
// Localization reviews often start from a patch file (a .po or .xliff
// diff out of version control) rather than two loose texts. This
// ingests such a patch so the same annotation pipeline can run over
// it without re-diffing: context lines become unchanged segments in
// both panes, "-" lines become removals, "+" lines become additions.
// Line granularity is whatever the patch carries.
//
// Hunk line endings are re-encoded with the compositor's placeholders
// so rendering shows the line boundaries like any composited diff.
//
// # Inputs
//
//   - patch: Unified diff text, single file or multi-file.
//
// # Outputs
//
//   - oldSegs, newSegs: Segment sequences per pane.
//   - error: When the patch is not parseable unified diff.
func ParseUnifiedPatch(patch string) (oldSegs, newSegs []Segment, err error) {
	fileDiffs, err := diff.NewMultiFileDiffReader(strings.NewReader(patch)).ReadAllFiles()
	if err != nil {
		return nil, nil, fmt.Errorf("overlay: parse unified patch: %w", err)
	}

	for _, fd := range fileDiffs {
		for _, hunk := range fd.Hunks {
			lines := strings.Split(string(hunk.Body), "\n")
			// The parser stores every hunk line with a trailing newline,
			// so the split always ends on one empty artifact.
			if n := len(lines); n > 0 && lines[n-1] == "" {
				lines = lines[:n-1]
			}
			for _, line := range lines {
				if line == "" {
					// A context line holding an empty line of content;
					// some diff producers strip the trailing space.
					line = " "
				}
				prefix, rest := line[0], line[1:]
				text := encodeLineEndings(rest + "\n")
				switch prefix {
				case ' ':
					oldSegs = append(oldSegs, Segment{Text: text, Status: Unchanged})
					newSegs = append(newSegs, Segment{Text: text, Status: Unchanged})
				case '-':
					oldSegs = append(oldSegs, Segment{Text: text, Status: Removed})
				case '+':
					newSegs = append(newSegs, Segment{Text: text, Status: Added})
				case '\\':
					// "\ No newline at end of file" metadata, skip.
				default:
					return nil, nil, fmt.Errorf("overlay: unexpected hunk line prefix %q", prefix)
				}
			}
		}
	}
	return oldSegs, newSegs, nil
}

// RenderSegments annotates pre-built segments (typically from
// ParseUnifiedPatch) through the same pipeline Compare uses.
func (c *Compositor) RenderSegments(oldSegs, newSegs []Segment) (Result, error) {
	res := Result{
		Old: make([]RenderedSegment, 0, len(oldSegs)),
		New: make([]RenderedSegment, 0, len(newSegs)),
	}
	for _, seg := range oldSegs {
		rendered, err := c.renderSegment(seg)
		if err != nil {
			return Result{}, err
		}
		res.Old = append(res.Old, rendered)
	}
	for _, seg := range newSegs {
		rendered, err := c.renderSegment(seg)
		if err != nil {
			return Result{}, err
		}
		res.New = append(res.New, rendered)
	}
	return res, nil
}
