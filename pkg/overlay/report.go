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
	"html"
	"strings"
)

// reportCSS styles the annotation spans the compositor emits. Only
// the classes from the sanitizer allow-list appear.
const reportCSS = `body { font-family: sans-serif; margin: 2rem; }
.gl-pane { display: inline-block; vertical-align: top; width: 47%;
  white-space: pre-wrap; border: 1px solid #ccc; padding: 1rem; margin: 0 1%; }
.gl-pane h2 { font-size: 1rem; margin-top: 0; }
.gl-char { background: #5f5fd7; color: #ffffaf; border-radius: 3px;
  padding: 0 2px; font-size: 0.8em; cursor: help; }
.gl-newline { color: #888; }
.gl-added { background: #e6ffed; }
.gl-removed { background: #ffeef0; text-decoration: line-through; }
.gl-unchanged {}`

// ReportHTML renders a composed comparison as a standalone HTML page.
//
// # Inputs
//
//   - res: Output of Compare or RenderSegments.
//   - oldLabel, newLabel: Pane headings, escaped here.
//
// # Outputs
//
//   - string: Complete HTML document.
func ReportHTML(res Result, oldLabel, newLabel string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>glyphlens comparison</title>\n<style>\n")
	b.WriteString(reportCSS)
	b.WriteString("\n</style>\n</head>\n<body>\n")

	b.WriteString(`<div class="gl-pane"><h2>`)
	b.WriteString(html.EscapeString(oldLabel))
	b.WriteString("</h2>")
	b.WriteString(PaneHTML(res.Old))
	b.WriteString("</div>\n")

	b.WriteString(`<div class="gl-pane"><h2>`)
	b.WriteString(html.EscapeString(newLabel))
	b.WriteString("</h2>")
	b.WriteString(PaneHTML(res.New))
	b.WriteString("</div>\n")

	b.WriteString("</body>\n</html>\n")
	return b.String()
}
