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
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips everything from annotated markup except the one
// wrapper element and its fixed attribute set.
//
// # Description
//
// The allow-list is exactly the contract the compositor emits
// against: <span> with class, data-codepoint, data-tip,
// data-tip-content, and title. Anything else in a segment's text,
// including tags smuggled in by the compared documents, is stripped,
// so composited output is injection-safe by construction.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer builds the allow-list policy.
func NewSanitizer() *Sanitizer {
	p := bluemonday.NewPolicy()
	p.AllowElements("span")
	p.AllowAttrs("class", "data-codepoint", "data-tip", "data-tip-content", "title").
		OnElements("span")
	return &Sanitizer{policy: p}
}

// Clean returns the sanitized markup.
func (s *Sanitizer) Clean(markup string) string {
	return s.policy.Sanitize(markup)
}
