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
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AleutianAI/glyphlens/pkg/scanner"
	"github.com/AleutianAI/glyphlens/pkg/session"
)

// InspectConfig configures the inspector.
type InspectConfig struct {
	// Title appears in the header (usually the file name).
	Title string

	// Width/Height override terminal size (0 = auto-detect).
	Width  int
	Height int
}

// InspectModel is the bubbletea model for the single-pane inspector.
//
// # Description
//
// Wraps one editing session. Every notable character renders as a
// chip; one chip at a time is selected and can have its visibility
// toggled. Undo/redo drive the session ledger; copy pushes the
// literal or marked text to the system clipboard.
type InspectModel struct {
	config InspectConfig
	sess   *session.Session

	segs   []scanner.Segment
	freq   scanner.Frequency
	tokens int
	cursor int // selected token index, -1 when there are none

	viewport viewport.Model
	width    int
	height   int
	ready    bool

	status   string
	showHelp bool
	quitting bool

	// copyFn is swapped out in tests; defaults to the system
	// clipboard.
	copyFn func(string) error
}

// NewInspectModel creates an inspector over the session.
func NewInspectModel(sess *session.Session, config InspectConfig) InspectModel {
	m := InspectModel{
		config: config,
		sess:   sess,
		cursor: -1,
		copyFn: clipboard.WriteAll,
	}
	m.rescan()
	return m
}

// rescan refreshes the partition after any text or visibility change
// and clamps the token cursor.
func (m *InspectModel) rescan() {
	m.segs, m.freq = m.sess.Scan()
	m.tokens = 0
	for _, s := range m.segs {
		if s.Kind == scanner.KindToken {
			m.tokens++
		}
	}
	switch {
	case m.tokens == 0:
		m.cursor = -1
	case m.cursor < 0:
		m.cursor = 0
	case m.cursor >= m.tokens:
		m.cursor = m.tokens - 1
	}
	if m.ready {
		m.viewport.SetContent(renderSegments(m.segs, m.cursor))
	}
}

// selectedToken returns the segment for the selected chip.
func (m *InspectModel) selectedToken() (scanner.Segment, bool) {
	if m.cursor < 0 {
		return scanner.Segment{}, false
	}
	idx := 0
	for _, s := range m.segs {
		if s.Kind != scanner.KindToken {
			continue
		}
		if idx == m.cursor {
			return s, true
		}
		idx++
	}
	return scanner.Segment{}, false
}

// Init implements tea.Model.
func (m InspectModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2
		footerHeight := 3
		viewportHeight := m.height - headerHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(m.width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = viewportHeight
		}
		m.viewport.SetContent(renderSegments(m.segs, m.cursor))

	case tea.KeyMsg:
		if m.showHelp {
			if s := msg.String(); s == "q" || s == "?" || s == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "?":
			m.showHelp = true

		case "u":
			if _, ok := m.sess.Undo(); ok {
				m.status = "undid"
				m.rescan()
			} else {
				m.status = "nothing to undo"
			}

		case "r":
			if _, ok := m.sess.Redo(); ok {
				m.status = "redid"
				m.rescan()
			} else {
				m.status = "nothing to redo"
			}

		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
				m.viewport.SetContent(renderSegments(m.segs, m.cursor))
			}

		case "right", "l":
			if m.cursor >= 0 && m.cursor < m.tokens-1 {
				m.cursor++
				m.viewport.SetContent(renderSegments(m.segs, m.cursor))
			}

		case "v":
			if tok, ok := m.selectedToken(); ok {
				m.sess.ToggleVisibility(tok.Entry.Rune)
				m.status = "toggled " + tok.Entry.Code
				m.rescan()
			}

		case "x":
			if tok, ok := m.selectedToken(); ok {
				n := m.sess.ReplaceAll(tok.Entry.Rune, "")
				m.status = "removed " + strconv.Itoa(n) + " × " + tok.Entry.Code
				m.rescan()
			}

		case "c":
			if err := m.copyFn(m.sess.Text()); err != nil {
				m.status = "copy failed: " + err.Error()
			} else {
				m.status = "copied text"
			}

		case "C":
			if err := m.copyFn(m.sess.MarkedText()); err != nil {
				m.status = "copy failed: " + err.Error()
			} else {
				m.status = "copied marked text"
			}

		case "j", "down":
			m.viewport.LineDown(1)

		case "k", "up":
			m.viewport.LineUp(1)

		case "g", "home":
			m.viewport.GotoTop()

		case "G", "end":
			m.viewport.GotoBottom()
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m InspectModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading...\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("glyphlens — " + m.config.Title))
	b.WriteString("\n\n")

	if m.showHelp {
		b.WriteString(m.renderHelp())
	} else {
		b.WriteString(m.viewport.View())
	}

	b.WriteString("\n")
	b.WriteString(renderFrequency(m.freq, m.sess.Registry()))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m InspectModel) renderFooter() string {
	var parts []string
	if tok, ok := m.selectedToken(); ok {
		parts = append(parts, paneHeaderStyle.Render(tok.Entry.Name+" "+tok.Entry.Code))
	}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	parts = append(parts, statusStyle.Render("? help · q quit"))
	return strings.Join(parts, "  ")
}

func (m InspectModel) renderHelp() string {
	rows := [][2]string{
		{"←/→", "select previous/next notable character"},
		{"v", "toggle visibility of selected character"},
		{"x", "remove all occurrences of selected character"},
		{"u / r", "undo / redo"},
		{"c / C", "copy text / copy with bracketed glyphs"},
		{"j/k g/G", "scroll"},
		{"q", "quit"},
	}
	var b strings.Builder
	for _, row := range rows {
		b.WriteString("  ")
		b.WriteString(helpKeyStyle.Render(row[0]))
		b.WriteString("  ")
		b.WriteString(helpDescStyle.Render(row[1]))
		b.WriteString("\n")
	}
	return b.String()
}
