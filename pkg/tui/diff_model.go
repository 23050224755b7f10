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
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AleutianAI/glyphlens/pkg/overlay"
	"github.com/AleutianAI/glyphlens/pkg/registry"
	"github.com/AleutianAI/glyphlens/pkg/similarity"
)

// DiffConfig configures the dual-pane viewer.
type DiffConfig struct {
	// OldLabel/NewLabel appear above the panes (usually file names).
	OldLabel string
	NewLabel string

	// Width/Height override terminal size (0 = auto-detect).
	Width  int
	Height int

	// ElideUnchanged drops unchanged regions from both panes.
	ElideUnchanged bool
}

// DiffModel is the bubbletea model for the dual-pane comparison.
//
// # Description
//
// Renders the compositor's raw segments side by side: removals in
// the old pane, additions in the new pane, annotations and line
// boundary markers in both. The header shows the similarity
// percentage of the two raw texts. Scrolling moves both panes in
// lockstep.
type DiffModel struct {
	config DiffConfig
	reg    *registry.Registry

	oldSegs []overlay.Segment
	newSegs []overlay.Segment
	score   float64

	oldView viewport.Model
	newView viewport.Model
	width   int
	height  int
	ready   bool

	quitting bool
}

// NewDiffModel composes the two texts and builds the viewer.
//
// The compositor error (a differ failure or an integrity fault) is
// returned rather than rendered: a corrupted comparison must not be
// shown at all.
func NewDiffModel(oldText, newText string, reg *registry.Registry, config DiffConfig) (DiffModel, error) {
	comp := overlay.NewCompositor(reg, overlay.WithElision(config.ElideUnchanged))
	oldSegs, newSegs, err := comp.Segments(oldText, newText)
	if err != nil {
		return DiffModel{}, err
	}
	return DiffModel{
		config:  config,
		reg:     reg,
		oldSegs: oldSegs,
		newSegs: newSegs,
		score:   similarity.Score(oldText, newText),
	}, nil
}

// NewDiffModelFromSegments builds the viewer over pre-built segments
// (unified-patch ingestion). No similarity score is available.
func NewDiffModelFromSegments(oldSegs, newSegs []overlay.Segment, reg *registry.Registry, config DiffConfig) DiffModel {
	return DiffModel{
		config:  config,
		reg:     reg,
		oldSegs: oldSegs,
		newSegs: newSegs,
		score:   -1,
	}
}

// Init implements tea.Model.
func (m DiffModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DiffModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		footerHeight := 2
		paneWidth := (m.width - 1) / 2
		paneHeight := m.height - headerHeight - footerHeight

		if !m.ready {
			m.oldView = viewport.New(paneWidth, paneHeight)
			m.newView = viewport.New(paneWidth, paneHeight)
			m.ready = true
		} else {
			m.oldView.Width = paneWidth
			m.newView.Width = paneWidth
			m.oldView.Height = paneHeight
			m.newView.Height = paneHeight
		}
		m.oldView.SetContent(renderDiffPane(m.oldSegs, m.reg))
		m.newView.SetContent(renderDiffPane(m.newSegs, m.reg))

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "j", "down":
			m.oldView.LineDown(1)
			m.newView.LineDown(1)

		case "k", "up":
			m.oldView.LineUp(1)
			m.newView.LineUp(1)

		case "ctrl+d":
			m.oldView.HalfViewDown()
			m.newView.HalfViewDown()

		case "ctrl+u":
			m.oldView.HalfViewUp()
			m.newView.HalfViewUp()

		case "g", "home":
			m.oldView.GotoTop()
			m.newView.GotoTop()

		case "G", "end":
			m.oldView.GotoBottom()
			m.newView.GotoBottom()
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m DiffModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading...\n"
	}

	var b strings.Builder
	title := "glyphlens diff"
	if m.score >= 0 {
		title = fmt.Sprintf("%s — %.2f%% similar", title, m.score)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	paneWidth := (m.width - 1) / 2
	labels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		paneHeaderStyle.Width(paneWidth).Render(m.config.OldLabel),
		" ",
		paneHeaderStyle.Width(paneWidth).Render(m.config.NewLabel),
	)
	b.WriteString(labels)
	b.WriteString("\n")

	b.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.oldView.View(),
		" ",
		m.newView.View(),
	))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render("j/k scroll · g/G top/bottom · q quit"))
	return b.String()
}
