// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/glyphlens/pkg/config"
	"github.com/AleutianAI/glyphlens/pkg/registry"
	"github.com/AleutianAI/glyphlens/pkg/session"
	"github.com/AleutianAI/glyphlens/pkg/tui"
)

func runEdit(cmd *cobra.Command, args []string) error {
	text, label, err := readInput(args)
	if err != nil {
		return err
	}

	sess := newSession(cfg, text)
	log.Info("session started", "id", sess.ID(), "source", label)

	model := tui.NewInspectModel(sess, tui.InspectConfig{Title: label})
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// newSession builds a session seeded from the config: the text is
// the first committed snapshot and config-hidden code points start
// with their annotations off.
func newSession(cfg config.Config, text string) *session.Session {
	sess := session.New(registry.Default())
	for _, cp := range cfg.HiddenRunes() {
		sess.ToggleVisibility(cp)
	}
	sess.SetText(text)
	return sess
}
