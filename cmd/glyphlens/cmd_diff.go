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
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/glyphlens/pkg/overlay"
	"github.com/AleutianAI/glyphlens/pkg/registry"
	"github.com/AleutianAI/glyphlens/pkg/scanner"
	"github.com/AleutianAI/glyphlens/pkg/similarity"
	"github.com/AleutianAI/glyphlens/pkg/tui"
)

func runDiff(cmd *cobra.Command, args []string) error {
	reg := registry.Default()
	elide := diffElide || cfg.Diff.ElideUnchanged

	if diffPatch {
		if len(args) != 1 {
			return fmt.Errorf("--patch takes exactly one file argument")
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		oldSegs, newSegs, err := overlay.ParseUnifiedPatch(string(data))
		if err != nil {
			return err
		}
		return presentSegments(cmd, reg, oldSegs, newSegs, args[0]+" (old)", args[0]+" (new)", elide)
	}

	if len(args) != 2 {
		return fmt.Errorf("diff takes two file arguments (or one with --patch)")
	}
	oldData, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	newData, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[1], err)
	}
	oldText, newText := string(oldData), string(newData)

	if diffSimilarity {
		fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", similarity.Score(oldText, newText))
		return nil
	}

	comp := overlay.NewCompositor(reg, overlay.WithElision(elide))

	if diffHTMLOut != "" {
		res, err := comp.Compare(oldText, newText)
		if err != nil {
			return err
		}
		page := overlay.ReportHTML(res, args[0], args[1])
		if err := os.WriteFile(diffHTMLOut, []byte(page), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", diffHTMLOut, err)
		}
		log.Info("wrote report", "path", diffHTMLOut)
		return nil
	}

	if diffPlain {
		oldSegs, newSegs, err := comp.Segments(oldText, newText)
		if err != nil {
			return err
		}
		printPlainPanes(cmd, reg, oldSegs, newSegs, args[0], args[1])
		return nil
	}

	model, err := tui.NewDiffModel(oldText, newText, reg, tui.DiffConfig{
		OldLabel:       args[0],
		NewLabel:       args[1],
		ElideUnchanged: elide,
	})
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// presentSegments routes pre-built segments (patch mode) to the
// requested output.
func presentSegments(cmd *cobra.Command, reg *registry.Registry, oldSegs, newSegs []overlay.Segment, oldLabel, newLabel string, elide bool) error {
	if elide {
		oldSegs = dropUnchanged(oldSegs)
		newSegs = dropUnchanged(newSegs)
	}

	if diffHTMLOut != "" {
		comp := overlay.NewCompositor(reg)
		res, err := comp.RenderSegments(oldSegs, newSegs)
		if err != nil {
			return err
		}
		page := overlay.ReportHTML(res, oldLabel, newLabel)
		if err := os.WriteFile(diffHTMLOut, []byte(page), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", diffHTMLOut, err)
		}
		log.Info("wrote report", "path", diffHTMLOut)
		return nil
	}

	if diffPlain {
		printPlainPanes(cmd, reg, oldSegs, newSegs, oldLabel, newLabel)
		return nil
	}

	model := tui.NewDiffModelFromSegments(oldSegs, newSegs, reg, tui.DiffConfig{
		OldLabel: oldLabel,
		NewLabel: newLabel,
	})
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func dropUnchanged(segs []overlay.Segment) []overlay.Segment {
	out := segs[:0:0]
	for _, s := range segs {
		if s.Status != overlay.Unchanged {
			out = append(out, s)
		}
	}
	return out
}

// printPlainPanes writes both panes as plain text with bracketed
// glyphs, additions wrapped in {+...+} and removals in [-...-].
// Scripting output; no terminal styling.
func printPlainPanes(cmd *cobra.Command, reg *registry.Registry, oldSegs, newSegs []overlay.Segment, oldLabel, newLabel string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "--- %s\n", oldLabel)
	fmt.Fprintln(out, plainPane(oldSegs, reg))
	fmt.Fprintf(out, "+++ %s\n", newLabel)
	fmt.Fprintln(out, plainPane(newSegs, reg))
}

func plainPane(segs []overlay.Segment, reg *registry.Registry) string {
	var b strings.Builder
	for _, seg := range segs {
		text := scanner.Marked(overlay.DecodeLineEndings(seg.Text), reg)
		switch seg.Status {
		case overlay.Added:
			b.WriteString("{+" + text + "+}")
		case overlay.Removed:
			b.WriteString("[-" + text + "-]")
		default:
			b.WriteString(text)
		}
	}
	return b.String()
}
