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
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	configPath string
	logLevel   string
	logJSON    bool
	quiet      bool

	scanJSON   bool
	scanCopy   bool
	scanMarked bool

	diffHTMLOut    string
	diffPatch      bool
	diffSimilarity bool
	diffElide      bool
	diffPlain      bool

	rootCmd = &cobra.Command{
		Use:   "glyphlens",
		Short: "Detect, explain, and compare invisible Unicode characters",
		Long: `glyphlens surfaces the characters localization work lives and
dies by: directional marks, exotic spaces, joiners, isolates, and
other invisible code points. It annotates single texts, compares two
texts without losing the annotations, and explains every character it
knows about.`,
	}

	scanCmd = &cobra.Command{
		Use:   "scan [file]",
		Short: "Annotate a text and report its notable characters",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScan, // Defined in cmd_scan.go
	}

	diffCmd = &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Compare two texts with annotations kept visible",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runDiff, // Defined in cmd_diff.go
	}

	editCmd = &cobra.Command{
		Use:   "edit [file]",
		Short: "Inspect and edit a text interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEdit, // Defined in cmd_edit.go
	}

	watchCmd = &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-scan a file whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch, // Defined in cmd_watch.go
	}

	registryCmd = &cobra.Command{
		Use:   "registry",
		Short: "Browse the notable-character catalog",
	}

	registryListCmd = &cobra.Command{
		Use:   "list",
		Short: "List every cataloged code point",
		RunE:  runRegistryList, // Defined in cmd_registry.go
	}

	registryShowCmd = &cobra.Command{
		Use:   "show <codepoint>",
		Short: "Show one catalog entry in full (e.g. show U+200B)",
		Args:  cobra.ExactArgs(1),
		RunE:  runRegistryShow, // Defined in cmd_registry.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "glyphlens.yaml",
		"Path to the YAML config file (missing file uses defaults)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false,
		"Emit logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false,
		"Silence logs below error")

	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVar(&scanJSON, "json", false,
		"Emit the scan result as JSON")
	scanCmd.Flags().BoolVar(&scanMarked, "marked", false,
		"Print the text with bracketed glyphs instead of the annotation summary")
	scanCmd.Flags().BoolVar(&scanCopy, "copy", false,
		"Copy the output to the system clipboard")

	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().StringVarP(&diffHTMLOut, "html", "o", "",
		"Write an HTML report to this path instead of opening the viewer")
	diffCmd.Flags().BoolVar(&diffPatch, "patch", false,
		"Treat the single argument as a unified diff file")
	diffCmd.Flags().BoolVar(&diffSimilarity, "similarity", false,
		"Print the similarity percentage and exit")
	diffCmd.Flags().BoolVar(&diffElide, "elide", false,
		"Drop unchanged regions from both panes")
	diffCmd.Flags().BoolVar(&diffPlain, "plain", false,
		"Print both panes as plain annotated text instead of opening the viewer")

	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(watchCmd)

	rootCmd.AddCommand(registryCmd)
	registryCmd.AddCommand(registryListCmd)
	registryCmd.AddCommand(registryShowCmd)
}
