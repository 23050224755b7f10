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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/glyphlens/pkg/registry"
	"github.com/AleutianAI/glyphlens/pkg/scanner"
)

// readInput loads the single optional file argument, or stdin.
func readInput(args []string) (text, label string, err error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "stdin", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), args[0], nil
}

// scanReport is the JSON shape of a scan.
type scanReport struct {
	Source    string         `json:"source"`
	Length    int            `json:"length"`
	Marked    string         `json:"marked"`
	Frequency map[string]int `json:"frequency"`
}

func runScan(cmd *cobra.Command, args []string) error {
	text, label, err := readInput(args)
	if err != nil {
		return err
	}

	reg := registry.Default()
	freq := scanner.Count(text, reg)
	marked := scanner.Marked(text, reg)
	log.Info("scanned", "source", label, "runes", len([]rune(text)), "notable", freq.Total())

	if scanJSON {
		report := scanReport{
			Source:    label,
			Length:    len([]rune(text)),
			Marked:    marked,
			Frequency: make(map[string]int, len(freq)),
		}
		for cp, n := range freq {
			report.Frequency[registry.FormatCode(cp)] = n
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	// The annotated text always prints; --marked stops there, the
	// default view appends the summary and histogram.
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, marked)
	if !scanMarked {
		fmt.Fprintf(out, "%s: %d notable characters in %d\n",
			label, freq.Total(), len([]rune(text)))
		for _, cp := range reg.Runes() {
			if n, ok := freq[cp]; ok {
				e, _ := reg.Lookup(cp)
				fmt.Fprintf(out, "  %-7s %-24s ×%d\n", e.Code, e.Name, n)
			}
		}
	}

	if scanCopy {
		payload := text
		if scanMarked || cfg.Clipboard.Bracketed {
			payload = marked
		}
		if err := clipboard.WriteAll(payload); err != nil {
			return fmt.Errorf("clipboard: %w", err)
		}
		log.Info("copied to clipboard", "marked", scanMarked || cfg.Clipboard.Bracketed)
	}
	return nil
}
