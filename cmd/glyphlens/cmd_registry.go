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

	"github.com/spf13/cobra"

	"github.com/AleutianAI/glyphlens/pkg/config"
	"github.com/AleutianAI/glyphlens/pkg/registry"
)

func runRegistryList(cmd *cobra.Command, args []string) error {
	reg := registry.Default()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-8s %-6s %s\n", "CODE", "GLYPH", "NAME")
	for _, cp := range reg.Runes() {
		e, _ := reg.Lookup(cp)
		fmt.Fprintf(out, "%-8s %-6s %s\n", e.Code, e.Glyph, e.Name)
	}
	return nil
}

func runRegistryShow(cmd *cobra.Command, args []string) error {
	cp, err := config.ParseCodePoint(args[0])
	if err != nil {
		return err
	}

	// Resolve falls back to a synthesized entry for uncataloged
	// code points, so "show" works on anything.
	e := registry.Default().Resolve(cp)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s\n", e.Code, e.Name)
	fmt.Fprintf(out, "Unicode name: %s\n", e.LongName)
	fmt.Fprintf(out, "Glyph:        %s\n", e.Glyph)
	if e.Example != "" {
		fmt.Fprintf(out, "\nExample:\n%s\n", e.Example)
	}
	if e.Usage != "" {
		fmt.Fprintf(out, "\nUsage:\n%s\n", e.Usage)
	}
	return nil
}
