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
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/glyphlens/pkg/registry"
	"github.com/AleutianAI/glyphlens/pkg/scanner"
)

// runWatch re-scans a file on every write and logs a summary, so a
// translator can keep an eye on a file while another tool edits it.
// Ctrl-C stops the watch.
func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors that rename-on-save
	// would otherwise drop the watch after the first write.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reportScan(path)
	log.Info("watching", "path", path)

	for {
		select {
		case <-ctx.Done():
			log.Info("watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
				reportScan(path)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "error", err)
		}
	}
}

func reportScan(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("read failed", "path", path, "error", err)
		return
	}
	reg := registry.Default()
	freq := scanner.Count(string(data), reg)

	attrs := []any{"path", path, "notable", freq.Total()}
	for _, cp := range reg.Runes() {
		if n, ok := freq[cp]; ok {
			e, _ := reg.Lookup(cp)
			attrs = append(attrs, e.Glyph, n)
		}
	}
	log.Info("scan", attrs...)
}
