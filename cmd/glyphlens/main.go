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
	"os"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/glyphlens/pkg/config"
	"github.com/AleutianAI/glyphlens/pkg/logging"
)

var (
	cfg config.Config
	log *logging.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		if logJSON {
			cfg.Log.JSON = true
		}
		if quiet {
			cfg.Log.Quiet = true
		}
		log = logging.New(logging.Config{
			Level: logging.ParseLevel(cfg.Log.Level),
			JSON:  cfg.Log.JSON,
			Quiet: cfg.Log.Quiet,
		})
		return nil
	}
}
