// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package config loads glyphlens configuration from YAML.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
//
// All fields have working defaults; a missing config file is not an
// error, and an empty file behaves like Defaults().
type Config struct {
	// Log controls command-layer logging.
	Log LogConfig `yaml:"log"`

	// Scan controls annotation rendering.
	Scan ScanConfig `yaml:"scan"`

	// Diff controls the comparison pipeline.
	Diff DiffConfig `yaml:"diff"`

	// Clipboard controls the copy commands.
	Clipboard ClipboardConfig `yaml:"clipboard"`
}

// LogConfig mirrors logging.Config in YAML form.
type LogConfig struct {
	// Level is "debug", "info", "warn", or "error".
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
	Quiet bool   `yaml:"quiet"`
}

// ScanConfig seeds the per-session visibility map.
type ScanConfig struct {
	// Hidden lists code points whose annotations start hidden,
	// as "U+XXXX" designations (e.g. "U+0009" to pass tabs
	// through unannotated).
	Hidden []string `yaml:"hidden"`
}

// DiffConfig controls the compositor.
type DiffConfig struct {
	// ElideUnchanged drops unchanged regions from both panes.
	ElideUnchanged bool `yaml:"elide_unchanged"`
}

// ClipboardConfig controls the copy commands.
type ClipboardConfig struct {
	// Bracketed makes plain copy default to the marked variant.
	Bracketed bool `yaml:"bracketed"`
}

// Defaults returns the working default configuration.
func Defaults() Config {
	return Config{
		Log: LogConfig{Level: "info"},
	}
}

// Load reads a YAML config file.
//
// # Description
//
// A missing file returns Defaults() with no error, so the tool works
// out of the box. A present-but-invalid file is an error: silently
// ignoring a typoed config is worse than failing.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values that YAML cannot.
func (c Config) Validate() error {
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	for _, h := range c.Scan.Hidden {
		if _, err := ParseCodePoint(h); err != nil {
			return err
		}
	}
	return nil
}

// HiddenRunes resolves Scan.Hidden to code points. Call only after
// Validate.
func (c Config) HiddenRunes() []rune {
	out := make([]rune, 0, len(c.Scan.Hidden))
	for _, h := range c.Scan.Hidden {
		cp, err := ParseCodePoint(h)
		if err != nil {
			continue
		}
		out = append(out, cp)
	}
	return out
}

// ParseCodePoint parses a "U+XXXX" designation (case-insensitive,
// "0x" also accepted, prefix optional) into a rune. Surrogates are
// not code points and are rejected.
func ParseCodePoint(s string) (rune, error) {
	hex := strings.ToUpper(s)
	if strings.HasPrefix(hex, "U+") {
		hex = hex[2:]
	} else if strings.HasPrefix(hex, "0X") {
		hex = hex[2:]
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || v > 0x10FFFF || (v >= 0xD800 && v <= 0xDFFF) {
		return 0, fmt.Errorf("config: invalid code point %q", s)
	}
	return rune(v), nil
}
