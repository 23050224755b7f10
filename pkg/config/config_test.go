// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glyphlens.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  json: true
scan:
  hidden:
    - U+0009
    - U+200B
diff:
  elide_unchanged: true
clipboard:
  bracketed: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
	assert.True(t, cfg.Diff.ElideUnchanged)
	assert.True(t, cfg.Clipboard.Bracketed)
	assert.Equal(t, []rune{'\t', '​'}, cfg.HiddenRunes())
}

func TestLoad_EmptyFileBehavesLikeDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_InvalidYAMLFails(t *testing.T) {
	_, err := Load(writeConfig(t, "log: [unclosed"))
	assert.Error(t, err)
}

func TestLoad_UnknownLogLevelFails(t *testing.T) {
	_, err := Load(writeConfig(t, "log:\n  level: verbose\n"))
	assert.Error(t, err)
}

func TestLoad_BadHiddenCodePointFails(t *testing.T) {
	_, err := Load(writeConfig(t, "scan:\n  hidden: [\"U+ZZZZ\"]\n"))
	assert.Error(t, err)
}

func TestParseCodePoint(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    rune
		wantErr bool
	}{
		{name: "with prefix", in: "U+200B", want: '​'},
		{name: "lowercase prefix", in: "u+200b", want: '​'},
		{name: "bare hex", in: "00A0", want: ' '},
		{name: "0x prefix", in: "0x0009", want: '\t'},
		{name: "supplementary plane", in: "U+1F600", want: 0x1F600},
		{name: "max scalar", in: "U+10FFFF", want: 0x10FFFF},
		{name: "beyond unicode", in: "U+110000", wantErr: true},
		{name: "not hex", in: "U+XYZ", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "surrogate low bound", in: "U+D800", wantErr: true},
		{name: "surrogate high bound", in: "U+DFFF", wantErr: true},
		{name: "stacked prefixes", in: "U+0x41", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCodePoint(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
