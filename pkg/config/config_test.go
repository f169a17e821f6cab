// Copyright 2026 The ptop Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, warnings, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Nil(t, warnings)
	require.Equal(t, Default().RefreshMS, cfg.RefreshMS)
}

func TestLoadParsesPanelsAndDisplayRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	doc := `
refresh_ms: 500
panels:
  psi:
    enabled: auto
    display_rules:
      - when: "psi == Pending"
        action: hide
      - when: "psi == Error"
        action: show_placeholder
        placeholder: "PSI unavailable"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, warnings, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, 500, cfg.RefreshMS)

	psi, ok := cfg.Panels["psi"]
	require.True(t, ok)
	require.Equal(t, "auto", psi.Enabled)
	require.Len(t, psi.DisplayRules, 2)
	require.Equal(t, "hide", psi.DisplayRules[0].Action)
	require.Equal(t, "PSI unavailable", psi.DisplayRules[1].Placeholder)
}

func TestLoadWarnsOnUnrecognizedTopLevelKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("refresh_ms: 200\nbogus_key: true\n"), 0o644))

	_, warnings, err := Load(path)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0], "bogus_key")
}

func TestLoadFatalOnUnparsableDocumentWhenExplicitlyRequested(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid: yaml"), 0o644))

	_, _, err := Load(path)
	require.Error(t, err)
}

func TestDumpThenLoadRoundTrips(t *testing.T) {
	cfg := Default()
	cfg.RefreshMS = 2500
	cfg.Panels["cpu"] = PanelConfig{Enabled: "true"}

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, cfg))

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	got, warnings, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, cfg.RefreshMS, got.RefreshMS)
	require.Equal(t, cfg.Panels["cpu"].Enabled, got.Panels["cpu"].Enabled)
}

func TestResolvePathPrefersExplicitFlag(t *testing.T) {
	require.Equal(t, "/tmp/explicit.yaml", ResolvePath("/tmp/explicit.yaml"))
}
