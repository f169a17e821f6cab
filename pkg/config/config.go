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

// Package config loads and validates ptop's YAML configuration,
// following a fixed discovery order and falling back to compiled
// defaults when no file is found. Display rules are parsed only as
// far as their raw string form here; pkg/layout owns compiling a
// DisplayRule's `when` expression into an evaluable predicate.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ptop-project/ptop/pkg/errors"
)

// DisplayRule is one `display_rules` entry from a panel block.
type DisplayRule struct {
	When        string `yaml:"when"`
	Action      string `yaml:"action"`
	Placeholder string `yaml:"placeholder,omitempty"`
}

// PanelPosition places a panel on the adaptive grid.
type PanelPosition struct {
	Row  int `yaml:"row"`
	Col  int `yaml:"col"`
	Span int `yaml:"span"`
}

// PanelConfig is one `panels.<name>` block.
type PanelConfig struct {
	// Enabled is "true", "false", or "auto" (capability-gated). Stored
	// as a string since YAML bools can't represent the three-way default.
	Enabled      string            `yaml:"enabled"`
	Position     PanelPosition     `yaml:"position,omitempty"`
	Style        map[string]string `yaml:"style,omitempty"`
	DisplayRules []DisplayRule     `yaml:"display_rules,omitempty"`
}

// Theme names the palette variant; pkg/theme resolves it to RGBA values.
type Theme struct {
	Name string `yaml:"name,omitempty"`
}

// Config is ptop's full effective configuration, merged from whichever
// file the discovery order found (or compiled defaults) onto Default().
type Config struct {
	RefreshMS   int                    `yaml:"refresh_ms"`
	Layout      string                 `yaml:"layout,omitempty"`
	Panels      map[string]PanelConfig `yaml:"panels,omitempty"`
	Keybindings map[string]string      `yaml:"keybindings,omitempty"`
	Theme       Theme                  `yaml:"theme,omitempty"`
}

var recognizedTopLevelKeys = map[string]bool{
	"refresh_ms":  true,
	"layout":      true,
	"panels":      true,
	"keybindings": true,
	"theme":       true,
}

// Default returns ptop's compiled-in configuration.
func Default() *Config {
	return &Config{
		RefreshMS: 1000,
		Layout:    "adaptive",
		Panels:    map[string]PanelConfig{},
		Keybindings: map[string]string{
			"quit":    "q",
			"help":    "?",
			"explode": "e",
			"filter":  "/",
		},
		Theme: Theme{Name: "default"},
	}
}

// ResolvePath returns the config file path that Load would read from,
// without reading it: --config path if given, else the first of
// $XDG_CONFIG_HOME/ptop/config.yaml or $HOME/.config/ptop/config.yaml
// that exists, else "" meaning "use compiled defaults".
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		p := filepath.Join(xdg, "ptop", "config.yaml")
		if fileExists(p) {
			return p
		}
	}
	if home := os.Getenv("HOME"); home != "" {
		p := filepath.Join(home, ".config", "ptop", "config.yaml")
		if fileExists(p) {
			return p
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Load resolves a config file per the discovery order and parses it
// onto Default(). A missing file is not an error — Load just returns
// the compiled defaults. An unparsable YAML document is a fatal
// errors.ErrCodeConfig error; unrecognized top-level keys are logged
// as warnings via the returned []string rather than rejected.
func Load(flagPath string) (*Config, []string, error) {
	path := ResolvePath(flagPath)
	cfg := Default()
	if path == "" {
		return cfg, nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if flagPath != "" {
			return nil, nil, errors.Wrap(errors.ErrCodeConfig, fmt.Sprintf("read config %s", path), err)
		}
		return cfg, nil, nil
	}

	warnings := checkUnrecognizedKeys(raw)

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeConfig, fmt.Sprintf("parse config %s", path), err)
	}
	return cfg, warnings, nil
}

// checkUnrecognizedKeys decodes the document generically to find
// top-level keys the schema doesn't know about, since yaml.v3's
// struct-tag unmarshal silently ignores them.
func checkUnrecognizedKeys(raw []byte) []string {
	var generic map[string]yaml.Node
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil
	}
	var warnings []string
	for key := range generic {
		if !recognizedTopLevelKeys[key] {
			warnings = append(warnings, fmt.Sprintf("config: unrecognized top-level key %q", key))
		}
	}
	return warnings
}

// Dump writes cfg as YAML to w, for the `--dump-config` CLI flag. The
// round trip Load(Dump(cfg)) must reproduce a semantically equal Config.
func Dump(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	if err := enc.Encode(cfg); err != nil {
		return errors.Wrap(errors.ErrCodeConfig, "encode config", err)
	}
	return nil
}
