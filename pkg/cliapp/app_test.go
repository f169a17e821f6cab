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

package cliapp

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptop-project/ptop/pkg/analyzer"
	"github.com/ptop-project/ptop/pkg/app"
	"github.com/ptop-project/ptop/pkg/collector"
	"github.com/ptop-project/ptop/pkg/config"
)

func TestBuildCommandDeclaresAllDocumentedFlags(t *testing.T) {
	cmd := buildCommand()
	names := make(map[string]bool, len(cmd.Flags))
	for _, f := range cmd.Flags {
		for _, n := range f.Names() {
			names[n] = true
		}
	}
	for _, want := range []string{
		"refresh", "deterministic", "render-once", "width", "height",
		"config", "dump-config", "show-fps", "log-level",
	} {
		assert.True(t, names[want], "missing flag %q", want)
	}
}

func TestNewRegistryDeterministicHasNoAnalyzers(t *testing.T) {
	reg := newRegistry(true)
	assert.Empty(t, reg.Names())
}

func TestNewRegistryRealHasAnalyzers(t *testing.T) {
	reg := newRegistry(false)
	assert.NotEmpty(t, reg.Names())
}

func TestRenderOnceDeterministicProducesStableOutput(t *testing.T) {
	reg := analyzer.NewRegistry(nil)
	coll := collector.New(reg, 0)
	m := app.NewModel(coll, config.Default(), defaultPanels)

	var first, second bytes.Buffer
	require.NoError(t, renderOnce(m, coll, true, 80, 24, &first))

	m2 := app.NewModel(coll, config.Default(), defaultPanels)
	require.NoError(t, renderOnce(m2, coll, true, 80, 24, &second))

	assert.Equal(t, first.String(), second.String())
	assert.NotEmpty(t, first.String())
}

func TestRenderOnceDefaultsDimensionsWhenUnset(t *testing.T) {
	reg := analyzer.NewRegistry(nil)
	coll := collector.New(reg, 0)
	m := app.NewModel(coll, config.Default(), defaultPanels)

	var out bytes.Buffer
	require.NoError(t, renderOnce(m, coll, true, 0, 0, &out))
	assert.NotEmpty(t, out.String())
}

func TestRunDumpConfigExitsBeforeStartingCollectorOrProgram(t *testing.T) {
	// dump-config must return before any registry, collector or program
	// is built and before runInteractive/renderOnce ever run, so this is
	// safe even though this test has no TTY.
	err := Run(context.Background(), []string{"ptop", "--dump-config"})
	require.NoError(t, err)
}
