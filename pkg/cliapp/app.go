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

// Package cliapp wires ptop's command-line surface: flag parsing with
// urfave/cli/v3, config discovery, analyzer registration, and the three
// run modes (--dump-config, a single --render-once frame to stdout, or
// the interactive bubbletea program). main.main delegates here and only translates the
// returned error into a process exit code.
package cliapp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/ptop-project/ptop/pkg/analyzer"
	"github.com/ptop-project/ptop/pkg/analyzer/battery"
	"github.com/ptop-project/ptop/pkg/analyzer/connections"
	"github.com/ptop-project/ptop/pkg/analyzer/containers"
	"github.com/ptop-project/ptop/pkg/analyzer/cpu"
	"github.com/ptop-project/ptop/pkg/analyzer/diskio"
	"github.com/ptop-project/ptop/pkg/analyzer/diskusage"
	"github.com/ptop-project/ptop/pkg/analyzer/entropy"
	"github.com/ptop-project/ptop/pkg/analyzer/gpu"
	"github.com/ptop-project/ptop/pkg/analyzer/kernel"
	"github.com/ptop-project/ptop/pkg/analyzer/memory"
	"github.com/ptop-project/ptop/pkg/analyzer/network"
	"github.com/ptop-project/ptop/pkg/analyzer/process"
	"github.com/ptop-project/ptop/pkg/analyzer/psi"
	"github.com/ptop-project/ptop/pkg/analyzer/sensors"
	"github.com/ptop-project/ptop/pkg/analyzer/swap"
	"github.com/ptop-project/ptop/pkg/analyzer/treemap"
	"github.com/ptop-project/ptop/pkg/app"
	"github.com/ptop-project/ptop/pkg/collector"
	"github.com/ptop-project/ptop/pkg/config"
	"github.com/ptop-project/ptop/pkg/errors"
	"github.com/ptop-project/ptop/pkg/logging"
	"github.com/ptop-project/ptop/pkg/snapshot"
)

const (
	appName    = "ptop"
	appVersion = "dev"
)

// defaultPanels lists every panel the grid considers, in priority order
// (highest first). A panel with no data for the active Capabilities is
// still laid out; its display rules decide whether it renders or hides.
var defaultPanels = []string{
	"cpu", "memory", "process", "disk", "network", "gpu", "sensors",
	"psi", "connections", "files",
}

// Run parses args, builds the collector and model, and executes one of
// ptop's three modes (dump-config, render-once, interactive). It never
// calls os.Exit; main translates the returned error into an exit code.
func Run(ctx context.Context, args []string) error {
	cmd := buildCommand()
	return cmd.Run(ctx, args)
}

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:                  appName,
		Usage:                 "terminal system monitor",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "refresh", Value: 1000, Usage: "collector tick interval in milliseconds"},
			&cli.BoolFlag{Name: "deterministic", Usage: "use fixed seed and synthetic, timestamp-free data"},
			&cli.BoolFlag{Name: "render-once", Usage: "render a single frame to stdout and exit"},
			&cli.IntFlag{Name: "width", Usage: "force terminal width (--render-once only)"},
			&cli.IntFlag{Name: "height", Usage: "force terminal height (--render-once only)"},
			&cli.StringFlag{Name: "config", Usage: "path to YAML config file"},
			&cli.BoolFlag{Name: "dump-config", Usage: "write effective config as YAML to stdout and exit"},
			&cli.BoolFlag{Name: "show-fps", Usage: "overlay per-frame time statistics"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "log level (debug, info, warn, error)"},
		},
		Action: runAction,
	}
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	logging.SetDefaultStructuredLoggerWithLevel(appName, appVersion, cmd.String("log-level"))

	cfg, warnings, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn("config warning", "detail", w)
	}

	if cmd.Bool("dump-config") {
		return config.Dump(os.Stdout, cfg)
	}

	refresh := time.Duration(cmd.Int("refresh")) * time.Millisecond
	if v := cfg.RefreshMS; v > 0 && !cmd.IsSet("refresh") {
		refresh = time.Duration(v) * time.Millisecond
	}

	deterministic := cmd.Bool("deterministic")
	reg := newRegistry(deterministic)
	coll := collector.New(reg, refresh)

	m := app.NewModel(coll, cfg, defaultPanels)

	if cmd.Bool("render-once") {
		return renderOnce(m, coll, deterministic, cmd.Int("width"), cmd.Int("height"), os.Stdout)
	}

	return runInteractive(ctx, m, coll)
}

func newRegistry(deterministic bool) *analyzer.Registry {
	if deterministic {
		// A Registry with no analyzers never overwrites the fixed
		// snapshot that renderOnce seeds directly. runInteractive seeds
		// no synthetic snapshot, so interactive mode shows no analyzer data.
		return analyzer.NewRegistry(nil)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "/"
	}
	analyzers := []analyzer.Analyzer{
		cpu.New(),
		memory.New(),
		swap.New(),
		diskusage.New(),
		diskio.New(),
		entropy.New(),
		network.New(),
		connections.New(),
		process.New(),
		containers.New(),
		gpu.New(),
		sensors.New(),
		battery.New(),
		psi.New(),
		kernel.New(),
		treemap.New(home),
	}
	return analyzer.NewRegistry(analyzers)
}

// renderOnce produces exactly one frame: deterministic mode seeds the
// fixed synthetic snapshot directly (no analyzer has ever run), real
// mode runs one collector tick synchronously and waits for it to land.
func renderOnce(m *app.Model, coll *collector.Collector, deterministic bool, width, height int, w io.Writer) error {
	if width <= 0 {
		width = 120
	}
	if height <= 0 {
		height = 40
	}
	m.Resize(width, height)

	if deterministic {
		m.ApplySnapshot(deterministicSnapshot())
	} else {
		reg := coll.Registry()
		now := time.Now()
		s := snapshot.New(now)
		reg.Tick(context.Background(), now, s)
		m.ApplySnapshot(s)
	}

	_, err := fmt.Fprint(w, m.View())
	return err
}

// runInteractive starts the collector on its own goroutine and hands
// the model to bubbletea, which owns the terminal until the user quits
// or a terminal-fatal condition forces an early exit.
func runInteractive(ctx context.Context, m *app.Model, coll *collector.Collector) error {
	notifCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(notifCtx)
	g.Go(func() error {
		app.RunCollector(gctx, coll)
		return nil
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(notifCtx))
	_, runErr := p.Run()
	coll.Stop()

	if err := g.Wait(); err != nil {
		return errors.Wrap(errors.ErrCodeTerminalFatal, "collector goroutine failed", err)
	}
	if runErr != nil {
		return errors.Wrap(errors.ErrCodeTerminalFatal, "terminal program exited with error", runErr)
	}
	return nil
}
