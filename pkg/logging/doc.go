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

// Package logging provides structured logging utilities for ptop's
// analyzer, collector and render-loop components.
//
// # Overview
//
// This package wraps the standard library log/slog package with ptop's
// defaults and conventions: structured JSON logging to stderr (the
// terminal itself owns stdout), environment-based log level
// configuration, and module/version context injection. Output never goes
// to stdout, since the render loop owns that stream for terminal escape
// sequences.
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("ptop", version.String())
//	    slog.Info("starting", "refresh_ms", cfg.RefreshMS)
//	}
//
// Analyzers log budget violations and transient failures through the
// default logger rather than writing to the terminal directly, since a
// stray write to stdout would corrupt the cell buffer:
//
//	slog.Warn("analyzer exceeded latency budget",
//	    "analyzer", a.Name(),
//	    "budget", a.LatencyBudget(),
//	    "took", elapsed,
//	)
//
// # Environment Configuration
//
// LOG_LEVEL controls verbosity (debug, info, warn, error); unset defaults
// to info.
package logging
