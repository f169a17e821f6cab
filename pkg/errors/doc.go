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

// Package errors provides structured error types for better observability
// and programmatic error handling across ptop's analyzer and rendering
// core.
//
// # Overview
//
// This package implements a structured error system with error codes for
// programmatic handling, human-readable messages, cause chaining, and
// optional context for debugging. It supports the standard errors.Is and
// errors.As functions through the Unwrap interface.
//
// # Error Codes
//
// These codes classify analyzer, render-loop and config failures. In
// this tree pkg/cliapp raises ErrCodeTerminalFatal and pkg/config raises
// ErrCodeConfig; analyzer failures and budget overruns are logged by
// the registry as plain warnings without a code.
//   - ErrCodeAnalyzerUnavailable: a source file/binary is absent at probe
//     time; the analyzer is dropped for the process lifetime.
//   - ErrCodeAnalyzerTransient: a single collect tick failed; retried on
//     schedule, data becomes Stale then Error.
//   - ErrCodeAnalyzerBudget: a collect exceeded its declared latency
//     budget; logged, the tick's snapshot still publishes.
//   - ErrCodeRenderBudget: a frame exceeded the 16ms render budget.
//   - ErrCodeTerminalFatal: raw mode failed or the terminal has zero
//     dimensions; fatal at startup.
//   - ErrCodeConfig: a YAML config document failed to parse or validate.
//
// The general-purpose codes (ErrCodeNotFound, ErrCodeInternal,
// ErrCodeUnavailable) are kept as general-purpose fallbacks; no package
// outside pkg/errors uses them.
//
// # Usage
//
// Create a simple error:
//
//	err := errors.New(errors.ErrCodeAnalyzerUnavailable, "nvidia-smi not found")
//
// Wrap an existing error:
//
//	err := errors.Wrap(errors.ErrCodeAnalyzerTransient, "collect failed", originalErr)
//
// Wrap with additional context:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeAnalyzerBudget,
//	    "cpu analyzer exceeded its latency budget",
//	    nil,
//	    map[string]any{
//	        "analyzer": "cpu",
//	        "budget":   "10ms",
//	        "took":     "42ms",
//	    },
//	)
//
// # Error Handling
//
// The StructuredError type implements the standard error interface and
// supports error unwrapping:
//
//	var structErr *errors.StructuredError
//	if errors.As(err, &structErr) {
//	    slog.Warn("analyzer error", "code", structErr.Code, "msg", structErr.Message)
//	}
//
// # Thread Safety
//
// All functions in this package are thread-safe and can be called
// concurrently; StructuredError values themselves are immutable once
// constructed.
package errors
