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

package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

// NewStructuredLogger returns a JSON slog.Logger writing to stderr, tagged
// with module and version attributes on every record. Debug-level records
// include source file/line.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	return newStructuredLoggerTo(os.Stderr, module, version, level)
}

func newStructuredLoggerTo(w io.Writer, module, version, level string) *slog.Logger {
	lvl := ParseLevel(level)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	})
	return slog.New(handler).With("module", module, "version", version)
}

// SetDefaultStructuredLogger installs a structured logger at the level
// named by the LOG_LEVEL environment variable (INFO if unset) as the
// process-wide slog default.
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, os.Getenv("LOG_LEVEL"))
}

// SetDefaultStructuredLoggerWithLevel installs a structured logger at an
// explicit level as the process-wide slog default.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLogger(module, version, level))
}

// ParseLevel parses a case-insensitive level name ("debug", "info",
// "warn"/"warning", "error") into an slog.Level, defaulting to Info for
// an empty or unrecognized string.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogLogger adapts an slog.Logger (at the given minimum level) to the
// standard library's *log.Logger, for the few dependencies (flag error
// reporting, bubbletea's own fallback writer) that still expect one.
func NewLogLogger(level slog.Level, addSource bool) *log.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	})
	return slog.NewLogLogger(handler, level)
}
