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

package snapshot

import "time"

// State is the lifecycle of one streaming scalar field within a Snapshot.
type State int

const (
	// Pending means no analyzer has produced a value yet.
	Pending State = iota
	// Error means the analyzer failed and no prior value exists to fall
	// back on.
	Error
	// Ready means the value was produced during the current tick.
	Ready
	// Stale means the analyzer failed this tick but a previous value is
	// carried forward, tagged with its age.
	Stale
)

// String implements fmt.Stringer for debug output and logging.
func (s State) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Error:
		return "Error"
	case Ready:
		return "Ready"
	case Stale:
		return "Stale"
	default:
		return "Unknown"
	}
}

// PartialResult wraps any snapshot field in the Pending/Error/Ready/Stale
// lifecycle from spec. Widgets must render all four states rather than
// assume data is fresh.
type PartialResult[T any] struct {
	state State
	value T
	age   time.Duration
	err   error
}

// ResultPending constructs a Pending PartialResult.
func ResultPending[T any]() PartialResult[T] {
	return PartialResult[T]{state: Pending}
}

// ResultError constructs an Error PartialResult carrying the failure reason.
func ResultError[T any](err error) PartialResult[T] {
	return PartialResult[T]{state: Error, err: err}
}

// ResultReady constructs a Ready PartialResult carrying a fresh value.
func ResultReady[T any](v T) PartialResult[T] {
	return PartialResult[T]{state: Ready, value: v}
}

// ResultStale constructs a Stale PartialResult carrying a previous value
// and its age.
func ResultStale[T any](v T, age time.Duration) PartialResult[T] {
	return PartialResult[T]{state: Stale, value: v, age: age}
}

// State returns which of the four lifecycle states this result is in.
func (p PartialResult[T]) State() State { return p.state }

// Age returns the staleness age; zero unless State() == Stale.
func (p PartialResult[T]) Age() time.Duration { return p.age }

// Err returns the failure reason; nil unless State() == Error.
func (p PartialResult[T]) Err() error { return p.err }

// UnwrapOr returns the carried value for Ready/Stale, or fallback
// otherwise.
func (p PartialResult[T]) UnwrapOr(fallback T) T {
	switch p.state {
	case Ready, Stale:
		return p.value
	default:
		return fallback
	}
}

// Map transforms the carried value (for Ready/Stale states) with fn,
// preserving the state and age; Pending/Error pass through unchanged.
func Map[T, U any](p PartialResult[T], fn func(T) U) PartialResult[U] {
	switch p.state {
	case Ready:
		return ResultReady(fn(p.value))
	case Stale:
		return ResultStale(fn(p.value), p.age)
	case Error:
		return ResultError[U](p.err)
	default:
		return ResultPending[U]()
	}
}

// AsStale demotes a Ready result to Stale after a failed collect, carrying
// forward its value with the elapsed age. A Stale result keeps its value
// and takes the new age; Pending/Error results are returned unchanged
// (they have no value to carry).
func AsStale[T any](p PartialResult[T], age time.Duration) PartialResult[T] {
	switch p.state {
	case Ready:
		return ResultStale(p.value, age)
	case Stale:
		return ResultStale(p.value, age)
	default:
		return p
	}
}
