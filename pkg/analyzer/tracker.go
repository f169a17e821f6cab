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

package analyzer

import (
	"time"

	"github.com/ptop-project/ptop/pkg/snapshot"
)

// Tracker holds the last-known-good value for one streaming scalar field
// and turns a sequence of Success/Failure calls into the
// Pending/Error/Ready/Stale lifecycle every analyzer implementation needs.
// It is the one piece of bookkeeping every analyzer subpackage embeds
// rather than reimplements.
type Tracker[T any] struct {
	value     T
	hasValue  bool
	updatedAt time.Time
	failures  int
}

// Success records a freshly collected value, clearing any failure streak.
func (t *Tracker[T]) Success(v T, now time.Time) {
	t.value = v
	t.hasValue = true
	t.updatedAt = now
	t.failures = 0
}

// Failure records a failed collect tick.
func (t *Tracker[T]) Failure() {
	t.failures++
}

// Result derives the current PartialResult for this field at time now:
// Ready immediately after a Success, Stale while failures remain below
// the registry's consecutive-failure threshold and a prior value exists,
// Error once that threshold is crossed or no value has ever been
// collected, and Pending if the analyzer has never run.
func (t *Tracker[T]) Result(now time.Time) snapshot.PartialResult[T] {
	if !t.hasValue {
		if t.failures > 0 {
			return snapshot.ResultError[T](nil)
		}
		return snapshot.ResultPending[T]()
	}
	if t.failures == 0 {
		return snapshot.ResultReady(t.value)
	}
	if t.failures >= maxConsecutiveFailures {
		return snapshot.ResultError[T](nil)
	}
	return snapshot.ResultStale(t.value, now.Sub(t.updatedAt))
}
