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

package collector

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ptop-project/ptop/pkg/analyzer"
)

func TestRunPublishesSnapshotsUntilCanceled(t *testing.T) {
	reg := analyzer.NewRegistry(nil)
	c := New(reg, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		_, ok := c.TryRecv()
		return ok
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not exit after context cancellation")
	}
}

func TestTryRecvReturnsFalseWhenNothingPublished(t *testing.T) {
	reg := analyzer.NewRegistry(nil)
	c := New(reg, time.Hour)

	_, ok := c.TryRecv()
	require.False(t, ok)
}

func TestPublishOverwritesUnconsumedSlot(t *testing.T) {
	reg := analyzer.NewRegistry(nil)
	c := New(reg, time.Hour)

	c.tick(context.Background())
	c.tick(context.Background())

	s, ok := c.TryRecv()
	require.True(t, ok)
	require.NotNil(t, s)

	_, ok = c.TryRecv()
	require.False(t, ok)
}

func TestStopEndsRunLoop(t *testing.T) {
	reg := analyzer.NewRegistry(nil)
	c := New(reg, 2*time.Millisecond)

	done := make(chan struct{})
	go func() {
		c.Run(context.Background())
		close(done)
	}()

	require.Eventually(t, func() bool {
		_, ok := c.TryRecv()
		return ok
	}, time.Second, time.Millisecond)

	c.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not exit after Stop")
	}
}
