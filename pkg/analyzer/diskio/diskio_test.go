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

package diskio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPartitionOrVirtual(t *testing.T) {
	require.True(t, isPartitionOrVirtual("sda1"))
	require.True(t, isPartitionOrVirtual("nvme0n1p1"))
	require.True(t, isPartitionOrVirtual("loop0"))
	require.True(t, isPartitionOrVirtual("dm-0"))
	require.False(t, isPartitionOrVirtual("sda"))
	require.False(t, isPartitionOrVirtual("nvme0n1"))
}
