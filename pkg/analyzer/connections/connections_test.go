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

package connections

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ptop-project/ptop/pkg/snapshot"
)

func TestClassify(t *testing.T) {
	require.Equal(t, snapshot.LocalityLocal, classify(net.ParseIP("127.0.0.1")))
	require.Equal(t, snapshot.LocalityLocal, classify(net.ParseIP("192.168.1.5")))
	require.Equal(t, snapshot.LocalityRemote, classify(net.ParseIP("8.8.8.8")))
	require.Equal(t, snapshot.LocalityUnknown, classify(nil))
}

func TestStateName(t *testing.T) {
	require.Equal(t, "ESTABLISHED", stateName(1))
	require.Equal(t, "LISTEN", stateName(10))
	require.Equal(t, "UNKNOWN", stateName(99))
}
