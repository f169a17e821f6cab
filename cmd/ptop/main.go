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

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ptop-project/ptop/pkg/cliapp"
)

func main() {
	os.Exit(run())
}

// run recovers from any panic escaping cliapp.Run, restoring the exit
// code the spec assigns to a runtime panic rather than letting the Go
// runtime's own crash dump decide it. bubbletea's own deferred restore
// handles terminal raw-mode cleanup on that path.
func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "ptop: panic:", r)
			code = 2
		}
	}()

	if err := cliapp.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "ptop:", err)
		return 1
	}
	return 0
}
