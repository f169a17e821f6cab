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
	"fmt"
	"os"
	"strconv"
	"strings"
)

// PressureDomain holds the avg10 figures parsed from one line of a
// /proc/pressure/{cpu,memory,io} file.
type PressureDomain struct {
	Some10 float64
	Full10 float64
}

// ReadPressure parses a PSI file. The "cpu" domain has no "full" line
// under kernels built without CONFIG_PSI_FINE_GRAINED accounting for
// non-memory/io resources, so Full10 stays zero in that case rather than
// erroring. Shared by the memory and psi analyzers so both read the
// kernel's pressure-stall accounting the same way.
//
//	some avg10=0.00 avg60=0.00 avg300=0.00 total=0
//	full avg10=0.00 avg60=0.00 avg300=0.00 total=0
func ReadPressure(path string) (PressureDomain, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return PressureDomain{}, err
	}

	var d PressureDomain
	found := false
	for _, line := range strings.Split(string(b), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		kind := fields[0]
		if kind != "some" && kind != "full" {
			continue
		}
		avg10, err := parsePressureField(fields, "avg10=")
		if err != nil {
			continue
		}
		found = true
		if kind == "some" {
			d.Some10 = avg10
		} else {
			d.Full10 = avg10
		}
	}
	if !found {
		return PressureDomain{}, fmt.Errorf("no pressure lines found in %s", path)
	}
	return d, nil
}

func parsePressureField(fields []string, prefix string) (float64, error) {
	for _, f := range fields {
		if strings.HasPrefix(f, prefix) {
			return strconv.ParseFloat(strings.TrimPrefix(f, prefix), 64)
		}
	}
	return 0, fmt.Errorf("field %q not found", prefix)
}
