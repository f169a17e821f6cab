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

package gpu

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const sampleSMIXML = `<?xml version="1.0" ?>
<nvidia_smi_log>
	<driver_version>570.86.15</driver_version>
	<gpu id="00000000:01:00.0">
		<product_name>NVIDIA H100 80GB HBM3</product_name>
		<uuid>GPU-abc123</uuid>
		<fb_memory_usage>
			<total>81559 MiB</total>
			<used>1234 MiB</used>
		</fb_memory_usage>
		<utilization>
			<gpu_util>45 %</gpu_util>
		</utilization>
		<temperature>
			<gpu_temp>65 C</gpu_temp>
		</temperature>
		<gpu_power_readings>
			<power_draw>250.00 W</power_draw>
		</gpu_power_readings>
		<processes>
			<process_info>
				<pid>4242</pid>
				<type>C</type>
				<process_name>python3</process_name>
				<used_memory>2048 MiB</used_memory>
			</process_info>
		</processes>
	</gpu>
</nvidia_smi_log>`

func TestParseSMILog(t *testing.T) {
	log, err := parseSMILog([]byte(sampleSMIXML))
	require.NoError(t, err)
	require.Equal(t, "570.86.15", log.DriverVersion)
	require.Len(t, log.GPUs, 1)
	require.Equal(t, "NVIDIA H100 80GB HBM3", log.GPUs[0].ProductName)
}

func TestParseMebibytes(t *testing.T) {
	require.Equal(t, uint64(81559*1024*1024), parseMebibytes("81559 MiB"))
	require.Equal(t, uint64(0), parseMebibytes(""))
}

func TestParsePercentField(t *testing.T) {
	require.InDelta(t, 0.45, parsePercentField("45 %"), 1e-9)
}

func TestCollectPopulatesDevices(t *testing.T) {
	a := New()
	a.run = func(ctx context.Context) ([]byte, error) {
		return []byte(sampleSMIXML), nil
	}

	require.NoError(t, a.Collect(context.Background()))
	res := a.devices.Result(time.Now())
	devices := res.UnwrapOr(nil)
	require.Len(t, devices, 1)
	require.Equal(t, "NVIDIA H100 80GB HBM3", devices[0].Name)
	require.InDelta(t, 0.45, devices[0].UtilPercent, 1e-9)
	require.InDelta(t, 65, devices[0].TempC, 1e-9)
	require.Len(t, devices[0].Processes, 1)
	require.Equal(t, 4242, devices[0].Processes[0].PID)
}
