package system

import (
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
)

// loadSampleWindow is the per-core measurement window. This blocking sample
// is the dominant cost of one invocation.
const loadSampleWindow = time.Second

// Load samples CPU utilization: per-core over a one-second window, then the
// overall figure with zero extra wait from the counter delta buffered by the
// first sample. Any error yields an empty reading, never a partial list.
func (p *Probe) Load() LoadReading {
	perCore, err := cpu.Percent(loadSampleWindow, true)
	if err != nil {
		p.Log.Warn("per-core CPU utilization unavailable", "error", err)
		return LoadReading{}
	}
	for i, v := range perCore {
		perCore[i] = round1(v)
	}

	overall, err := cpu.Percent(0, false)
	if err != nil || len(overall) == 0 {
		p.Log.Warn("overall CPU utilization unavailable", "error", err)
		return LoadReading{}
	}

	return LoadReading{
		Overall:    round1(overall[0]),
		HasOverall: true,
		PerCore:    perCore,
	}
}
