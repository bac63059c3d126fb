package system

import (
	"os"
	"strings"

	"github.com/shirou/gopsutil/v4/mem"
	"github.com/spf13/cast"
)

const (
	bytesPerGB = 1 << 30
	kibPerGB   = 1 << 20
)

// Memory resolves memory usage from the system memory API, falling back to
// the meminfo table. The result is complete or entirely unavailable.
func (p *Probe) Memory() MemoryReading {
	if r, ok := p.virtualMemory(); ok {
		return r
	}
	if r, ok := p.meminfoMemory(); ok {
		return r
	}
	return MemoryReading{}
}

func (p *Probe) virtualMemory() (MemoryReading, bool) {
	stat, err := mem.VirtualMemory()
	if err != nil {
		p.Log.Warn("memory API unavailable", "error", err)
		return MemoryReading{}, false
	}
	return MemoryReading{
		UsedGB:  round1(float64(stat.Used) / bytesPerGB),
		TotalGB: round1(float64(stat.Total) / bytesPerGB),
		Percent: round1(stat.UsedPercent),
		OK:      true,
	}, true
}

// meminfoMemory derives usage from the meminfo table. Used memory is
// MemTotal minus MemAvailable, both reported in KiB.
func (p *Probe) meminfoMemory() (MemoryReading, bool) {
	data, err := os.ReadFile(p.MeminfoPath)
	if err != nil {
		p.Log.Warn("could not read meminfo", "path", p.MeminfoPath, "error", err)
		return MemoryReading{}, false
	}

	table := parseMeminfo(string(data))
	totalKiB, haveTotal := table["MemTotal"]
	availKiB, haveAvail := table["MemAvailable"]
	if !haveTotal || !haveAvail || totalKiB <= 0 {
		p.Log.Warn("meminfo missing MemTotal or MemAvailable", "path", p.MeminfoPath)
		return MemoryReading{}, false
	}

	usedKiB := totalKiB - availKiB
	return MemoryReading{
		UsedGB:  round1(usedKiB / kibPerGB),
		TotalGB: round1(totalKiB / kibPerGB),
		Percent: round1(usedKiB / totalKiB * 100),
		OK:      true,
	}, true
}

// parseMeminfo reads the colon-delimited key/value table; each value's first
// whitespace token is an integer in KiB. Malformed lines are ignored.
func parseMeminfo(data string) map[string]float64 {
	table := make(map[string]float64)
	for _, line := range strings.Split(data, "\n") {
		key, rest, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		kib, err := cast.ToFloat64E(fields[0])
		if err != nil {
			continue
		}
		table[strings.TrimSpace(key)] = kib
	}
	return table
}
