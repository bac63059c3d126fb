// Package waybar renders hardware readings as the JSON record a Waybar
// custom module consumes: one compact line with text, tooltip, class and alt.
package waybar

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"hwprobe/internal/system"
)

// Record is the wire schema of one probe invocation.
type Record struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip"`
	Class   string `json:"class"`
	Alt     string `json:"alt"`
}

// Format renders the three readings into a Record. The timestamp is passed
// in so rendering stays a pure function.
func Format(temp system.TemperatureReading, memory system.MemoryReading, load system.LoadReading, now time.Time) Record {
	cpuText := cpuSegment(temp, load)
	memText := memSegment(memory)

	var tooltip strings.Builder
	tooltip.WriteString("Hardware Info\n")
	fmt.Fprintf(&tooltip, "CPU Temp: %s\n", cpuText)

	if len(load.PerCore) > 0 {
		tooltip.WriteString("CPU Load:\n")
		for i, v := range load.PerCore {
			fmt.Fprintf(&tooltip, "  Core %d: %.1f%%\n", i, v)
		}
	}

	if memory.OK {
		usedMB := memory.UsedGB * 1024
		totalMB := memory.TotalGB * 1024
		fmt.Fprintf(&tooltip, "Memory: %.2fMB / %.2fMB (%.1f%%)\n", usedMB, totalMB, memory.Percent)
	} else {
		tooltip.WriteString("Memory: N/A\n")
	}

	fmt.Fprintf(&tooltip, "Updated: %s", now.Format("15:04:05"))

	return Record{
		Text:    fmt.Sprintf("CPU: %s | MEM: %s", cpuText, memText),
		Tooltip: tooltip.String(),
		Class:   "hwinfo",
		Alt:     "hwinfo",
	}
}

// ErrorRecord is the degraded record emitted when an error escapes the
// probe, so the host still receives well-formed JSON before the non-zero
// exit.
func ErrorRecord(err error) Record {
	return Record{
		Text:    "CPU: N/A | MEM: N/A",
		Tooltip: fmt.Sprintf("Error: %v", err),
		Class:   "hwinfo-error",
		Alt:     "hwinfo-error",
	}
}

// Write emits the record as a single compact JSON line.
func (r Record) Write(w io.Writer) error {
	return json.NewEncoder(w).Encode(r)
}

func cpuSegment(temp system.TemperatureReading, load system.LoadReading) string {
	switch {
	case temp.OK && load.HasOverall:
		return fmt.Sprintf("%.1f°C (%.1f%%)", temp.Celsius, load.Overall)
	case temp.OK:
		return fmt.Sprintf("%.1f°C", temp.Celsius)
	default:
		return "N/A"
	}
}

// memSegment rounds to whole gigabytes for the main bar; the tooltip keeps
// the precise figures.
func memSegment(m system.MemoryReading) string {
	if !m.OK {
		return "N/A"
	}
	return fmt.Sprintf("%.0fGB/%.0fGB (%.1f%%)",
		math.Round(m.UsedGB), math.Round(m.TotalGB), m.Percent)
}
