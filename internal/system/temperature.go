package system

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/sensors"
	"github.com/spf13/cast"
)

// sensorGroupPriority is the order in which named sensor groups are tried.
// coretemp (Intel) and k10temp (AMD) are the dedicated CPU die sensors;
// acpitz is the ACPI thermal zone, usually close enough when nothing better
// is exposed.
var sensorGroupPriority = []string{"coretemp", "k10temp", "x86_pkg_temp", "acpitz"}

// preferredZoneTypes marks thermal-zone type strings that come from a
// dedicated CPU sensor rather than the generic ACPI zone.
var preferredZoneTypes = []string{"coretemp", "k10temp", "x86_pkg_temp"}

// validTemp reports whether a Celsius reading is physically plausible.
func validTemp(c float64) bool {
	return c > 0 && c < 150
}

// Temperature resolves a representative CPU temperature. The platform sensor
// API is preferred; sysfs thermal zones are the fallback. The first strategy
// that yields at least one valid reading wins; there is no merging across
// strategies.
func (p *Probe) Temperature() TemperatureReading {
	strategies := []struct {
		name string
		read func() (float64, bool)
	}{
		{"sensors", p.sensorTemperature},
		{"thermal-zones", p.thermalZoneTemperature},
	}

	for _, s := range strategies {
		if c, ok := s.read(); ok {
			return TemperatureReading{Celsius: c, OK: true}
		}
		p.Log.Warn("temperature source yielded no data", "source", s.name)
	}
	return TemperatureReading{}
}

// sensorTemperature queries the platform sensor API.
func (p *Probe) sensorTemperature() (float64, bool) {
	stats, err := sensors.SensorsTemperatures()
	if err != nil {
		p.Log.Warn("sensor API error", "error", err)
		// Some platforms return partial results alongside an error.
		if len(stats) == 0 {
			return 0, false
		}
	}
	return averageSensorTemp(stats)
}

// averageSensorTemp picks the highest-priority sensor group with at least
// one valid reading and returns its mean. When no known group matches, any
// sensor that looks CPU-related is accepted.
func averageSensorTemp(stats []sensors.TemperatureStat) (float64, bool) {
	for _, group := range sensorGroupPriority {
		if avg, ok := averageMatching(stats, func(key string) bool {
			return strings.Contains(key, group)
		}); ok {
			return avg, true
		}
	}

	return averageMatching(stats, func(key string) bool {
		lower := strings.ToLower(key)
		return strings.Contains(lower, "cpu") || strings.Contains(lower, "core")
	})
}

// averageMatching filters stats by sensor key and validity and returns the
// mean of what remains, rounded to one decimal place.
func averageMatching(stats []sensors.TemperatureStat, match func(string) bool) (float64, bool) {
	var sum float64
	var count int
	for _, s := range stats {
		if !match(s.SensorKey) || !validTemp(s.Temperature) {
			continue
		}
		sum += s.Temperature
		count++
	}
	if count == 0 {
		return 0, false
	}
	return round1(sum / float64(count)), true
}

// thermalZone is one /sys/class/thermal entry: a type label and a reading.
type thermalZone struct {
	Type    string
	Celsius float64
}

// readThermalZones reads every zone under the thermal sysfs root. Zones that
// cannot be read or parsed are skipped, not fatal.
func (p *Probe) readThermalZones() []thermalZone {
	dirs, _ := filepath.Glob(filepath.Join(p.ThermalPath, "thermal_zone*"))

	var zones []thermalZone
	for _, dir := range dirs {
		typeRaw, err := os.ReadFile(filepath.Join(dir, "type"))
		if err != nil {
			p.Log.Warn("could not read thermal zone type", "zone", dir, "error", err)
			continue
		}
		tempRaw, err := os.ReadFile(filepath.Join(dir, "temp"))
		if err != nil {
			p.Log.Warn("could not read thermal zone temperature", "zone", dir, "error", err)
			continue
		}
		// The kernel reports milli-degrees Celsius.
		milliC, err := cast.ToFloat64E(strings.TrimSpace(string(tempRaw)))
		if err != nil {
			p.Log.Warn("malformed thermal zone temperature", "zone", dir, "error", err)
			continue
		}
		zones = append(zones, thermalZone{
			Type:    strings.ToLower(strings.TrimSpace(string(typeRaw))),
			Celsius: milliC / 1000,
		})
	}
	return zones
}

// thermalZoneTemperature averages the best available bucket of valid zone
// readings: dedicated CPU sensors if any exist, otherwise ACPI zones.
func (p *Probe) thermalZoneTemperature() (float64, bool) {
	return bucketThermalZones(p.readThermalZones())
}

func bucketThermalZones(zones []thermalZone) (float64, bool) {
	var preferred, fallback []float64
	for _, z := range zones {
		if !validTemp(z.Celsius) {
			continue
		}
		switch {
		case containsAny(z.Type, preferredZoneTypes):
			preferred = append(preferred, z.Celsius)
		case strings.Contains(z.Type, "acpi"):
			fallback = append(fallback, z.Celsius)
		}
	}

	bucket := preferred
	if len(bucket) == 0 {
		bucket = fallback
	}
	if len(bucket) == 0 {
		return 0, false
	}

	var sum float64
	for _, c := range bucket {
		sum += c
	}
	return round1(sum / float64(len(bucket))), true
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// TemperatureSources enumerates every temperature reading visible through
// either strategy, unfiltered, for the sensors subcommand.
func (p *Probe) TemperatureSources() []SensorInfo {
	var out []SensorInfo

	stats, err := sensors.SensorsTemperatures()
	if err != nil && len(stats) == 0 {
		p.Log.Warn("sensor API error", "error", err)
	}
	for _, s := range stats {
		out = append(out, SensorInfo{Source: "sensors", Name: s.SensorKey, Celsius: s.Temperature})
	}

	for _, z := range p.readThermalZones() {
		out = append(out, SensorInfo{Source: "thermal", Name: z.Type, Celsius: z.Celsius})
	}
	return out
}
