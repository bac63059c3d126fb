package system

// TemperatureReading is a single representative CPU temperature.
// OK is false when no source produced a valid reading.
type TemperatureReading struct {
	Celsius float64
	OK      bool
}

// MemoryReading represents memory usage in gigabytes. The three figures are
// populated together or not at all; OK false means the whole record is
// unavailable, never a partial one.
type MemoryReading struct {
	UsedGB  float64
	TotalGB float64
	Percent float64
	OK      bool
}

// LoadReading represents CPU utilization percentages. PerCore holds one
// entry per logical core and is empty when load data is unavailable.
// Overall is valid only when HasOverall is set.
type LoadReading struct {
	Overall    float64
	HasOverall bool
	PerCore    []float64
}

// SensorInfo describes one discovered temperature source, as listed by the
// sensors subcommand.
type SensorInfo struct {
	Source  string
	Name    string
	Celsius float64
}
