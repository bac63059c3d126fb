// Package system acquires hardware readings from layered data sources.
// Each reader tries a preferred system API first and falls back to the raw
// kernel filesystem; failures are logged and never propagate, they only
// cause fallthrough to the next source or an unavailable reading.
package system

import (
	"log/slog"
	"math"

	"hwprobe/internal/conf"
)

// Probe gathers hardware readings. It carries the configuration and logger
// so the acquisition code has no ambient global state.
type Probe struct {
	Config conf.Config
	Log    *slog.Logger

	// Source paths, overridable in tests.
	ThermalPath string
	MeminfoPath string
}

// New returns a Probe reading from the standard Linux source paths.
func New(cfg conf.Config, logger *slog.Logger) *Probe {
	return &Probe{
		Config:      cfg,
		Log:         logger,
		ThermalPath: "/sys/class/thermal",
		MeminfoPath: "/proc/meminfo",
	}
}

// round1 rounds to one decimal place, the precision of every reported figure.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
