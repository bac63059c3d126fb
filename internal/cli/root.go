// Package cli implements the hwprobe command line using Cobra.
// The root command runs one probe cycle; `sensors` lists discovered sources.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"hwprobe/internal/conf"
	"hwprobe/internal/system"
	"hwprobe/internal/waybar"
)

var (
	configPath string
	interval   int
)

var rootCmd = &cobra.Command{
	Use:   "hwprobe",
	Short: "Report CPU temperature, load and memory usage as Waybar JSON",
	Long: `hwprobe gathers CPU temperature, per-core load and memory usage and
prints a single JSON record for a Waybar custom module. It runs once and
exits; the bar re-invokes it on its configured interval.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runProbe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	rootCmd.Flags().IntVar(&interval, "interval", conf.DefaultInterval,
		"advisory refresh interval in seconds, honored by the host bar")
}

// Execute runs the root command. Called from main.go. On failure a degraded
// record is still written to stdout so the bar never sees malformed output.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		newLogger().Error("probe failed", "error", err)
		if werr := waybar.ErrorRecord(err).Write(os.Stdout); werr != nil {
			fmt.Fprintln(os.Stderr, "Error:", werr)
		}
		os.Exit(1)
	}
}

// newLogger builds the process logger. stdout carries the JSON contract, so
// all logging goes to stderr.
func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	probe := system.New(cfg, newLogger())

	temp := probe.Temperature()
	memory := probe.Memory()
	load := probe.Load()

	record := waybar.Format(temp, memory, load, time.Now())
	return record.Write(os.Stdout)
}

// loadConfig merges the config file with flags; an explicit --interval wins.
func loadConfig(cmd *cobra.Command) (conf.Config, error) {
	cfg, err := conf.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("interval") {
		cfg.Interval = interval
	}
	return cfg, nil
}
