package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hwprobe/internal/conf"
	"hwprobe/internal/system"
)

func init() {
	rootCmd.AddCommand(sensorsCmd)
}

var sensorsCmd = &cobra.Command{
	Use:   "sensors",
	Short: "List every discovered temperature source",
	Long: `Lists the raw readings from the platform sensor API and the sysfs
thermal zones, unfiltered, for debugging which source the probe selects.`,
	RunE: runSensors,
}

func runSensors(cmd *cobra.Command, args []string) error {
	cfg, err := conf.Load(configPath)
	if err != nil {
		return err
	}

	probe := system.New(cfg, newLogger())
	sources := probe.TemperatureSources()
	if len(sources) == 0 {
		fmt.Println("No temperature sources found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SOURCE\tSENSOR\tTEMP")
	for _, s := range sources {
		fmt.Fprintf(w, "%s\t%s\t%.1f°C\n", s.Source, s.Name, s.Celsius)
	}
	return w.Flush()
}
