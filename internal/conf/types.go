package conf

// Config holds the probe configuration. Only the refresh interval is
// user-facing: the probe runs once per invocation and the host process is
// expected to honor the interval by re-invoking.
type Config struct {
	Interval int `toml:"interval"`
}
