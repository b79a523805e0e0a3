// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the FITSCAN_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	{"DIR", []string{"dir"}, func(c *AppConfig, v string) {
		c.Dir = v
	}},
	{"WORKERS", []string{"workers", "w"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}},
	{"OUTPUT", []string{"output", "o"}, func(c *AppConfig, v string) {
		c.OutputFile = v
	}},
	{"METRICS_FILE", []string{"metrics-file"}, func(c *AppConfig, v string) {
		c.MetricsFile = v
	}},
	{"LOG_LEVEL", []string{"log-level"}, func(c *AppConfig, v string) {
		c.LogLevel = v
	}},
	{"PARTIAL", []string{"partial"}, func(c *AppConfig, v string) {
		c.Partial = parseBoolEnv(v, c.Partial)
	}},
	{"PROGRESS", []string{"progress"}, func(c *AppConfig, v string) {
		c.Progress = parseBoolEnv(v, c.Progress)
	}},
	{"STATS", []string{"stats"}, func(c *AppConfig, v string) {
		c.Stats = parseBoolEnv(v, c.Stats)
	}},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with FITSCAN_):
//   - DIR, WORKERS, OUTPUT, METRICS_FILE, LOG_LEVEL, PARTIAL, PROGRESS,
//     STATS, NO_COLOR
//
// A positional directory argument counts as setting --dir.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if o.envKey == "DIR" && fs.NArg() > 0 {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
