// Package config holds the engine settings. Values come from defaults,
// OTHELLO_* environment variables and command line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug           = "debug"
	ConfigLevels          = "levels"
	ConfigCPUProfile      = "cpu-profile"
	ConfigMemProfile      = "mem-profile"
	ConfigAutoplayThreads = "autoplay-threads"
	ConfigAutoplayOutput  = "autoplay-output"
	ConfigHistoryFile     = "history-file"
	ConfigDebugAddr       = "debug-addr"
)

var ErrBadLevel = errors.New("level out of range")

type Config struct {
	*viper.Viper
}

// DefaultConfig returns a config with every key at its default value.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.SetEnvPrefix("othello")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigLevels, []int{2, 3, 5, 7, 10, 15})
	c.SetDefault(ConfigCPUProfile, "")
	c.SetDefault(ConfigMemProfile, "")
	c.SetDefault(ConfigAutoplayThreads, 4)
	c.SetDefault(ConfigAutoplayOutput, "/tmp/othello_autoplay.csv")
	c.SetDefault(ConfigHistoryFile, "/tmp/othello_readline.tmp")
	c.SetDefault(ConfigDebugAddr, "")
	return c
}

// Load parses flags out of args and binds them over the defaults. Any
// positional arguments are left for the caller to interpret as a command.
func (c *Config) Load(args []string) ([]string, error) {
	if c.Viper == nil {
		*c = *DefaultConfig()
	}
	fs := pflag.NewFlagSet("othello", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, c.GetBool(ConfigDebug), "debug logging on")
	fs.IntSlice(ConfigLevels, c.GetIntSlice(ConfigLevels), "search depth for each difficulty level")
	fs.String(ConfigCPUProfile, c.GetString(ConfigCPUProfile), "write a CPU profile to this file")
	fs.String(ConfigMemProfile, c.GetString(ConfigMemProfile), "write a heap profile to this file on exit")
	fs.Int(ConfigAutoplayThreads, c.GetInt(ConfigAutoplayThreads), "number of self-play workers")
	fs.String(ConfigAutoplayOutput, c.GetString(ConfigAutoplayOutput), "self-play CSV output file")
	fs.String(ConfigHistoryFile, c.GetString(ConfigHistoryFile), "readline history file")
	fs.String(ConfigDebugAddr, c.GetString(ConfigDebugAddr), "serve expvar counters on this address, e.g. :8088")
	fs.SetInterspersed(false)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	// Only flags that were actually passed override env and defaults.
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err == nil {
			err = c.BindPFlag(f.Name, f)
		}
	})
	if err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

// Levels returns the configured search depth of every difficulty level.
func (c *Config) Levels() []int {
	return c.GetIntSlice(ConfigLevels)
}

// DepthForLevel maps a 1-based difficulty level to its search depth.
func (c *Config) DepthForLevel(level int) (int, error) {
	levels := c.Levels()
	if level < 1 || level > len(levels) {
		return 0, fmt.Errorf("%w: level must be between 1 and %d", ErrBadLevel, len(levels))
	}
	return levels[level-1], nil
}

// SanitizedSettings returns every setting for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
