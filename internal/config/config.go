// Package config loads the configuration of the radix shell command.
//
// Values are taken from, in order of decreasing precedence, command line
// flags, environment variables with prefix RADIX_, an optional config file
// and built-in defaults. Nested keys map to environment variables by
// replacing dots with underscores, e.g. dot.graph_name is RADIX_DOT_GRAPH_NAME.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Errors returned by Validate.
var (
	ErrInvalidTraceLevel = errors.New("config: invalid trace level")
	ErrInvalidRankDir    = errors.New("config: invalid rank direction")
)

// Config holds the configuration of the command.
type Config struct {
	Trace string    `mapstructure:"trace"`
	Dot   DotConfig `mapstructure:"dot"`
}

// DotConfig holds the settings for Graphviz export.
type DotConfig struct {
	File      string `mapstructure:"file"`
	GraphName string `mapstructure:"graph_name"`
	RankDir   string `mapstructure:"rankdir"`
	FontName  string `mapstructure:"fontname"`
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"trace":      "trace",
	"dot":        "dot.file",
	"graph-name": "dot.graph_name",
	"rankdir":    "dot.rankdir",
	"fontname":   "dot.fontname",
}

// Flags registers the command line flags understood by Load.
// Flags left unset do not override other configuration sources.
func Flags(fs *pflag.FlagSet) {
	fs.String("config", "", "Configuration file (yaml, toml or json)")
	fs.StringP("trace", "t", "", "Trace level [D|I|E]")
	fs.String("dot", "", "Output file for Graphviz export")
	fs.String("graph-name", "", "Name of the exported digraph")
	fs.String("rankdir", "", "Graphviz rank direction [TB|LR|BT|RL]")
	fs.String("fontname", "", "Font for Graphviz labels")
}

// Load reads the configuration. configPath may be empty, flags may be nil.
// The result is validated.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}
	v.SetEnvPrefix("RADIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: %w", err)
				}
			}
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal config: %w", err)
	}
	cfg.Trace = strings.ToUpper(strings.TrimSpace(cfg.Trace))
	cfg.Dot.RankDir = strings.ToUpper(strings.TrimSpace(cfg.Dot.RankDir))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("trace", "I")
	v.SetDefault("dot.file", "radix_tree.dot")
	v.SetDefault("dot.graph_name", "RadixTree")
	v.SetDefault("dot.rankdir", "TB")
	v.SetDefault("dot.fontname", "Arial")
}

// Validate checks the trace level and the rank direction.
func (c *Config) Validate() error {
	switch c.Trace {
	case "D", "I", "E":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTraceLevel, c.Trace)
	}
	switch c.Dot.RankDir {
	case "TB", "LR", "BT", "RL":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRankDir, c.Dot.RankDir)
	}
	if c.Dot.File == "" {
		return errors.New("config: dot file must not be empty")
	}
	return nil
}

// TraceLevel returns the configured trace level.
func (c *Config) TraceLevel() tracing.TraceLevel {
	switch c.Trace {
	case "D":
		return tracing.LevelDebug
	case "E":
		return tracing.LevelError
	}
	return tracing.LevelInfo
}
