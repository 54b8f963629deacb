// Package config holds app wide settings unmarshalled from Viper
// (config file and/or command line flags, flags winning).
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct. Every field has a working
// default so the program runs without a config file.
type Config struct {
	// path to the sequence text file
	SequencePath string `mapstructure:"sequence"`

	// default window size for windowed GC analysis
	WindowSize int `mapstructure:"window-size"`

	// path the exported report is written to
	ReportPath string `mapstructure:"report"`

	// log level: debug, info, warn or error
	LogLevel string `mapstructure:"log-level"`
}

// Load returns a Config populated from the given config file merged over
// the defaults. An empty path looks for dnapf.yaml in the working
// directory; a missing implicit file is not an error, a missing explicit
// one is.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("sequence", "sequence.txt")
	v.SetDefault("window-size", 100)
	v.SetDefault("report", "report.txt")
	v.SetDefault("log-level", "info")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("dnapf")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if path != "" || !notFound {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &c, nil
}
