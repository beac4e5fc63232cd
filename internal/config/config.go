package config

import (
	"os"

	"codeberg.org/mutker/errchain"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel = "info"

	defaultReportDB = "errchain-report.db"
	envConfigPath   = "ERRCHAIN_CONFIG"
)

type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Report   bool   `mapstructure:"report"`
	ReportDB string `mapstructure:"report_db"`
}

// Load merges defaults, an optional TOML config file pointed to by
// ERRCHAIN_CONFIG, and command line flags (highest precedence).
func Load() (*Config, error) {
	flags := pflag.NewFlagSet("errchain-demo", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.String("log-level", DefaultLogLevel, "Logging level (debug, info, warning, error)")
	flags.Bool("report", false, "Record failures to the report database")
	flags.String("report-db", defaultReportDB, "Path to the report database")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return nil, errchain.Wrap(err, "parsing command line flags")
	}

	v := viper.New()
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("report", false)
	v.SetDefault("report_db", defaultReportDB)

	if path := os.Getenv(envConfigPath); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errchain.Wrap(err, "reading config file")
		}
	}

	// Flags set on the command line override file values
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "log-level":
			v.Set("log_level", f.Value.String())
		case "report":
			v.Set("report", f.Value.String() == "true")
		case "report-db":
			v.Set("report_db", f.Value.String())
		}
	})

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errchain.Wrap(err, "unmarshaling config")
	}

	if _, err := config.Level(); err != nil {
		return nil, err
	}

	return config, nil
}

// Level maps the configured log level onto a zerolog level.
func (c *Config) Level() (zerolog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, InvalidLogLevelError{Level: c.LogLevel}
	}
}
