package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/blossomtrace/blossom"
	"github.com/katalvlaran/blossomtrace/playback"
	"github.com/katalvlaran/blossomtrace/render"
)

// Config holds the settings shared by all commands. Values come from the
// defaults, then the --config file, then explicitly set flags.
type Config struct {
	Format      string        `yaml:"format"`
	Interval    time.Duration `yaml:"interval"`
	MaxVertices int           `yaml:"max_vertices"`
	LogLevel    string        `yaml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		Format:      string(render.FormatText),
		Interval:    playback.DefaultInterval,
		MaxVertices: blossom.DefaultMaxVertices,
		LogLevel:    logrus.InfoLevel.String(),
	}
}

// loadConfigFile overlays the YAML file at path onto cfg. Unknown keys are
// rejected.
func loadConfigFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: %s: %w", path, err)
	}

	return nil
}

// applyFlags copies every flag the user set explicitly over cfg.
func (i *Input) applyFlags(fs *pflag.FlagSet, cfg *Config) {
	if changed(fs, "format") {
		cfg.Format = i.format
	}
	if changed(fs, "interval") {
		cfg.Interval = i.interval
	}
	if changed(fs, "max-vertices") {
		cfg.MaxVertices = i.maxVertices
	}
}

func changed(fs *pflag.FlagSet, name string) bool {
	f := fs.Lookup(name)

	return f != nil && f.Changed
}

// validate checks cfg. The interval is only checked for commands that play
// the trace; zero selects playback.DefaultInterval.
func (cfg *Config) validate(playing bool) error {
	var err error

	if _, fmtErr := render.ParseFormat(cfg.Format); fmtErr != nil {
		err = multierror.Append(err, fmt.Errorf("invalid value for format: %w", fmtErr))
	}

	if cfg.Interval == 0 {
		cfg.Interval = playback.DefaultInterval
	}
	if playing && cfg.Interval < playback.MinInterval {
		err = multierror.Append(err, fmt.Errorf("invalid value for interval, must be ≥ %s", playback.MinInterval))
	}

	if cfg.MaxVertices < 0 {
		err = multierror.Append(err, errors.New("invalid value for max vertices, must be ≥ 0"))
	}

	if _, lvlErr := logrus.ParseLevel(cfg.LogLevel); lvlErr != nil {
		err = multierror.Append(err, fmt.Errorf("invalid value for log level: %w", lvlErr))
	}

	return err
}

// settings resolves the effective Config and a logger for one command run.
func (i *Input) settings(fs *pflag.FlagSet, logOut io.Writer) (Config, *logrus.Entry, error) {
	cfg := defaultConfig()
	if i.configPath != "" {
		if err := loadConfigFile(i.configPath, &cfg); err != nil {
			return Config{}, nil, err
		}
	}
	i.applyFlags(fs, &cfg)
	if err := cfg.validate(fs.Lookup("interval") != nil); err != nil {
		return Config{}, nil, fmt.Errorf("config validation failed: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(logOut)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	if i.verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	return cfg, logrus.NewEntry(logger).WithField("app", appName), nil
}
