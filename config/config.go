// Package config holds the settings shared by the command line tools.
package config

import (
	"io"
	"os"

	"github.com/ieee0824/bidilm/corpus"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"
)

// Weights are the interpolation weights of the forward and backward models.
type Weights struct {
	Forward  float64 `yaml:"forward"`
	Backward float64 `yaml:"backward"`
}

// Smoothing are the unigram/bigram interpolation weights inside each
// directional model.
type Smoothing struct {
	Unigram float64 `yaml:"unigram"`
	Bigram  float64 `yaml:"bigram"`
}

// Log configures logging. An empty File logs to stderr only.
type Log struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Config is the YAML configuration file.
type Config struct {
	Weights      Weights   `yaml:"weights"`
	Smoothing    Smoothing `yaml:"smoothing"`
	TestFraction float64   `yaml:"test_fraction"`
	Format       string    `yaml:"format"`
	Normalize    bool      `yaml:"normalize"`
	CacheSize    int       `yaml:"cache_size"`
	Log          Log       `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Weights:      Weights{Forward: 0.5, Backward: 0.5},
		Smoothing:    Smoothing{Unigram: 0.1, Bigram: 0.9},
		TestFraction: 0.1,
		Format:       string(corpus.POS),
		Log: Log{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer file.Close()

	config := Default()
	if err := yaml.NewDecoder(file).Decode(config); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return config, nil
}

// Validate checks the settings that would otherwise fail late. The
// interpolation weights are not checked.
func (c *Config) Validate() error {
	if c.TestFraction < 0 || c.TestFraction >= 1 {
		return errors.Errorf("test_fraction %g outside [0, 1)", c.TestFraction)
	}
	if _, err := corpus.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := c.Log.ZapLevel(); err != nil {
		return err
	}
	if c.CacheSize < 0 {
		return errors.Errorf("cache_size %d is negative", c.CacheSize)
	}
	return nil
}

// ZapLevel parses Level.
func (l Log) ZapLevel() (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return lvl, errors.Wrapf(err, "log level %q", l.Level)
	}
	return lvl, nil
}
