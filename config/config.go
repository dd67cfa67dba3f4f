// Package config holds the settings of the qecsynth command line tool.
package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/squid2010/qecsynth/codes"
	"github.com/squid2010/qecsynth/compose"
)

var Formats = []string{"text", "qasm", "gob", "cbor"}

type Config struct {
	Code          string `yaml:"code"`
	Shape         string `yaml:"shape"`
	LogicalQubits int    `yaml:"n"`
	Shots         int    `yaml:"shots"`
	Seed          int64  `yaml:"seed"`
	Workers       int    `yaml:"workers"`
	Format        string `yaml:"format"`
	LogLevel      string `yaml:"logLevel"`
}

func Default() *Config {
	return &Config{
		Code:          "five-qubit",
		Shape:         "bell",
		LogicalQubits: 2,
		Shots:         100,
		Seed:          1,
		Workers:       4,
		Format:        "text",
		LogLevel:      "info",
	}
}

// Load reads a YAML file over the defaults; keys missing from the file keep
// their default value.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every field that does not depend on the command run.
// The shape is resolved by the caller.
func (c *Config) Validate() error {
	if _, err := codes.ByName(c.Code); err != nil {
		return err
	}
	switch c.Shape {
	case "ghz", "unencoded", "unencoded-ghz":
		if err := compose.CheckSize(c.LogicalQubits); err != nil {
			return err
		}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "log level %q", c.LogLevel)
	}
	if c.Shots <= 0 {
		return errors.Errorf("shots must be positive, got %d", c.Shots)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	for _, f := range Formats {
		if f == c.Format {
			return nil
		}
	}
	return errors.Errorf("unknown format %q", c.Format)
}
