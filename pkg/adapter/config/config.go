// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config is an adapter which accepts yaml formatted config
// files from its users and allows the parkshare to instantiate
// different components, from the adapter or use cases layers, using
// those loaded configuration settings.
// The parsed and validated configurations are passed to their
// ultimate components as a series of individual params (for the
// mandatory items) and a series of functional options (for the
// optional items), so each component keeps its own defaults.
//
// Settings of a configuration file may be overridden by environment
// variables with the PARKSHARE_ prefix. A .env file in the working
// directory, if any, is loaded into the environment beforehand.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/momeni/parkshare/pkg/adapter/config/settings"
	"github.com/momeni/parkshare/pkg/core/log"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file which is used when neither
// a command line flag nor the CONFIG_FILE environment variable give
// the configuration file path.
const DefaultPath = "configs/sample-config.yaml"

// Boundaries of the polling interval. Out of range values are clamped.
var (
	MinPollInterval = settings.Duration(time.Second)
	MaxPollInterval = settings.Duration(10 * time.Minute)
)

var validate = validator.New()

// Config contains all settings of the parkshare client.
type Config struct {
	Remote   Remote   `yaml:"remote"`
	Storage  Storage  `yaml:"storage"`
	Device   Device   `yaml:"device"`
	Gin      Gin      `yaml:"gin"`
	Log      Log      `yaml:"log"`
	Usecases Usecases `yaml:"usecases"`
}

// Load loads the .env file (if it exists), reads the path config file,
// and parses it using the Parse function.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	return c, nil
}

// Parse unmarshals the data byte slice as a Config instance. Extra
// items in the data will be ignored and missing items will take their
// default values. Thereafter, the PARKSHARE_ environment variables
// override the parsed settings and the result is validated and
// normalized.
func Parse(data []byte) (*Config, error) {
	n := &yaml.Node{}
	if err := yaml.Unmarshal(data, n); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if l := len(n.Content); l != 1 {
		return nil, fmt.Errorf(
			"found %d children nodes, instead of 1 mapping child", l,
		)
	}
	c := &Config{}
	if err := n.Decode(c); err != nil {
		return nil, fmt.Errorf("decoding yaml node: %w", err)
	}
	if err := c.applyEnv(os.LookupEnv); err != nil {
		return nil, fmt.Errorf("applying environment variables: %w", err)
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// ValidateAndNormalize fills the missing settings with their defaults
// and returns an error if the settings were not acceptable.
func (c *Config) ValidateAndNormalize() error {
	c.Storage.normalize()
	c.Device.normalize()
	c.Gin.normalize()
	c.Log.normalize()
	if err := settings.VerifyRange(
		&c.Usecases.Spots.PollInterval, &MinPollInterval, &MaxPollInterval,
	); err != nil {
		log.Warn(
			context.Background(),
			"poll interval is adjusted by boundary values",
			log.Valuer("value", err.Value),
			log.Valuer("minb", &MinPollInterval),
			log.Valuer("maxb", &MaxPollInterval),
			log.Err("violation", err),
		)
	}
	if err := validate.Struct(c); err != nil {
		return err
	}
	if th := c.Usecases.Spots.Thresholds(); !th.Valid() {
		return fmt.Errorf(
			"freshness thresholds (%s, %s, %s) are not increasing",
			th.Fresh, th.Aging, th.Stale,
		)
	}
	return nil
}

// Marshal serializes `c` as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
