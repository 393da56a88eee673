// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"fmt"
	"strconv"

	"github.com/momeni/parkshare/pkg/adapter/config/settings"
)

// EnvPrefix is the common prefix of the environment variables which
// override the configuration file settings, e.g., PARKSHARE_REMOTE_URL.
const EnvPrefix = "PARKSHARE_"

// LookupFunc retrieves the value of an environment variable.
type LookupFunc func(key string) (string, bool)

func (c *Config) applyEnv(lookup LookupFunc) error {
	strs := map[string]*string{
		"REMOTE_URL":     &c.Remote.URL,
		"STORAGE_DRIVER": &c.Storage.Driver,
		"STORAGE_PATH":   &c.Storage.Path,
		"STORAGE_DSN":    &c.Storage.DSN,
		"REDIS_ADDR":     &c.Storage.RedisAddr,
		"REDIS_PASSWORD": &c.Storage.RedisPassword,
		"DEVICE_ID":      &c.Device.ID,
		"NAV_PROVIDER":   &c.Device.NavProvider,
		"GIN_ADDR":       &c.Gin.Addr,
		"LOG_LEVEL":      &c.Log.Level,
		"LOG_FORMAT":     &c.Log.Format,
	}
	for k, p := range strs {
		if v, ok := lookup(EnvPrefix + k); ok {
			*p = v
		}
	}
	durs := map[string]**settings.Duration{
		"REMOTE_TIMEOUT": &c.Remote.Timeout,
		"POLL_INTERVAL":  &c.Usecases.Spots.PollInterval,
	}
	for k, p := range durs {
		v, ok := lookup(EnvPrefix + k)
		if !ok {
			continue
		}
		d, err := settings.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parsing %s%s: %w", EnvPrefix, k, err)
		}
		settings.Override(p, d)
	}
	if v, ok := lookup(EnvPrefix + "REDIS_DB"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %sREDIS_DB: %w", EnvPrefix, err)
		}
		c.Storage.RedisDB = n
	}
	if v, ok := lookup(EnvPrefix + "LOCATION_PERMISSION"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf(
				"parsing %sLOCATION_PERMISSION: %w", EnvPrefix, err,
			)
		}
		settings.Override(&c.Device.LocationPermission, &b)
	}
	return nil
}
