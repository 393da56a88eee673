// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/momeni/parkshare/pkg/adapter/config"
	"github.com/momeni/parkshare/pkg/adapter/config/settings"
	"github.com/momeni/parkshare/pkg/core/model"
	"github.com/momeni/parkshare/pkg/core/repo/mocks"
	"github.com/momeni/parkshare/pkg/core/usecase/spotsuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

const deviceID = "f47ac10b-58cc-4372-a567-0e02b2c3d479"

const minimal = `
remote:
    url: http://127.0.0.1:8000
storage:
    path: prefs.db
device:
    id: ` + deviceID + `
`

func ExampleSetDeviceID() {
	data := []byte("device:\n  id: \"\"\n  nav-provider: osm\n")
	b, err := config.SetDeviceID(data, uuid.MustParse(deviceID))
	fmt.Println(err)
	fmt.Print(string(b))
	// Output:
	// <nil>
	// device:
	//     id: f47ac10b-58cc-4372-a567-0e02b2c3d479
	//     nav-provider: osm
}

func ExampleConfig_Marshal() {
	d := settings.Duration(5 * time.Second)
	c := &config.Config{
		Remote: config.Remote{URL: "http://127.0.0.1:8000"},
		Storage: config.Storage{
			Driver:    config.DriverRedis,
			RedisAddr: "127.0.0.1:6379",
		},
		Device: config.Device{ID: deviceID, NavProvider: "geo"},
		Gin:    config.Gin{Addr: "127.0.0.1:8080"},
		Log:    config.Log{Level: "info", Format: "json"},
		Usecases: config.Usecases{
			Spots: config.Spots{PollInterval: &d},
		},
	}
	b, err := c.Marshal()
	fmt.Println(err)
	fmt.Print(string(b))
	// Output:
	// <nil>
	// remote:
	//     url: http://127.0.0.1:8000
	// storage:
	//     driver: redis
	//     redis-addr: 127.0.0.1:6379
	// device:
	//     id: f47ac10b-58cc-4372-a567-0e02b2c3d479
	//     nav-provider: geo
	// gin:
	//     addr: 127.0.0.1:8080
	// log:
	//     level: info
	//     format: json
	// usecases:
	//     spots:
	//         poll-interval: 5s
}

func TestParseDefaults(t *testing.T) {
	c, err := config.Parse([]byte(minimal))
	require.NoError(t, err)
	assert.Equal(t, config.DriverSQLite, c.Storage.Driver)
	assert.Equal(t, "prefs.db", c.Storage.Path)
	assert.Equal(t, uuid.MustParse(deviceID), c.Device.DeviceID())
	assert.True(t, *c.Device.LocationPermission)
	assert.Equal(t, "geo", c.Device.NavProvider)
	assert.Equal(t, "127.0.0.1:8080", c.Gin.Addr)
	assert.True(t, *c.Gin.Logger)
	assert.True(t, *c.Gin.Recovery)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "text", c.Log.Format)
	assert.Nil(t, c.Remote.Timeout)
	assert.Nil(t, c.Usecases.Spots.PollInterval)
	assert.Equal(t, model.DefaultThresholds(), c.Usecases.Spots.Thresholds())
}

func TestParseSampleConfig(t *testing.T) {
	c, err := config.Load(filepath.Join("..", "..", "..", config.DefaultPath))
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, c.Remote.Timeout.Std())
	assert.Equal(t, 5*time.Second, c.Usecases.Spots.PollInterval.Std())
	require.NotNil(t, c.Device.Position)
	assert.Equal(t, 48.8566, c.Device.Position.Lat)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("PARKSHARE_REMOTE_URL", "https://parkings.example.org")
	t.Setenv("PARKSHARE_REMOTE_TIMEOUT", "3s")
	t.Setenv("PARKSHARE_STORAGE_DRIVER", "redis")
	t.Setenv("PARKSHARE_REDIS_ADDR", "localhost:6379")
	t.Setenv("PARKSHARE_REDIS_DB", "2")
	t.Setenv("PARKSHARE_LOCATION_PERMISSION", "false")
	t.Setenv("PARKSHARE_POLL_INTERVAL", "1h")
	c, err := config.Parse([]byte(minimal))
	require.NoError(t, err)
	assert.Equal(t, "https://parkings.example.org", c.Remote.URL)
	assert.Equal(t, 3*time.Second, c.Remote.Timeout.Std())
	assert.Equal(t, config.DriverRedis, c.Storage.Driver)
	assert.Equal(t, "localhost:6379", c.Storage.RedisAddr)
	assert.Equal(t, 2, c.Storage.RedisDB)
	assert.False(t, *c.Device.LocationPermission)
	assert.Equal(t, time.Duration(config.MaxPollInterval),
		c.Usecases.Spots.PollInterval.Std(), "poll interval is clamped")
}

func TestEnvironmentErrors(t *testing.T) {
	t.Setenv("PARKSHARE_POLL_INTERVAL", "soon")
	_, err := config.Parse([]byte(minimal))
	assert.ErrorContains(t, err, "PARKSHARE_POLL_INTERVAL")
}

func TestParseRejects(t *testing.T) {
	for name, data := range map[string]string{
		"not yaml":       "remote: [",
		"empty":          "",
		"missing url":    "device:\n  id: " + deviceID + "\n",
		"missing device": "remote:\n  url: http://127.0.0.1:8000\n",
		"bad device":     "remote:\n  url: http://a.b\ndevice:\n  id: phone\n",
		"bad log level":  minimal + "log:\n  level: loud\n",
		"postgres dsn":   "remote:\n  url: http://a.b\ndevice:\n  id: " + deviceID + "\nstorage:\n  driver: postgres\n",
		"redis addr":     "remote:\n  url: http://a.b\ndevice:\n  id: " + deviceID + "\nstorage:\n  driver: redis\n",
		"bad latitude":   minimal + "    position:\n        lat: 91\n        lon: 0\n",
		"bad provider":   minimal + "    nav-provider: bing\n",
		"bad duration":   minimal + "usecases:\n  spots:\n    fresh: fast\n",
		"not increasing": minimal + "usecases:\n  spots:\n    fresh: 10m\n    aging: 5m\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestSpotsUseCase(t *testing.T) {
	c, err := config.Parse([]byte(minimal + `usecases:
    spots:
        poll-interval: 2s
        stale: 20m
`))
	require.NoError(t, err)
	ctrl := gomock.NewController(t)
	uc, err := c.NewSpotsUseCase(
		mocks.NewMockSpots(ctrl), mocks.NewMockPrefs(ctrl), spotsuc.Device{},
	)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, uc.PollInterval())
	th := uc.Classifier().Thresholds()
	assert.Equal(t, 5*time.Minute, th.Fresh)
	assert.Equal(t, 20*time.Minute, th.Stale)
}

func TestNewSession(t *testing.T) {
	c, err := config.Parse([]byte(minimal + "usecases:\n  app:\n    disclaimer: hi\n"))
	require.NoError(t, err)
	c.Storage.Path = filepath.Join(t.TempDir(), "prefs.db")
	ctx := context.Background()
	app, err := c.NewSession(ctx, nil)
	require.NoError(t, err)
	text, acked, err := app.Disclaimer(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hi", text)
	assert.False(t, acked)
	assert.NoError(t, app.Close())
}

func TestSetDeviceIDKeepsComments(t *testing.T) {
	data := []byte("# top\nremote:\n    url: http://a.b # the service\n")
	b, err := config.SetDeviceID(data, uuid.MustParse(deviceID))
	require.NoError(t, err)
	assert.Contains(t, string(b), "# top")
	assert.Contains(t, string(b), "# the service")
	var got struct {
		Device struct {
			ID string `yaml:"id"`
		} `yaml:"device"`
	}
	require.NoError(t, yaml.Unmarshal(b, &got))
	assert.Equal(t, deviceID, got.Device.ID)

	_, err = config.SetDeviceID(data, uuid.Nil)
	assert.Error(t, err)
	_, err = config.SetDeviceID([]byte("device: [1]\n"), uuid.New())
	assert.Error(t, err)
}
