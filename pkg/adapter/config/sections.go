// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/momeni/parkshare/pkg/adapter/config/settings"
	"github.com/momeni/parkshare/pkg/adapter/db/postgres"
	pgprefs "github.com/momeni/parkshare/pkg/adapter/db/postgres/prefsrp"
	sqliteprefs "github.com/momeni/parkshare/pkg/adapter/db/sqlite/prefsrp"
	"github.com/momeni/parkshare/pkg/adapter/device"
	redisprefs "github.com/momeni/parkshare/pkg/adapter/kv/redis/prefsrp"
	"github.com/momeni/parkshare/pkg/adapter/remote/spotsrp"
	"github.com/momeni/parkshare/pkg/adapter/restful/gin"
	"github.com/momeni/parkshare/pkg/core/log"
	"github.com/momeni/parkshare/pkg/core/model"
	"github.com/momeni/parkshare/pkg/core/repo"
	"github.com/momeni/parkshare/pkg/core/usecase/appuc"
	"github.com/momeni/parkshare/pkg/core/usecase/spotsuc"
)

// Names of the supported storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Remote contains the settings of the remote parking service.
type Remote struct {
	URL string `yaml:"url" validate:"required,url"`
	// Timeout of each request. A nil value lets the remote adapter
	// choose its default timeout.
	Timeout *settings.Duration `yaml:"timeout,omitempty"`
}

// NewRepo instantiates the remote spots repository. Its mutating
// requests carry the device id.
func (r Remote) NewRepo(id uuid.UUID) (*spotsrp.Repo, error) {
	opts := []spotsrp.Option{spotsrp.WithDeviceID(id)}
	if r.Timeout != nil {
		opts = append(opts, spotsrp.WithTimeout(r.Timeout.Std()))
	}
	return spotsrp.New(r.URL, opts...)
}

// Storage selects and configures the local prefs backend.
type Storage struct {
	Driver string `yaml:"driver" validate:"oneof=sqlite postgres redis"`
	// Path of the SQLite database file.
	Path string `yaml:"path,omitempty"`
	// DSN of the PostgreSQL database, in URL or key=value format.
	DSN           string `yaml:"dsn,omitempty" validate:"required_if=Driver postgres"`
	RedisAddr     string `yaml:"redis-addr,omitempty" validate:"required_if=Driver redis"`
	RedisPassword string `yaml:"redis-password,omitempty"`
	RedisDB       int    `yaml:"redis-db,omitempty" validate:"gte=0"`
}

func (s *Storage) normalize() {
	if s.Driver == "" {
		s.Driver = DriverSQLite
	}
	if s.Driver == DriverSQLite && s.Path == "" {
		s.Path = "parkshare.db"
		if dir, err := os.UserConfigDir(); err == nil {
			s.Path = filepath.Join(dir, "parkshare", "prefs.db")
		}
	}
}

// NewPrefsRepo opens the prefs repository of the device `id` using the
// configured driver.
func (s Storage) NewPrefsRepo(
	ctx context.Context, id uuid.UUID,
) (repo.Prefs, error) {
	switch s.Driver {
	case DriverSQLite:
		return sqliteprefs.Open(ctx, s.Path)
	case DriverPostgres:
		p, err := postgres.NewPool(ctx, s.DSN)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		r, err := pgprefs.Open(ctx, p, id)
		if err != nil {
			_ = p.Close()
			return nil, err
		}
		return r, nil
	case DriverRedis:
		return redisprefs.Open(ctx, redisprefs.Options{
			Addr:     s.RedisAddr,
			Password: s.RedisPassword,
			DB:       s.RedisDB,
			DeviceID: id,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", s.Driver)
	}
}

// Device contains the identity of this device and the settings of
// its headless collaborators.
type Device struct {
	// ID is the device uuid which is written by the init command.
	ID string `yaml:"id" validate:"required,uuid"`
	// LocationPermission is the answer to the location permission
	// request. It is granted by default.
	LocationPermission *bool `yaml:"location-permission,omitempty"`
	// Position is the reported position fix. Actions which need the
	// current position fail while it is missing.
	Position    *Position `yaml:"position,omitempty"`
	NavProvider string    `yaml:"nav-provider" validate:"oneof=google osm geo"`
}

// Position is a configured coordinate.
type Position struct {
	Lat float64 `yaml:"lat" validate:"latitude"`
	Lon float64 `yaml:"lon" validate:"longitude"`
}

func (d *Device) normalize() {
	settings.Default(&d.LocationPermission, true)
	if d.NavProvider == "" {
		d.NavProvider = "geo"
	}
}

// DeviceID returns the parsed device id. It must only be called on a
// validated Device.
func (d Device) DeviceID() uuid.UUID {
	return uuid.MustParse(d.ID)
}

// NewDevice instantiates the device collaborators. Notices are logged
// and also printed on w if it is not nil.
func (d Device) NewDevice(w io.Writer) (spotsuc.Device, error) {
	p, err := device.ParseNavProvider(d.NavProvider)
	if err != nil {
		return spotsuc.Device{}, fmt.Errorf("nav-provider: %w", err)
	}
	l := device.StaticLocator{Granted: *d.LocationPermission}
	if d.Position != nil {
		l.Position = &model.Coordinate{Lat: d.Position.Lat, Lon: d.Position.Lon}
	}
	return device.New(
		l, device.Navigator{Provider: p}, &device.Notifier{W: w},
	), nil
}

// Gin contains the gin-gonic related configuration settings of the
// local REST API.
type Gin struct {
	Addr     string `yaml:"addr" validate:"hostname_port"`
	Logger   *bool  `yaml:"logger,omitempty"`   // Whether to log requests
	Recovery *bool  `yaml:"recovery,omitempty"` // Whether to recover from panics
}

func (g *Gin) normalize() {
	if g.Addr == "" {
		g.Addr = "127.0.0.1:8080"
	}
	settings.Default(&g.Logger, true)
	settings.Default(&g.Recovery, true)
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the `g` settings.
func (g Gin) NewEngine() *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 3)
	middlewares = append(middlewares, gin.RequestAttrs())
	if *g.Logger {
		middlewares = append(middlewares, gin.Logger())
	}
	if *g.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	return gin.New(middlewares...)
}

// Log contains the structured logging settings.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

func (l *Log) normalize() {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

// NewHandler creates a slog handler which writes to w.
func (l Log) NewHandler(w io.Writer) (slog.Handler, error) {
	return log.NewHandler(w, l.Format, l.Level)
}

// Usecases contains the configuration settings for all use cases.
type Usecases struct {
	App   App   `yaml:"app,omitempty"` // session related settings
	Spots Spots `yaml:"spots"`         // spots use cases related settings
}

// App contains the settings of the session.
type App struct {
	// Disclaimer replaces the default beta disclaimer text.
	Disclaimer string `yaml:"disclaimer,omitempty"`
}

// Options returns the session options.
func (a App) Options() []appuc.Option {
	if a.Disclaimer == "" {
		return nil
	}
	return []appuc.Option{appuc.WithDisclaimer(a.Disclaimer)}
}

// Spots contains the configuration settings for the spots use cases.
// A nil field is left for the use cases layer to choose its default.
type Spots struct {
	PollInterval *settings.Duration `yaml:"poll-interval,omitempty"`
	// Upper bounds of the fresh, aging, and stale tiers.
	Fresh *settings.Duration `yaml:"fresh,omitempty"`
	Aging *settings.Duration `yaml:"aging,omitempty"`
	Stale *settings.Duration `yaml:"stale,omitempty"`
}

// Thresholds returns the default thresholds, as overridden by the
// given tier bounds.
func (s Spots) Thresholds() model.Thresholds {
	th := model.DefaultThresholds()
	if s.Fresh != nil {
		th.Fresh = s.Fresh.Std()
	}
	if s.Aging != nil {
		th.Aging = s.Aging.Std()
	}
	if s.Stale != nil {
		th.Stale = s.Stale.Std()
	}
	return th
}

// NewUseCase instantiates a new spots use case based on the settings
// in the `s` struct.
func (s Spots) NewUseCase(
	spots repo.Spots, prefs repo.Prefs, dev spotsuc.Device,
) (*spotsuc.UseCase, error) {
	opts := make([]spotsuc.Option, 0, 2)
	if s.PollInterval != nil {
		opts = append(opts, spotsuc.WithPollInterval(s.PollInterval.Std()))
	}
	if s.Fresh != nil || s.Aging != nil || s.Stale != nil {
		opts = append(opts, spotsuc.WithThresholds(s.Thresholds()))
	}
	return spotsuc.New(spots, prefs, dev, opts...)
}
