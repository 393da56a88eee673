// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands of the parkshare
// client. Commands are organized using the cobra library.
// The root command serves the local REST API while other sub-commands
// perform a single user action against the configured remote service
// and exit. The "init" sub-command creates a config file with a fresh
// device id.
//
//	./parkshare [-c /path/of/config.yaml]           # serve REST API
//	./parkshare init /path/of/new/config.yaml [-c /path/of/sample.yaml]
//	./parkshare spots [-c /path/of/config.yaml]
//	./parkshare report [--lat 48.85 --lon 2.35]
//	./parkshare claim <spot-id> [-y]
//	./parkshare navigate <spot-id>
//	./parkshare fake <spot-id>
//	./parkshare leave [-y]
//	./parkshare status
//	./parkshare disclaimer [--ack]
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/momeni/parkshare/pkg/adapter/config"
	"github.com/momeni/parkshare/pkg/adapter/restful/gin"
	"github.com/momeni/parkshare/pkg/adapter/restful/gin/routes"
	"github.com/momeni/parkshare/pkg/core/log"
	"github.com/momeni/parkshare/pkg/core/usecase/appuc"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "parkshare",
	Short: "A community parking spots sharing client",
	Long: `A community parking spots sharing client which shows the free
parking spots reported by other drivers, colored by their freshness,
and lets the driver claim a spot, navigate to it, report a new one,
mark a fake one, and share the spot back when leaving.
Without a sub-command, the client is served as a local REST API and
the spots collection is polled in the background. Sub-commands run
one action and exit.`,
	RunE:          serve,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func serve(cmd *cobra.Command, _ []string) (err error) {
	ctx, stop := signal.NotifyContext(
		cmd.Context(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()
	c, err := loadConfig(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	app, err := c.NewSession(ctx, nil)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	defer closeSession(app, &err)
	if err = app.Start(ctx); err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	var e *gin.Engine = c.Gin.NewEngine()
	if err = routes.Register(e, app); err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	srv := &http.Server{
		Addr:              c.Gin.Addr,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errs := make(chan error, 1)
	go func() {
		log.Info(ctx, "serving REST API", slog.String("addr", c.Gin.Addr))
		errs <- srv.ListenAndServe()
	}()
	select {
	case err = <-errs:
		return fmt.Errorf("serving REST API: %w", err)
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down")
	sctx, cancel := context.WithTimeout(
		context.WithoutCancel(ctx), shutdownTimeout,
	)
	defer cancel()
	if err = srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err = <-errs; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving REST API: %w", err)
	}
	return nil
}

// loadConfig loads the config file and installs its logger as the
// default slog logger, writing to w.
func loadConfig(w io.Writer) (*config.Config, error) {
	c, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	h, err := c.Log.NewHandler(w)
	if err != nil {
		return nil, fmt.Errorf("creating log handler: %w", err)
	}
	slog.SetDefault(slog.New(h))
	return c, nil
}

// openSession loads the config file and opens a session whose notices
// are printed on the standard error of cmd. The fn function runs with
// the opened session which is closed afterwards.
func openSession(
	cmd *cobra.Command, fn func(context.Context, *appuc.UseCase) error,
) (err error) {
	ctx := log.WithAttrs(cmd.Context(), slog.String("command", cmd.Name()))
	c, err := loadConfig(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	app, err := c.NewSession(ctx, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	defer closeSession(app, &err)
	if err = app.Open(ctx); err != nil {
		return fmt.Errorf("opening session: %w", err)
	}
	return fn(ctx, app)
}

// closeSession closes app and reports its error through err unless err
// already holds an earlier error.
func closeSession(app io.Closer, err *error) {
	if err2 := app.Close(); err2 != nil && *err == nil {
		*err = fmt.Errorf("closing session: %w", err2)
	}
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. The exit code is
// zero for success and one for failures.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		cfgPath = config.DefaultPath
	}
}
