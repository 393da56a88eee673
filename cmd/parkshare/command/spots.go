// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/momeni/parkshare/pkg/core/model"
	"github.com/momeni/parkshare/pkg/core/usecase/appuc"
	"github.com/spf13/cobra"
)

var spotsCmd = &cobra.Command{
	Use:   "spots",
	Short: "List the visible free spots",
	Long: `Fetch the spots collection and list its visible spots, from the
freshest to the oldest one. Expired spots are hidden.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return openSession(cmd, func(_ context.Context, app *appuc.UseCase) error {
			return printViews(cmd.OutOrStdout(), app.Store().View())
		})
	},
}

var reportFlags struct {
	lat, lon float64
	reason   string
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report a seen free spot",
	Long: `Report a free spot at the given coordinate, or at the current
device position when the --lat and --lon flags are omitted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		reason, err := model.ParseReportReason(reportFlags.reason)
		if err != nil {
			return err
		}
		latSet := cmd.Flags().Changed("lat")
		if latSet != cmd.Flags().Changed("lon") {
			return errors.New("--lat and --lon must be given together")
		}
		var at *model.Coordinate
		if latSet {
			at = &model.Coordinate{Lat: reportFlags.lat, Lon: reportFlags.lon}
		}
		return openSession(cmd, func(ctx context.Context, app *appuc.UseCase) error {
			if err := app.Gate().Report(ctx, reason, at); err != nil {
				return err
			}
			return printViews(cmd.OutOrStdout(), app.Store().View())
		})
	},
}

var navigateCmd = &cobra.Command{
	Use:   "navigate <spot-id>",
	Short: "Print the navigation URL towards a displayed spot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return openSession(cmd, func(ctx context.Context, app *appuc.UseCase) error {
			u, err := app.Gate().Navigate(ctx, model.SpotID(args[0]))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), u)
			return err
		})
	},
}

var fakeCmd = &cobra.Command{
	Use:   "fake <spot-id>",
	Short: "Report a spot as fake or occupied",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return openSession(cmd, func(ctx context.Context, app *appuc.UseCase) error {
			return app.Gate().MarkFake(ctx, model.SpotID(args[0]))
		})
	},
}

func printViews(w io.Writer, views []model.SpotView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOORDINATE\tFRESHNESS\tCOLOR\tMESSAGE")
	for _, v := range views {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			v.ID, v.Coordinate, v.Tier, v.Color, v.Message,
		)
	}
	return tw.Flush()
}

func init() {
	reportCmd.Flags().Float64Var(&reportFlags.lat, "lat", 0, "spot latitude")
	reportCmd.Flags().Float64Var(&reportFlags.lon, "lon", 0, "spot longitude")
	reportCmd.Flags().StringVar(
		&reportFlags.reason, "reason", model.ReportReasonSpotted.String(),
		"why the spot is reported (spotted or left)",
	)
	rootCmd.AddCommand(spotsCmd, reportCmd, navigateCmd, fakeCmd)
}
