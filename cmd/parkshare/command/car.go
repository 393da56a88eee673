// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/momeni/parkshare/pkg/adapter/device"
	"github.com/momeni/parkshare/pkg/core/model"
	"github.com/momeni/parkshare/pkg/core/usecase/appuc"
	"github.com/momeni/parkshare/pkg/core/usecase/spotsuc"
	"github.com/spf13/cobra"
)

// assumeYes skips the confirmation prompts of claim and leave commands.
var assumeYes bool

var claimCmd = &cobra.Command{
	Use:   "claim <spot-id>",
	Short: "Park in a displayed spot",
	Long: `Park in a displayed spot. After confirmation, the spot is removed
from the shared collection and the car position is recorded locally.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return openSession(cmd, func(ctx context.Context, app *appuc.UseCase) error {
			err := app.Gate().Claim(ctx, model.SpotID(args[0]), confirmer(cmd))
			if err != nil {
				return err
			}
			return printStatus(cmd.OutOrStdout(), app)
		})
	},
}

var leaveCmd = &cobra.Command{
	Use:   "leave",
	Short: "Leave the parked spot and share it",
	Long: `Leave the parked spot. After confirmation, the car position is
shared as a new free spot and the local car record is removed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return openSession(cmd, func(ctx context.Context, app *appuc.UseCase) error {
			if err := app.Gate().Leave(ctx, confirmer(cmd)); err != nil {
				return err
			}
			return printStatus(cmd.OutOrStdout(), app)
		})
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the parking state and the permitted actions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return openSession(cmd, func(_ context.Context, app *appuc.UseCase) error {
			return printStatus(cmd.OutOrStdout(), app)
		})
	},
}

func confirmer(cmd *cobra.Command) spotsuc.Confirmer {
	if assumeYes {
		return device.Fixed(model.DecisionConfirm)
	}
	return device.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
}

func printStatus(w io.Writer, app *appuc.UseCase) error {
	g := app.Gate()
	actions := make([]string, 0, len(model.Actions))
	for _, a := range g.AllowedActions() {
		actions = append(actions, a.String())
	}
	if _, err := fmt.Fprintf(w, "state: %s\n", g.State()); err != nil {
		return err
	}
	if car := app.Store().Car(); car != nil {
		fmt.Fprintf(w, "car: %s since %s\n", car.Coordinate, car.Date())
	}
	_, err := fmt.Fprintf(w, "actions: %s\n", strings.Join(actions, ", "))
	return err
}

func init() {
	for _, c := range []*cobra.Command{claimCmd, leaveCmd} {
		c.Flags().BoolVarP(
			&assumeYes, "yes", "y", false, "confirm without prompting",
		)
	}
	rootCmd.AddCommand(claimCmd, leaveCmd, statusCmd)
}
