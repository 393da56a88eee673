// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/momeni/parkshare/pkg/core/usecase/appuc"
	"github.com/spf13/cobra"
)

var ackDisclaimer bool

var disclaimerCmd = &cobra.Command{
	Use:   "disclaimer",
	Short: "Show or acknowledge the community disclaimer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return openSession(cmd, func(ctx context.Context, app *appuc.UseCase) error {
			if ackDisclaimer {
				if err := app.AckDisclaimer(ctx); err != nil {
					return err
				}
			}
			text, acked, err := app.Disclaimer(ctx)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(
				cmd.OutOrStdout(), "%s\nacknowledged: %t\n", text, acked,
			)
			return err
		})
	},
}

func init() {
	disclaimerCmd.Flags().BoolVar(
		&ackDisclaimer, "ack", false, "acknowledge the disclaimer",
	)
	rootCmd.AddCommand(disclaimerCmd)
}
