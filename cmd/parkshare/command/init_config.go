// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/momeni/parkshare/pkg/adapter/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init <dst-config.yaml>",
	Short: "Create a config file with a fresh device id",
	Long: `Create a config file for this device by copying the config file
which is given by the -c flag (or the CONFIG_FILE environment variable)
and setting its device.id to a freshly generated random uuid.
Comments and other settings of the copied file are kept as is.
The destination file must not exist. It is validated after creation,
so it must carry a usable remote url too.`,
	Args: cobra.ExactArgs(1),
	RunE: initConfig,
}

func initConfig(cmd *cobra.Command, args []string) error {
	dst := args[0]
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return fmt.Errorf("reading %q: %w", cfgPath, err)
	}
	id := uuid.New()
	data, err = config.SetDeviceID(data, id)
	if err != nil {
		return fmt.Errorf("setting device id: %w", err)
	}
	if _, err = config.Parse(data); err != nil {
		return fmt.Errorf("validating new config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%q already exists", dst)
		}
		return fmt.Errorf("creating %q: %w", dst, err)
	}
	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %q: %w", dst, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", dst, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "device %s is configured in %s\n", id, dst)
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
