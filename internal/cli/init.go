// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/yatm/pkg/yatm"
)

func (a *app) initCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new workspace",
		Long:  "Create config.yaml, demo requirements and test case builders in a new or empty directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := yatm.InitWorkspace(path); err != nil {
				return err
			}
			a.log.Sugar().Infof("init: workspace=%s", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized workspace in %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "path", "p", ".", "directory to initialize")
	return cmd
}
