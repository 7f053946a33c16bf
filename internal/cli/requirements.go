// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/yatm/pkg/catalog"
	"github.com/mesh-intelligence/yatm/pkg/yatm"
)

func (a *app) requirementsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "requirements",
		Aliases: []string{"reqs"},
		Short:   "Create, validate and list requirements",
	}

	var name string
	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Write a demo requirements file to the new requirements directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := yatm.LoadConfig(a.configPath)
			if err != nil {
				return err
			}
			path, err := yatm.NewRequirementsFile(cfg, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
	newCmd.Flags().StringVarP(&name, "name", "n", "", "file name (default requirements-<timestamp>.yaml)")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate every requirements file in the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadManager(false)
			if err != nil {
				return err
			}
			reqs, err := m.ValidateRequirements()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d requirement(s) are valid\n", len(reqs))
			return nil
		},
	}

	validateFileCmd := &cobra.Command{
		Use:   "validate-file FILE...",
		Short: "Validate individual requirements files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				reqs, err := catalog.ReadRequirementsFile(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d requirement(s) are valid\n", path, len(reqs))
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every requirement in the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadManager(false)
			if err != nil {
				return err
			}
			reqs, err := m.LoadRequirements()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range reqs {
				line := r.Name
				if r.Shortname != "" {
					line += " (" + r.Shortname + ")"
				}
				if len(r.Labels) > 0 {
					line += " [" + strings.Join(r.Labels, ", ") + "]"
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.AddCommand(newCmd, validateCmd, validateFileCmd, listCmd)
	return cmd
}
