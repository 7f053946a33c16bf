// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/yatm/pkg/reconcile"
)

// errNeedsYes guards destructive commands.
var errNeedsYes = errors.New("refusing to run without --yes")

func (a *app) githubCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "github",
		Aliases: []string{"gh"},
		Short:   "Reconcile test cases with GitHub issues",
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Count test cases missing, identical or drifted on GitHub",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadManager(true)
			if err != nil {
				return err
			}
			matches, err := m.Status(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, mt := range matches {
				if mt.Type == reconcile.Drifted {
					fmt.Fprintf(out, "drifted: #%d %s\n", mt.Remote.Number, mt.Local.Title)
				}
			}
			counts := reconcile.Counts(matches)
			fmt.Fprintf(out, "%d test case(s): %d missing, %d identical, %d drifted\n",
				len(matches), counts[reconcile.Missing], counts[reconcile.Identical], counts[reconcile.Drifted])
			return nil
		},
	}

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "List the issues sync would create",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadManager(true)
			if err != nil {
				return err
			}
			missing, err := m.Plan(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, li := range missing {
				fmt.Fprintf(out, "would create: %s %v\n", li.Title, li.Labels)
			}
			fmt.Fprintf(out, "%d issue(s) to create\n", len(missing))
			return nil
		},
	}

	var dryRun bool
	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Create every missing issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadManager(true)
			if err != nil {
				return err
			}
			created, err := m.Sync(cmd.Context(), dryRun)
			out := cmd.OutOrStdout()
			for _, c := range created {
				if dryRun {
					fmt.Fprintf(out, "would create: %s %v\n", c.Issue.Title, c.Issue.Labels)
				} else {
					fmt.Fprintf(out, "created #%d: %s\n", c.Number, c.Issue.Title)
				}
			}
			if err != nil {
				return err
			}
			verb := "created"
			if dryRun {
				verb = "to create"
			}
			fmt.Fprintf(out, "%d issue(s) %s\n", len(created), verb)
			return nil
		},
	}
	syncCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the issues without creating them")

	labelsCmd := &cobra.Command{
		Use:   "labels",
		Short: "Manage the repository label palette",
	}
	labelsSyncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Create the configured labels missing on the repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadManager(true)
			if err != nil {
				return err
			}
			created, err := m.SyncLabels(cmd.Context())
			out := cmd.OutOrStdout()
			for _, name := range created {
				fmt.Fprintf(out, "created label %q\n", name)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d label(s) created\n", len(created))
			return nil
		},
	}
	var yesLabels bool
	labelsResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every label on the repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yesLabels {
				return errNeedsYes
			}
			m, err := a.loadManager(true)
			if err != nil {
				return err
			}
			deleted, err := m.ResetLabels(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d label(s) deleted\n", len(deleted))
			return nil
		},
	}
	labelsResetCmd.Flags().BoolVar(&yesLabels, "yes", false, "confirm deleting every label")
	labelsCmd.AddCommand(labelsSyncCmd, labelsResetCmd)

	var yesClose bool
	closeAllCmd := &cobra.Command{
		Use:   "close-all",
		Short: "Close every open issue on the repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yesClose {
				return errNeedsYes
			}
			m, err := a.loadManager(true)
			if err != nil {
				return err
			}
			closed, err := m.CloseAll(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d issue(s) closed\n", len(closed))
			return nil
		},
	}
	closeAllCmd.Flags().BoolVar(&yesClose, "yes", false, "confirm closing every open issue")

	cmd.AddCommand(statusCmd, planCmd, syncCmd, labelsCmd, closeAllCmd)
	return cmd
}
