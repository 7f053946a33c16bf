// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/yatm/pkg/render"
	"github.com/mesh-intelligence/yatm/pkg/yatm"
)

// previewFileName is written to the generated files directory.
const previewFileName = "test_cases_preview.md"

func (a *app) testCasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "test-cases",
		Aliases: []string{"tc"},
		Short:   "Create, validate, list and preview test cases",
	}

	var name string
	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Write a demo test cases builder file to the new builders directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := yatm.LoadConfig(a.configPath)
			if err != nil {
				return err
			}
			path, err := yatm.NewBuildersFile(cfg, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
	newCmd.Flags().StringVarP(&name, "name", "n", "", "file name (default test_cases_builder-<timestamp>.yaml)")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate every test cases builder in the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadManager(false)
			if err != nil {
				return err
			}
			builders, err := m.ValidateBuilders()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d test cases builder(s) are valid\n", len(builders))
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every test case with its labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadManager(false)
			if err != nil {
				return err
			}
			local, err := m.LocalIssues(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, li := range local {
				fmt.Fprintf(out, "%s [%s]\n", li.Title, strings.Join(li.Labels, ", "))
			}
			fmt.Fprintf(out, "%d test case(s)\n", len(local))
			return nil
		},
	}

	var (
		show  bool
		width int
	)
	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "Render every test case into one Markdown document",
		Long: "Render every test case into " + previewFileName + " in the generated files directory.\n" +
			"With --show the document is also rendered to the terminal.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadManager(false)
			if err != nil {
				return err
			}
			local, err := m.LocalIssues(cmd.Context())
			if err != nil {
				return err
			}
			doc := render.Document("Test cases", local)

			dir := m.Config().GeneratedFilesDir
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", dir, err)
			}
			path := filepath.Join(dir, previewFileName)
			if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			out := cmd.OutOrStdout()
			if show {
				styled, err := render.Preview(doc, width)
				if err != nil {
					return err
				}
				fmt.Fprint(out, styled)
			}
			fmt.Fprintf(out, "Wrote %d test case(s) to %s\n", len(local), path)
			return nil
		},
	}
	previewCmd.Flags().BoolVar(&show, "show", false, "also render the document to the terminal")
	previewCmd.Flags().IntVar(&width, "width", 100, "terminal width for --show")

	cmd.AddCommand(newCmd, validateCmd, listCmd, previewCmd)
	return cmd
}
