// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cli implements the yatm command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/yatm/pkg/tracker"
	"github.com/mesh-intelligence/yatm/pkg/yatm"
)

// app carries global flags and the collaborators commands share.
type app struct {
	configPath string
	verbose    bool

	log *zap.Logger

	// newLogger and newTracker are replaced in tests.
	newLogger  func(verbose bool) (*zap.Logger, error)
	newTracker func(cfg yatm.Config, log *zap.Logger) yatm.Tracker
}

func productionLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func ghTracker(cfg yatm.Config, log *zap.Logger) yatm.Tracker {
	return tracker.New(cfg.Repo(), tracker.WithLogger(log))
}

func newApp() *app {
	return &app{
		log:        zap.NewNop(),
		newLogger:  productionLogger,
		newTracker: ghTracker,
	}
}

// NewRootCommand returns the yatm command tree.
func NewRootCommand(version string) *cobra.Command {
	return newApp().rootCommand(version)
}

func (a *app) rootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "yatm",
		Short: "Manage manual test requirements and their GitHub issues",
		Long: `yatm keeps a catalog of manual test requirements, expands them into
test cases across permutations such as operating systems, and files the
test cases on GitHub as issues without creating duplicates.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.log = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", ".", "workspace directory or config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.initCommand(),
		a.requirementsCommand(),
		a.testCasesCommand(),
		a.githubCommand(),
	)
	return root
}

// loadManager reads the workspace configuration and builds a Manager.
// withTracker also validates the repository settings and attaches the
// GitHub tracker.
func (a *app) loadManager(withTracker bool) (*yatm.Manager, error) {
	cfg, err := yatm.LoadConfig(a.configPath)
	if err != nil {
		return nil, err
	}
	opts := []yatm.ManagerOption{yatm.WithLogger(a.log)}
	if withTracker {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration %s: %w", cfg.Dir, err)
		}
		opts = append(opts, yatm.WithTracker(a.newTracker(cfg, a.log)))
	}
	return yatm.NewManager(cfg, opts...), nil
}

// Execute runs the command tree against os.Args and reports a failure
// on stderr.
func Execute(version string) error {
	return run(NewRootCommand(version), os.Args[1:], os.Stdout, os.Stderr)
}

func run(root *cobra.Command, args []string, stdout, stderr io.Writer) error {
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return err
	}
	return nil
}
