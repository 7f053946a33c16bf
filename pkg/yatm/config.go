// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package yatm ties the catalog, synthesis, rendering and tracker
// packages together into the workspace workflow the CLI exposes.
package yatm

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ConfigFileName is the workspace configuration file at the workspace root.
const ConfigFileName = "config.yaml"

// EnvPrefix prefixes environment variables that override config keys,
// e.g. YATM_WORKSPACE_VERSION.
const EnvPrefix = "YATM"

// Config holds workspace settings. Directory fields are relative to the
// config file in the document; LoadConfig resolves them to absolute
// paths.
type Config struct {
	// RepoOwner and RepoName name the GitHub repository issues go to.
	RepoOwner string `yaml:"repo_owner" mapstructure:"repo_owner"`
	RepoName  string `yaml:"repo_name" mapstructure:"repo_name"`

	// WorkspaceVersion is stamped on every issue as "version: <v>".
	WorkspaceVersion string `yaml:"workspace_version" mapstructure:"workspace_version"`

	// YatmVersion is the tool release that created the workspace.
	YatmVersion string `yaml:"yatm_version" mapstructure:"yatm_version"`

	RequirementsDirs       []string `yaml:"requirements_dirs" mapstructure:"requirements_dirs"`
	TestCasesBuildersDirs  []string `yaml:"test_cases_builders_dirs" mapstructure:"test_cases_builders_dirs"`
	NewRequirementsDir     string   `yaml:"new_requirements_dir" mapstructure:"new_requirements_dir"`
	NewTestCasesBuilderDir string   `yaml:"new_test_cases_builder_dir" mapstructure:"new_test_cases_builder_dir"`

	// GeneratedFilesDir receives previews and other generated output.
	GeneratedFilesDir string `yaml:"generated_files_dir" mapstructure:"generated_files_dir"`

	// Labels is the triage palette created by `github labels sync`.
	Labels []GithubLabel `yaml:"labels" mapstructure:"labels"`

	// Dir is the directory holding the config file. Not serialized.
	Dir string `yaml:"-" mapstructure:"-"`
}

// GithubLabel is a repository label definition.
type GithubLabel struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Color       string `yaml:"color" mapstructure:"color"`
	Description string `yaml:"description,omitempty" mapstructure:"description"`
}

// Repo returns "owner/name".
func (c Config) Repo() string {
	return c.RepoOwner + "/" + c.RepoName
}

const (
	defaultRequirementsDir     = "requirements"
	defaultTestCasesBuilderDir = "test_cases_builders"
	defaultGeneratedFilesDir   = "generated_files"
	defaultWorkspaceVersion    = "0.0.1"
	placeholderRepoOwner       = "repo_owner"
	placeholderRepoName        = "repo_name"
)

// DefaultLabels is the triage palette written into new workspaces.
func DefaultLabels() []GithubLabel {
	return []GithubLabel{
		{Name: "needs attention: bug", Color: "f0440a", Description: "A bug has been found and needs to be confirmed"},
		{Name: "needs attention: bad instructions", Color: "f0440a", Description: "The issue instructions don't appear to be correct or complete"},
		{Name: "confirmed: bug", Color: "dcacf2", Description: "A bug was confirmed"},
		{Name: "confirmed: bad instructions", Color: "dcacf2", Description: "The issue instructions have been confirmed to be incorrect or incomplete"},
		{Name: "confirmed: works as expected", Color: "cef2ac", Description: "Works as expected"},
		{Name: "who: community tested", Color: "b1e8fd", Description: "A community member has tested this"},
		{Name: "who: core team tested", Color: "55d0db", Description: "A core team member has tested this"},
	}
}

// DefaultConfig returns the configuration written by InitWorkspace.
func DefaultConfig() Config {
	return Config{
		RepoOwner:              placeholderRepoOwner,
		RepoName:               placeholderRepoName,
		WorkspaceVersion:       defaultWorkspaceVersion,
		YatmVersion:            Version,
		RequirementsDirs:       []string{defaultRequirementsDir},
		TestCasesBuildersDirs:  []string{defaultTestCasesBuilderDir},
		NewRequirementsDir:     defaultRequirementsDir,
		NewTestCasesBuilderDir: defaultTestCasesBuilderDir,
		GeneratedFilesDir:      defaultGeneratedFilesDir,
		Labels:                 DefaultLabels(),
	}
}

func (c *Config) applyDefaults() {
	if c.WorkspaceVersion == "" {
		c.WorkspaceVersion = defaultWorkspaceVersion
	}
	if len(c.RequirementsDirs) == 0 {
		c.RequirementsDirs = []string{defaultRequirementsDir}
	}
	if len(c.TestCasesBuildersDirs) == 0 {
		c.TestCasesBuildersDirs = []string{defaultTestCasesBuilderDir}
	}
	if c.NewRequirementsDir == "" {
		c.NewRequirementsDir = c.RequirementsDirs[0]
	}
	if c.NewTestCasesBuilderDir == "" {
		c.NewTestCasesBuilderDir = c.TestCasesBuildersDirs[0]
	}
	if c.GeneratedFilesDir == "" {
		c.GeneratedFilesDir = defaultGeneratedFilesDir
	}
	if len(c.Labels) == 0 {
		c.Labels = DefaultLabels()
	}
}

// resolve makes every directory absolute against c.Dir.
func (c *Config) resolve() {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(c.Dir, p)
	}
	for i, d := range c.RequirementsDirs {
		c.RequirementsDirs[i] = abs(d)
	}
	for i, d := range c.TestCasesBuildersDirs {
		c.TestCasesBuildersDirs[i] = abs(d)
	}
	c.NewRequirementsDir = abs(c.NewRequirementsDir)
	c.NewTestCasesBuilderDir = abs(c.NewTestCasesBuilderDir)
	c.GeneratedFilesDir = abs(c.GeneratedFilesDir)
}

// Validate reports settings the GitHub commands cannot work without.
func (c Config) Validate() error {
	var errs []error
	if c.RepoOwner == "" || c.RepoOwner == placeholderRepoOwner {
		errs = append(errs, errors.New("repo_owner is not set"))
	}
	if c.RepoName == "" || c.RepoName == placeholderRepoName {
		errs = append(errs, errors.New("repo_name is not set"))
	}
	for _, l := range c.Labels {
		if len(l.Color) != 6 || strings.Trim(strings.ToLower(l.Color), "0123456789abcdef") != "" {
			errs = append(errs, fmt.Errorf("label %q: color %q is not six hex digits", l.Name, l.Color))
		}
	}
	return errors.Join(errs...)
}

// LoadConfig reads the workspace configuration. path is either the
// config file or the workspace directory containing config.yaml.
// Environment variables prefixed YATM_ override scalar and list keys.
func LoadConfig(path string) (Config, error) {
	file := path
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		file = filepath.Join(path, ConfigFileName)
	}
	if _, err := os.Stat(file); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(file)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	// Register every key so environment overrides apply even when the
	// file omits it.
	for _, key := range []string{
		"repo_owner", "repo_name", "workspace_version", "yatm_version",
		"requirements_dirs", "test_cases_builders_dirs",
		"new_requirements_dir", "new_test_cases_builder_dir", "generated_files_dir",
	} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	dir, err := filepath.Abs(filepath.Dir(file))
	if err != nil {
		return Config{}, fmt.Errorf("resolving config directory: %w", err)
	}
	cfg.Dir = dir
	cfg.applyDefaults()
	cfg.resolve()
	return cfg, nil
}
