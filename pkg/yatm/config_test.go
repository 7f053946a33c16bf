// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package yatm

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestLoadConfig_ResolvesRelativeDirs(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeTemp(t, dir, ConfigFileName, `repo_owner: acme
repo_name: robots
workspace_version: "2.1"
requirements_dirs: [reqs, /abs/reqs]
test_cases_builders_dirs: [builders]
new_requirements_dir: reqs/new
generated_files_dir: out
labels:
  - {name: triage, color: ededed}
`)

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	abs, _ := filepath.Abs(dir)
	if cfg.Dir != abs {
		t.Errorf("Dir = %q, want %q", cfg.Dir, abs)
	}
	if cfg.Repo() != "acme/robots" {
		t.Errorf("Repo() = %q, want acme/robots", cfg.Repo())
	}
	if cfg.WorkspaceVersion != "2.1" {
		t.Errorf("WorkspaceVersion = %q, want 2.1", cfg.WorkspaceVersion)
	}
	wantReqs := []string{filepath.Join(abs, "reqs"), "/abs/reqs"}
	if len(cfg.RequirementsDirs) != 2 || cfg.RequirementsDirs[0] != wantReqs[0] || cfg.RequirementsDirs[1] != wantReqs[1] {
		t.Errorf("RequirementsDirs = %v, want %v", cfg.RequirementsDirs, wantReqs)
	}
	if got, want := cfg.NewRequirementsDir, filepath.Join(abs, "reqs", "new"); got != want {
		t.Errorf("NewRequirementsDir = %q, want %q", got, want)
	}
	if got, want := cfg.NewTestCasesBuilderDir, filepath.Join(abs, "builders"); got != want {
		t.Errorf("NewTestCasesBuilderDir = %q, want %q (defaults to first builders dir)", got, want)
	}
	if got, want := cfg.GeneratedFilesDir, filepath.Join(abs, "out"); got != want {
		t.Errorf("GeneratedFilesDir = %q, want %q", got, want)
	}
	if len(cfg.Labels) != 1 || cfg.Labels[0].Name != "triage" || cfg.Labels[0].Color != "ededed" {
		t.Errorf("Labels = %+v, want the single triage label", cfg.Labels)
	}
}

func TestLoadConfig_AcceptsFilePath(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeTemp(t, dir, "custom.yaml", "repo_owner: acme\nrepo_name: robots\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.WorkspaceVersion != defaultWorkspaceVersion {
		t.Errorf("WorkspaceVersion = %q, want default %q", cfg.WorkspaceVersion, defaultWorkspaceVersion)
	}
	if len(cfg.Labels) != len(DefaultLabels()) {
		t.Errorf("len(Labels) = %d, want default palette of %d", len(cfg.Labels), len(DefaultLabels()))
	}
	if got, want := cfg.RequirementsDirs[0], filepath.Join(cfg.Dir, defaultRequirementsDir); got != want {
		t.Errorf("RequirementsDirs[0] = %q, want %q", got, want)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, ConfigFileName, "repo_owner: acme\nrepo_name: robots\nworkspace_version: \"1.0\"\n")
	t.Setenv("YATM_WORKSPACE_VERSION", "9.9")
	t.Setenv("YATM_REPO_NAME", "drones")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.WorkspaceVersion != "9.9" {
		t.Errorf("WorkspaceVersion = %q, want 9.9 from environment", cfg.WorkspaceVersion)
	}
	if cfg.Repo() != "acme/drones" {
		t.Errorf("Repo() = %q, want acme/drones", cfg.Repo())
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatal("expected error for missing config")
		}
	})
	t.Run("directory without config", func(t *testing.T) {
		t.Parallel()
		if _, err := LoadConfig(t.TempDir()); err == nil {
			t.Fatal("expected error for directory without config.yaml")
		}
	})
	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeTemp(t, dir, ConfigFileName, "repo_owner: [unclosed\n")
		if _, err := LoadConfig(dir); err == nil {
			t.Fatal("expected parse error")
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()

	if cfg.YatmVersion != Version {
		t.Errorf("YatmVersion = %q, want %q", cfg.YatmVersion, Version)
	}
	if len(cfg.Labels) != 7 {
		t.Fatalf("len(Labels) = %d, want 7", len(cfg.Labels))
	}
	if cfg.Labels[0].Name != "needs attention: bug" || cfg.Labels[0].Color != "f0440a" {
		t.Errorf("Labels[0] = %+v", cfg.Labels[0])
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() on placeholder repo: want error")
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{RepoOwner: "acme", RepoName: "robots", Labels: []GithubLabel{{Name: "x", Color: "A0b1C2"}}}, false},
		{"missing owner", Config{RepoName: "robots"}, true},
		{"placeholder name", Config{RepoOwner: "acme", RepoName: placeholderRepoName}, true},
		{"bad color", Config{RepoOwner: "acme", RepoName: "robots", Labels: []GithubLabel{{Name: "x", Color: "#ff00"}}}, true},
		{"non hex color", Config{RepoOwner: "acme", RepoName: "robots", Labels: []GithubLabel{{Name: "x", Color: "zzzzzz"}}}, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
