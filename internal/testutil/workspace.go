// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WorkspaceConfig is a minimal config.yaml pointing at the fixture
// directories WriteWorkspace creates.
const WorkspaceConfig = `repo_owner: acme
repo_name: robots
workspace_version: "1.0"
requirements_dirs: [requirements]
test_cases_builders_dirs: [builders]
generated_files_dir: generated
labels:
  - name: "confirmed: bug"
    color: dcacf2
    description: A bug was confirmed
  - name: "who: core team tested"
    color: 55d0db
`

// BootShutdownRequirements holds two core requirements, one with a
// shortname.
const BootShutdownRequirements = `requirements:
  - name: Boot test
    shortname: boot
    description: The robot boots on {permutation.OS}.
    labels: [core]
    steps:
      - action:
          - StdIn: {terminal: 1, text: robot start}
        expect:
          - StdOut: {terminal: 1, text: ready}
  - name: Shutdown test
    description: The robot shuts down.
    labels: [core]
    steps:
      - action:
          - Describe: Press the power button
        expect:
          - Describe: The robot powers off
`

// OSBuilders crosses every core requirement with two operating systems.
const OSBuilders = `test_cases_builders:
  - name: Core on every OS
    description: Core checks per platform
    labels: [release]
    set:
      - Include: {all_labels: [core]}
    permutations:
      OS: [Linux, Windows]
`

// CoreBuilders labels its test cases with a label the core requirements
// carry too, so every rendered issue repeats it.
const CoreBuilders = `test_cases_builders:
  - name: Core regression
    description: Core checks tagged core again
    labels: [core]
    set:
      - Include: {all_labels: [core]}
    permutations:
      OS: [Linux]
`

// WriteWorkspace writes config.yaml plus one requirements file and one
// builders file into a fresh temp directory and returns it.
func WriteWorkspace(t testing.TB, config, requirements, builders string) string {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, "config.yaml", config)
	WriteFile(t, dir, filepath.Join("requirements", "requirements.yaml"), requirements)
	WriteFile(t, dir, filepath.Join("builders", "builders.yaml"), builders)
	if err := os.MkdirAll(filepath.Join(dir, "generated"), 0o755); err != nil {
		t.Fatalf("WriteWorkspace: %v", err)
	}
	return dir
}

// WriteFile writes content to dir/name, creating parent directories.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}
