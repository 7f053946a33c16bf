// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/yatm/internal/testutil"
	"github.com/mesh-intelligence/yatm/pkg/tracker"
	"github.com/mesh-intelligence/yatm/pkg/yatm"
)

// execute runs args against a fresh command tree wired to tr and
// returns stdout.
func execute(t *testing.T, tr *testutil.Tracker, args ...string) (string, error) {
	t.Helper()
	a := newApp()
	a.newLogger = func(bool) (*zap.Logger, error) { return zap.NewNop(), nil }
	a.newTracker = func(yatm.Config, *zap.Logger) yatm.Tracker { return tr }

	var stdout, stderr bytes.Buffer
	err := run(a.rootCommand("test"), args, &stdout, &stderr)
	if err != nil {
		assert.Contains(t, stderr.String(), "Error:")
	}
	return stdout.String(), err
}

func workspace(t *testing.T) string {
	t.Helper()
	return testutil.WriteWorkspace(t, testutil.WorkspaceConfig, testutil.BootShutdownRequirements, testutil.OSBuilders)
}

func TestInitThenValidate(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "ws")

	out, err := execute(t, nil, "init", "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized workspace in "+dir)

	out, err = execute(t, nil, "--config", dir, "requirements", "validate")
	require.NoError(t, err)
	assert.Equal(t, "1 requirement(s) are valid\n", out)

	out, err = execute(t, nil, "--config", dir, "test-cases", "validate")
	require.NoError(t, err)
	assert.Equal(t, "1 test cases builder(s) are valid\n", out)

	_, err = execute(t, nil, "init", "--path", dir)
	assert.Error(t, err, "init must refuse a non-empty directory")
}

func TestRequirementsCommands(t *testing.T) {
	t.Parallel()
	dir := workspace(t)

	out, err := execute(t, nil, "-c", dir, "requirements", "list")
	require.NoError(t, err)
	assert.Equal(t, "Boot test (boot) [core]\nShutdown test [core]\n", out)

	out, err = execute(t, nil, "-c", dir, "requirements", "new", "--name", "extra")
	require.NoError(t, err)
	created := filepath.Join(dir, "requirements", "extra.yaml")
	assert.Contains(t, out, created)

	out, err = execute(t, nil, "-c", dir, "requirements", "validate-file", created)
	require.NoError(t, err)
	assert.Contains(t, out, "1 requirement(s) are valid")

	bad := testutil.WriteFile(t, dir, "bad.yaml", "requirements:\n  - description: no name\n")
	_, err = execute(t, nil, "requirements", "validate-file", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestTestCasesListAndPreview(t *testing.T) {
	t.Parallel()
	dir := workspace(t)

	out, err := execute(t, nil, "-c", dir, "test-cases", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Boot test [release, core, requirement: boot, OS: Linux, version: 1.0]", lines[0])
	assert.Equal(t, "4 test case(s)", lines[4])

	out, err = execute(t, nil, "-c", dir, "test-cases", "preview")
	require.NoError(t, err)
	path := filepath.Join(dir, "generated", previewFileName)
	assert.Contains(t, out, "Wrote 4 test case(s) to "+path)
	doc, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(doc), "# Test cases\n\n- [Boot test](#boot-test)\n"))
}

func TestGithubSyncFlow(t *testing.T) {
	t.Parallel()
	dir := workspace(t)
	tr := &testutil.Tracker{}

	out, err := execute(t, tr, "-c", dir, "github", "sync", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "4 issue(s) to create")
	assert.Empty(t, tr.Issues())

	out, err = execute(t, tr, "-c", dir, "github", "sync")
	require.NoError(t, err)
	assert.Contains(t, out, "created #1: Boot test")
	assert.Contains(t, out, "4 issue(s) created")

	out, err = execute(t, tr, "-c", dir, "github", "plan")
	require.NoError(t, err)
	assert.Equal(t, "0 issue(s) to create\n", out)

	out, err = execute(t, tr, "-c", dir, "github", "status")
	require.NoError(t, err)
	assert.Equal(t, "4 test case(s): 0 missing, 4 identical, 0 drifted\n", out)

	out, err = execute(t, tr, "-c", dir, "github", "close-all", "--yes")
	require.NoError(t, err)
	assert.Equal(t, "4 issue(s) closed\n", out)

	out, err = execute(t, tr, "-c", dir, "github", "plan")
	require.NoError(t, err)
	assert.Equal(t, "0 issue(s) to create\n", out, "closed issues still count as filed")
}

func TestGithubLabels(t *testing.T) {
	t.Parallel()
	dir := workspace(t)
	tr := &testutil.Tracker{}
	tr.SeedLabels(tracker.Label{Name: "confirmed: bug", Color: "dcacf2"})

	out, err := execute(t, tr, "-c", dir, "github", "labels", "sync")
	require.NoError(t, err)
	assert.Equal(t, "created label \"who: core team tested\"\n1 label(s) created\n", out)

	_, err = execute(t, tr, "-c", dir, "github", "labels", "reset")
	assert.ErrorIs(t, err, errNeedsYes)
	assert.Len(t, tr.Labels(), 2)

	out, err = execute(t, tr, "-c", dir, "github", "labels", "reset", "--yes")
	require.NoError(t, err)
	assert.Equal(t, "2 label(s) deleted\n", out)
}

func TestGithubRequiresRepository(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "ws")
	_, err := execute(t, nil, "init", "--path", dir)
	require.NoError(t, err)

	_, err = execute(t, &testutil.Tracker{}, "-c", dir, "github", "plan")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repo_owner is not set")
}
