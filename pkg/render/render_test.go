// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/yatm/pkg/catalog"
	"github.com/mesh-intelligence/yatm/pkg/synth"
)

func bootCase() synth.TestCase {
	return synth.TestCase{
		Requirement: catalog.Requirement{
			Name:        "Boot test",
			Shortname:   "boot",
			Description: "Boot on {permutation.OS}.",
			Labels:      []string{"core"},
			Links:       []catalog.Link{{Name: "Docs", URL: "https://example.com"}},
			Steps: []catalog.Step{{
				Action: catalog.Actions{
					catalog.Describe("Power on"),
					catalog.StdIn{Terminal: 1, Text: "boot --os {permutation.OS}"},
				},
				Expect: catalog.Expects{
					catalog.StdOut{Terminal: 1, Text: "ready"},
					catalog.Image("https://example.com/ok.png"),
				},
			}},
		},
		Builder:     catalog.Builder{Name: "platforms", Labels: []string{"release"}},
		Permutation: synth.Permutation{"OS": "Linux", "Arch": "arm64"},
	}
}

func TestRender_Body(t *testing.T) {
	t.Parallel()

	li, err := Render(bootCase(), "2.0")
	require.NoError(t, err)

	assert.Equal(t, "Boot test", li.Title)
	assert.Equal(t, []string{"release", "core", "requirement: boot", "Arch: arm64", "OS: Linux", "version: 2.0"}, li.Labels)

	want := "## Description\n\n" +
		"Boot on Linux.\n\n" +
		"## Permutation\n\n" +
		"| Dimension | Value |\n" +
		"| --- | --- |\n" +
		"| Arch | arm64 |\n" +
		"| OS | Linux |\n\n" +
		"## Steps\n\n" +
		"### Step 1\n\n" +
		"#### Action\n\n" +
		"Power on\n\n" +
		"Run (terminal 1):\n\n```bash\nboot --os Linux\n```\n\n" +
		"#### Expect\n\n" +
		"Output (terminal 1):\n\n```bash\nready\n```\n\n" +
		"![image](https://example.com/ok.png)\n\n" +
		"## Links\n\n" +
		"- [Docs](https://example.com)\n"
	if diff := cmp.Diff(want, li.Body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_PermutationTableThreshold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		minimum int
		want    bool
	}{
		{"default shows table", 0, true},
		{"below dimension count shows table", 1, true},
		{"equal to dimension count hides table", 2, false},
		{"above dimension count hides table", 5, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := bootCase()
			c.Builder.MinimumPermutationsToRender = tc.minimum
			body, err := Body(c)
			require.NoError(t, err)
			assert.Equal(t, tc.want, strings.Contains(body, "## Permutation"))
		})
	}
}

func TestRender_UnknownPlaceholder(t *testing.T) {
	t.Parallel()
	c := bootCase()
	c.Requirement.Steps[0].Action = append(c.Requirement.Steps[0].Action, catalog.Describe("Use {permutation.RMW}"))

	_, err := Render(c, "1")

	var re *RenderError
	require.True(t, errors.As(err, &re), "want RenderError, got %v", err)
	assert.Equal(t, "Boot test", re.Requirement)
	assert.Equal(t, "platforms", re.Builder)
	assert.Contains(t, err.Error(), `unknown permutation dimension "RMW"`)
}

func TestRender_LinksExpandPlaceholders(t *testing.T) {
	t.Parallel()
	c := bootCase()
	c.Requirement.Links = []catalog.Link{{Name: "{permutation.OS} notes", URL: "https://example.com/{permutation.Arch}"}}

	body, err := Body(c)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(body, "## Links\n\n- [Linux notes](https://example.com/arm64)\n"), body)

	c.Requirement.Links = []catalog.Link{{Name: "Release", URL: "https://example.com/{permutation.Release}"}}
	_, err = Body(c)
	assert.ErrorContains(t, err, `unknown permutation dimension "Release"`)
}

func TestRender_NoStepsNoLinks(t *testing.T) {
	t.Parallel()
	c := synth.TestCase{
		Requirement: catalog.Requirement{Name: "Bare", Description: "Nothing to do."},
		Permutation: synth.Permutation{},
	}

	body, err := Body(c)
	require.NoError(t, err)
	assert.Equal(t, "## Description\n\nNothing to do.\n\n## Steps\n", body)
}

func TestRenderAll_KeepsOrderAndJoinsErrors(t *testing.T) {
	t.Parallel()

	var cases []synth.TestCase
	for _, os := range []string{"Linux", "Windows", "MacOS", "FreeBSD"} {
		c := bootCase()
		c.Permutation = synth.Permutation{"OS": os}
		cases = append(cases, c)
	}
	bad := bootCase()
	bad.Requirement.Name = "Broken"
	bad.Permutation = synth.Permutation{}
	cases = append(cases[:2], append([]synth.TestCase{bad}, cases[2:]...)...)

	got, err := RenderAll(context.Background(), cases, "1", 2)
	require.Error(t, err)
	var re *RenderError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "Broken", re.Requirement)

	require.Len(t, got, 4)
	for i, want := range []string{"OS: Linux", "OS: Windows", "OS: MacOS", "OS: FreeBSD"} {
		assert.Contains(t, got[i].Labels, want, "issue %d", i)
	}
}

func TestRenderAll_Canceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RenderAll(ctx, []synth.TestCase{bootCase()}, "1", 1)
	assert.ErrorIs(t, err, context.Canceled)
}
