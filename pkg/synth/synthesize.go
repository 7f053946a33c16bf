// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package synth

import (
	"fmt"

	"github.com/mesh-intelligence/yatm/pkg/catalog"
)

// TestCase is one requirement run under one permutation of one builder.
type TestCase struct {
	Requirement catalog.Requirement
	Builder     catalog.Builder
	Permutation Permutation
}

// Synthesize expands every builder in order and concatenates the
// results. Within a builder, requirements are the outer loop and
// permutations the inner loop.
func Synthesize(builders []catalog.Builder, reqs []catalog.Requirement) []TestCase {
	var out []TestCase
	for _, b := range builders {
		out = append(out, ForBuilder(b, reqs)...)
	}
	return out
}

// ForBuilder returns the test cases a single builder produces.
func ForBuilder(b catalog.Builder, reqs []catalog.Requirement) []TestCase {
	perms := Expand(b.Permutations)
	selected := Select(reqs, b.Set)
	out := make([]TestCase, 0, len(perms)*len(selected))
	for _, r := range selected {
		for _, p := range perms {
			out = append(out, TestCase{Requirement: r, Builder: b, Permutation: p})
		}
	}
	return out
}

// Labels returns the labels for tc's issue: builder labels, requirement
// labels, the requirement label, the sorted permutation labels, then the
// version label. Repeats are kept.
func Labels(tc TestCase, workspaceVersion string) []string {
	perm := tc.Permutation.Labels()
	out := make([]string, 0, len(tc.Builder.Labels)+len(tc.Requirement.Labels)+len(perm)+2)
	out = append(out, tc.Builder.Labels...)
	out = append(out, tc.Requirement.Labels...)
	out = append(out, RequirementLabel(tc.Requirement))
	out = append(out, perm...)
	out = append(out, VersionLabel(workspaceVersion))
	return out
}

// RequirementLabel is the machine label naming r.
func RequirementLabel(r catalog.Requirement) string {
	return fmt.Sprintf("requirement: %s", r.LabelName())
}

// VersionLabel is the label naming the workspace version.
func VersionLabel(version string) string {
	return fmt.Sprintf("version: %s", version)
}
