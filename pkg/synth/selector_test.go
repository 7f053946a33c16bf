// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package synth

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mesh-intelligence/yatm/pkg/catalog"
)

func TestMatches(t *testing.T) {
	t.Parallel()

	labelled := catalog.Requirement{Name: "name1", Labels: []string{"label1", "label2"}}
	bare := catalog.Requirement{Name: "Name1"}

	tests := []struct {
		name   string
		filter catalog.Filter
		req    catalog.Requirement
		want   bool
	}{
		{"all labels present", catalog.Filter{AllLabels: []string{"label1"}}, labelled, true},
		{"all labels present negated", catalog.Filter{AllLabels: []string{"label1"}, Negate: true}, labelled, false},
		{"label missing", catalog.Filter{AllLabels: []string{"label1", "label3"}}, labelled, false},
		{"label missing negated", catalog.Filter{AllLabels: []string{"label3"}, Negate: true}, labelled, true},
		{"no labels never satisfies all labels", catalog.Filter{AllLabels: []string{"label1"}}, bare, false},
		{"empty all labels is vacuous", catalog.Filter{AllLabels: []string{}}, bare, true},
		{"absent filter matches", catalog.Filter{}, bare, true},
		{"absent filter negated never matches", catalog.Filter{Negate: true}, bare, false},
		{"name substring case-insensitive", catalog.Filter{AnyNames: []string{"AME"}}, labelled, true},
		{"name any of several", catalog.Filter{AnyNames: []string{"zzz", "name"}}, bare, true},
		{"name not found", catalog.Filter{AnyNames: []string{"other"}}, labelled, false},
		{"empty any names matches nothing", catalog.Filter{AnyNames: []string{}}, labelled, false},
		{"labels and names both required", catalog.Filter{AllLabels: []string{"label2"}, AnyNames: []string{"other"}}, labelled, false},
		{"labels and names both hold", catalog.Filter{AllLabels: []string{"label2"}, AnyNames: []string{"1"}}, labelled, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Matches(tc.filter, tc.req); got != tc.want {
				t.Errorf("Matches() = %v, want %v", got, tc.want)
			}
		})
	}
}

func names(reqs []catalog.Requirement) []string {
	out := make([]string, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, r.Name)
	}
	return out
}

func TestSelect(t *testing.T) {
	t.Parallel()

	reqs := []catalog.Requirement{
		{Name: "name1", Labels: []string{"a"}},
		{Name: "name2", Labels: []string{"a", "b"}},
		{Name: "other", Labels: []string{"b"}},
	}

	tests := []struct {
		name  string
		steps catalog.SetSteps
		want  []string
	}{
		{
			name:  "empty chain selects nothing",
			steps: nil,
			want:  []string{},
		},
		{
			name:  "include all",
			steps: catalog.SetSteps{catalog.Include{}},
			want:  []string{"name1", "name2", "other"},
		},
		{
			name:  "exclude on empty accumulator then include re-adds",
			steps: catalog.SetSteps{catalog.Exclude{AnyNames: []string{"name1"}}, catalog.Include{}},
			want:  []string{"name1", "name2", "other"},
		},
		{
			name:  "include then exclude narrows",
			steps: catalog.SetSteps{catalog.Include{AllLabels: []string{"a"}}, catalog.Exclude{AllLabels: []string{"b"}}},
			want:  []string{"name1"},
		},
		{
			name: "later include re-adds excluded item",
			steps: catalog.SetSteps{
				catalog.Include{},
				catalog.Exclude{AnyNames: []string{"name"}},
				catalog.Include{AnyNames: []string{"name2"}},
			},
			want: []string{"other", "name2"},
		},
		{
			name:  "include twice does not duplicate",
			steps: catalog.SetSteps{catalog.Include{AllLabels: []string{"b"}}, catalog.Include{}},
			want:  []string{"name2", "other", "name1"},
		},
		{
			name:  "negated exclude keeps matches",
			steps: catalog.SetSteps{catalog.Include{}, catalog.Exclude{AllLabels: []string{"b"}, Negate: true}},
			want:  []string{"name2", "other"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := names(Select(reqs, tc.steps))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Select() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelect_EqualRecordsAreDistinct(t *testing.T) {
	t.Parallel()
	reqs := []catalog.Requirement{{Name: "same"}, {Name: "same"}}

	got := Select(reqs, catalog.SetSteps{catalog.Include{}})
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestSelect_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	reqs := []catalog.Requirement{{Name: "a"}, {Name: "b"}}
	before := names(reqs)

	Select(reqs, catalog.SetSteps{catalog.Include{}, catalog.Exclude{AnyNames: []string{"a"}}})

	if diff := cmp.Diff(before, names(reqs)); diff != "" {
		t.Errorf("input changed (-before +after):\n%s", diff)
	}
}
