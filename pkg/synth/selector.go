// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package synth

import (
	"strings"

	"github.com/mesh-intelligence/yatm/pkg/catalog"
)

// Matches reports whether f selects r.
//
// The label constraint holds when AllLabels is nil or every entry is on
// r. The name constraint holds when AnyNames is nil or some entry is a
// case-insensitive substring of r.Name. Negate flips the conjunction.
func Matches(f catalog.Filter, r catalog.Requirement) bool {
	return f.Negate != (labelsOK(f.AllLabels, r) && namesOK(f.AnyNames, r.Name))
}

func labelsOK(want []string, r catalog.Requirement) bool {
	if want == nil {
		return true
	}
	if len(want) > 0 && len(r.Labels) == 0 {
		return false
	}
	for _, l := range want {
		if !r.HasLabel(l) {
			return false
		}
	}
	return true
}

func namesOK(names []string, name string) bool {
	if names == nil {
		return true
	}
	lower := strings.ToLower(name)
	for _, n := range names {
		if strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// Select folds steps over an initially empty selection. Include scans all
// of reqs and appends matches not yet selected; Exclude removes matches
// from the current selection. An empty chain selects nothing.
//
// Requirements are identified by their position in reqs, so two records
// with equal content are still distinct.
func Select(reqs []catalog.Requirement, steps []catalog.SetStep) []catalog.Requirement {
	var selected []int
	in := make(map[int]bool, len(reqs))

	for _, step := range steps {
		f := step.StepFilter()
		switch step.(type) {
		case catalog.Include:
			for i, r := range reqs {
				if !in[i] && Matches(f, r) {
					in[i] = true
					selected = append(selected, i)
				}
			}
		case catalog.Exclude:
			kept := selected[:0]
			for _, i := range selected {
				if Matches(f, reqs[i]) {
					delete(in, i)
					continue
				}
				kept = append(kept, i)
			}
			selected = kept
		}
	}

	out := make([]catalog.Requirement, 0, len(selected))
	for _, i := range selected {
		out = append(out, reqs[i])
	}
	return out
}
