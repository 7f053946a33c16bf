// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Builder describes how to expand requirements into test cases: Set
// selects requirements, Permutations names the dimensions every selected
// requirement is crossed with, and Labels is applied to every test case
// the builder produces.
type Builder struct {
	Name         string              `yaml:"name"`
	Description  string              `yaml:"description"`
	Set          SetSteps            `yaml:"set"`
	Labels       []string            `yaml:"labels,omitempty"`
	Permutations map[string][]string `yaml:"permutations"`

	// MinimumPermutationsToRender hides the permutation table in issue
	// bodies unless the selected permutation has more dimensions than this.
	MinimumPermutationsToRender int `yaml:"minimum_permutations_to_render,omitempty"`
}

// Filter is a predicate over requirements. A nil AllLabels or AnyNames
// means the constraint is absent. A non-nil empty AllLabels is vacuously
// satisfied; a non-nil empty AnyNames names nothing and never matches.
type Filter struct {
	// AllLabels must all be present on the requirement.
	AllLabels []string
	// AnyNames must contain at least one case-insensitive substring of
	// the requirement name.
	AnyNames []string
	// Negate inverts the combined result.
	Negate bool
}

// filterDoc is the YAML shape of a Filter. Pointers keep "absent" (null)
// distinct from "empty" ([]) on both decode and encode.
type filterDoc struct {
	AllLabels *[]string `yaml:"all_labels"`
	AnyNames  *[]string `yaml:"any_names"`
	Negate    bool      `yaml:"negate"`
}

var filterFields = []string{"all_labels", "any_names", "negate"}

// UnmarshalYAML decodes a filter, keeping absent and empty lists apart.
func (f *Filter) UnmarshalYAML(value *yaml.Node) error {
	var doc filterDoc
	if err := decodeFields(value, &doc, filterFields...); err != nil {
		return err
	}
	*f = Filter{Negate: doc.Negate}
	if doc.AllLabels != nil {
		f.AllLabels = append([]string{}, *doc.AllLabels...)
	}
	if doc.AnyNames != nil {
		f.AnyNames = append([]string{}, *doc.AnyNames...)
	}
	return nil
}

// MarshalYAML writes absent lists as null.
func (f Filter) MarshalYAML() (interface{}, error) {
	doc := filterDoc{Negate: f.Negate}
	if f.AllLabels != nil {
		l := f.AllLabels
		doc.AllLabels = &l
	}
	if f.AnyNames != nil {
		n := f.AnyNames
		doc.AnyNames = &n
	}
	return doc, nil
}

// SetStep is Include or Exclude. The interface is closed to other
// packages.
type SetStep interface {
	// StepFilter returns the step's filter.
	StepFilter() Filter
	isSetStep()
}

// Include adds every requirement of the full set that matches the filter.
type Include Filter

// Exclude drops every currently selected requirement that matches the filter.
type Exclude Filter

// StepFilter implements SetStep.
func (s Include) StepFilter() Filter { return Filter(s) }

// StepFilter implements SetStep.
func (s Exclude) StepFilter() Filter { return Filter(s) }

func (Include) isSetStep() {}
func (Exclude) isSetStep() {}

const (
	variantInclude = "Include"
	variantExclude = "Exclude"
)

// SetSteps is an ordered selection pipeline.
type SetSteps []SetStep

// UnmarshalYAML decodes a sequence of Include/Exclude variants.
func (ss *SetSteps) UnmarshalYAML(value *yaml.Node) error {
	items, err := decodeVariants(value, "set step")
	if err != nil {
		return err
	}
	out := make(SetSteps, 0, len(items))
	for i, it := range items {
		var f Filter
		if err := it.payload.Decode(&f); err != nil {
			return fmt.Errorf("set step %d (%s): %w", i, it.name, err)
		}
		switch it.name {
		case variantInclude:
			out = append(out, Include(f))
		case variantExclude:
			out = append(out, Exclude(f))
		default:
			return fmt.Errorf("set step %d: unknown variant %q (want Include or Exclude)", i, it.name)
		}
	}
	*ss = out
	return nil
}

// MarshalYAML encodes each step as a single-key mapping.
func (ss SetSteps) MarshalYAML() (interface{}, error) {
	out := make([]map[string]interface{}, 0, len(ss))
	for i, s := range ss {
		switch v := s.(type) {
		case Include:
			out = append(out, map[string]interface{}{variantInclude: Filter(v)})
		case Exclude:
			out = append(out, map[string]interface{}{variantExclude: Filter(v)})
		default:
			return nil, fmt.Errorf("set step %d: unsupported type %T", i, s)
		}
	}
	return out, nil
}
