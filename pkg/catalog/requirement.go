// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Requirement is a named manual test procedure. Name is the human
// identifier and becomes the issue title, so it must be unique within a
// workspace.
type Requirement struct {
	Name        string   `yaml:"name"`
	Shortname   string   `yaml:"shortname,omitempty"`
	Description string   `yaml:"description"`
	Steps       []Step   `yaml:"steps"`
	Labels      []string `yaml:"labels,omitempty"`
	Links       []Link   `yaml:"links,omitempty"`
}

// LabelName returns the shortname when set, otherwise the name.
func (r Requirement) LabelName() string {
	if r.Shortname != "" {
		return r.Shortname
	}
	return r.Name
}

// HasLabel reports whether the requirement carries label.
func (r Requirement) HasLabel(label string) bool {
	for _, l := range r.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// Step is one action/expectation pair. Order inside Action and Expect is
// kept verbatim in rendered output.
type Step struct {
	Action Actions `yaml:"action"`
	Expect Expects `yaml:"expect"`
}

// Link is a named URL.
type Link struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// TerminalText is text typed into or printed by a numbered terminal.
type TerminalText struct {
	Terminal int    `yaml:"terminal"`
	Text     string `yaml:"text"`
}

// Action is one of StdIn, Image, Describe or URL.
type Action interface {
	isAction()
}

// Expect is one of StdOut, StdErr, Image, Describe or URL.
type Expect interface {
	isExpect()
}

type (
	// StdIn is input typed into a terminal.
	StdIn TerminalText
	// StdOut is output expected on a terminal's standard output.
	StdOut TerminalText
	// StdErr is output expected on a terminal's standard error.
	StdErr TerminalText
	// Image is an image URL.
	Image string
	// Describe is free text.
	Describe string
	// URL is a link shown to the tester.
	URL Link
)

func (StdIn) isAction()    {}
func (Image) isAction()    {}
func (Describe) isAction() {}
func (URL) isAction()      {}

func (StdOut) isExpect()   {}
func (StdErr) isExpect()   {}
func (Image) isExpect()    {}
func (Describe) isExpect() {}
func (URL) isExpect()      {}

// Variant names used in YAML documents.
const (
	variantStdIn    = "StdIn"
	variantStdOut   = "StdOut"
	variantStdErr   = "StdErr"
	variantImage    = "Image"
	variantDescribe = "Describe"
	variantURL      = "Url"
)

// Actions is an ordered list of step actions. In YAML each element is a
// single-key mapping naming the variant, e.g. `- StdIn: {terminal: 1,
// text: ls}`, or a tagged value such as `- !Describe Open a shell`.
type Actions []Action

// UnmarshalYAML decodes a sequence of action variants.
func (as *Actions) UnmarshalYAML(value *yaml.Node) error {
	items, err := decodeVariants(value, "action")
	if err != nil {
		return err
	}
	out := make(Actions, 0, len(items))
	for i, it := range items {
		var a Action
		switch it.name {
		case variantStdIn:
			var t TerminalText
			err = decodeFields(it.payload, &t, terminalFields...)
			a = StdIn(t)
		case variantImage:
			var s string
			err = it.payload.Decode(&s)
			a = Image(s)
		case variantDescribe:
			var s string
			err = it.payload.Decode(&s)
			a = Describe(s)
		case variantURL:
			var l Link
			err = decodeFields(it.payload, &l, linkFields...)
			a = URL(l)
		default:
			return fmt.Errorf("action %d: unknown variant %q (want StdIn, Image, Describe or Url)", i, it.name)
		}
		if err != nil {
			return fmt.Errorf("action %d (%s): %w", i, it.name, err)
		}
		out = append(out, a)
	}
	*as = out
	return nil
}

// MarshalYAML encodes each action as a single-key mapping.
func (as Actions) MarshalYAML() (interface{}, error) {
	out := make([]map[string]interface{}, 0, len(as))
	for i, a := range as {
		switch v := a.(type) {
		case StdIn:
			out = append(out, map[string]interface{}{variantStdIn: TerminalText(v)})
		case Image:
			out = append(out, map[string]interface{}{variantImage: string(v)})
		case Describe:
			out = append(out, map[string]interface{}{variantDescribe: string(v)})
		case URL:
			out = append(out, map[string]interface{}{variantURL: Link(v)})
		default:
			return nil, fmt.Errorf("action %d: unsupported type %T", i, a)
		}
	}
	return out, nil
}

// Expects is an ordered list of step expectations, encoded like Actions.
type Expects []Expect

// UnmarshalYAML decodes a sequence of expect variants.
func (es *Expects) UnmarshalYAML(value *yaml.Node) error {
	items, err := decodeVariants(value, "expect")
	if err != nil {
		return err
	}
	out := make(Expects, 0, len(items))
	for i, it := range items {
		var e Expect
		switch it.name {
		case variantStdOut:
			var t TerminalText
			err = decodeFields(it.payload, &t, terminalFields...)
			e = StdOut(t)
		case variantStdErr:
			var t TerminalText
			err = decodeFields(it.payload, &t, terminalFields...)
			e = StdErr(t)
		case variantImage:
			var s string
			err = it.payload.Decode(&s)
			e = Image(s)
		case variantDescribe:
			var s string
			err = it.payload.Decode(&s)
			e = Describe(s)
		case variantURL:
			var l Link
			err = decodeFields(it.payload, &l, linkFields...)
			e = URL(l)
		default:
			return fmt.Errorf("expect %d: unknown variant %q (want StdOut, StdErr, Image, Describe or Url)", i, it.name)
		}
		if err != nil {
			return fmt.Errorf("expect %d (%s): %w", i, it.name, err)
		}
		out = append(out, e)
	}
	*es = out
	return nil
}

// MarshalYAML encodes each expectation as a single-key mapping.
func (es Expects) MarshalYAML() (interface{}, error) {
	out := make([]map[string]interface{}, 0, len(es))
	for i, e := range es {
		switch v := e.(type) {
		case StdOut:
			out = append(out, map[string]interface{}{variantStdOut: TerminalText(v)})
		case StdErr:
			out = append(out, map[string]interface{}{variantStdErr: TerminalText(v)})
		case Image:
			out = append(out, map[string]interface{}{variantImage: string(v)})
		case Describe:
			out = append(out, map[string]interface{}{variantDescribe: string(v)})
		case URL:
			out = append(out, map[string]interface{}{variantURL: Link(v)})
		default:
			return nil, fmt.Errorf("expect %d: unsupported type %T", i, e)
		}
	}
	return out, nil
}

// Payload keys accepted by decodeFields.
var (
	terminalFields = []string{"terminal", "text"}
	linkFields     = []string{"name", "url"}
)

// decodeFields decodes a mapping payload into out after checking that
// every key is one of fields. Node.Decode ignores the document
// decoder's KnownFields setting, so unknown keys are caught here.
func decodeFields(value *yaml.Node, out interface{}, fields ...string) error {
	if value.Kind == yaml.MappingNode {
		for i := 0; i < len(value.Content); i += 2 {
			key := value.Content[i]
			if !contains(fields, key.Value) {
				return fmt.Errorf("line %d: unknown field %q (want %s)", key.Line, key.Value, strings.Join(fields, ", "))
			}
		}
	}
	return value.Decode(out)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// variantNode is one decoded sequence element: the variant name and the
// node holding its payload.
type variantNode struct {
	name    string
	payload *yaml.Node
}

// decodeVariants splits a YAML sequence of tagged variants into name and
// payload pairs. An element is either a single-key mapping
// (`Name: payload`) or a node carrying a local tag (`!Name payload`).
func decodeVariants(value *yaml.Node, what string) ([]variantNode, error) {
	if value.Kind == yaml.ScalarNode && value.ShortTag() == "!!null" {
		return nil, nil
	}
	if value.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%s list must be a YAML sequence, got %s", what, kindName(value.Kind))
	}
	items := make([]variantNode, 0, len(value.Content))
	for i, item := range value.Content {
		if tag := item.Tag; strings.HasPrefix(tag, "!") && !strings.HasPrefix(tag, "!!") {
			payload := *item
			payload.Tag = ""
			items = append(items, variantNode{name: tag[1:], payload: &payload})
			continue
		}
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%s %d: expected a single-key mapping, got %s", what, i, kindName(item.Kind))
		}
		if len(item.Content) != 2 {
			return nil, fmt.Errorf("%s %d: mapping must have exactly one key, got %d", what, i, len(item.Content)/2)
		}
		items = append(items, variantNode{name: item.Content[0].Value, payload: item.Content[1]})
	}
	return items, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return fmt.Sprintf("kind %d", k)
}
