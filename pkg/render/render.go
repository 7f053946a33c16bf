// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package render turns test cases into tracker issues and Markdown
// documents.
package render

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/mesh-intelligence/yatm/pkg/catalog"
	"github.com/mesh-intelligence/yatm/pkg/issue"
	"github.com/mesh-intelligence/yatm/pkg/synth"
)

//go:embed templates/issue.md.tmpl
var issueTemplateText string

var issueTemplate = template.Must(template.New("issue").Funcs(template.FuncMap{
	"inc":  func(i int) int { return i + 1 },
	"cell": func(s string) string { return strings.ReplaceAll(s, "|", `\|`) },
}).Parse(issueTemplateText))

// placeholder matches {permutation.<dimension>} references in step text.
var placeholder = regexp.MustCompile(`\{permutation\.([^{}]+)\}`)

// RenderError reports a test case whose body could not be produced.
type RenderError struct {
	Requirement string
	Builder     string
	Err         error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering %q (builder %q): %v", e.Requirement, e.Builder, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

type dimension struct {
	Name  string
	Value string
}

type step struct {
	Action []string
	Expect []string
}

type issueData struct {
	Description string
	Permutation []dimension
	Steps       []step
	Links       []string
}

// Render returns the issue for tc: the requirement name as title, the
// aggregated labels, and the Markdown body.
func Render(tc synth.TestCase, workspaceVersion string) (issue.Local, error) {
	body, err := Body(tc)
	if err != nil {
		return issue.Local{}, err
	}
	return issue.Local{
		Title:  tc.Requirement.Name,
		Labels: synth.Labels(tc, workspaceVersion),
		Body:   body,
	}, nil
}

// Body renders the Markdown body of tc's issue. The permutation table
// appears only when the permutation has more dimensions than the
// builder's MinimumPermutationsToRender.
func Body(tc synth.TestCase) (string, error) {
	fail := func(err error) (string, error) {
		return "", &RenderError{Requirement: tc.Requirement.Name, Builder: tc.Builder.Name, Err: err}
	}
	in := interpolator{perm: tc.Permutation}

	data := issueData{Description: in.expand(tc.Requirement.Description)}
	for _, l := range tc.Requirement.Links {
		data.Links = append(data.Links, in.link(l))
	}
	if len(tc.Permutation) > tc.Builder.MinimumPermutationsToRender {
		for _, k := range tc.Permutation.Keys() {
			data.Permutation = append(data.Permutation, dimension{Name: k, Value: tc.Permutation[k]})
		}
	}
	for _, s := range tc.Requirement.Steps {
		var out step
		for _, a := range s.Action {
			out.Action = append(out.Action, in.action(a))
		}
		for _, e := range s.Expect {
			out.Expect = append(out.Expect, in.expect(e))
		}
		data.Steps = append(data.Steps, out)
	}
	if in.err != nil {
		return fail(in.err)
	}

	var b strings.Builder
	if err := issueTemplate.Execute(&b, data); err != nil {
		return fail(err)
	}
	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

// interpolator substitutes permutation placeholders and remembers the
// first unresolvable one.
type interpolator struct {
	perm synth.Permutation
	err  error
}

func (in *interpolator) expand(s string) string {
	return placeholder.ReplaceAllStringFunc(s, func(m string) string {
		key := placeholder.FindStringSubmatch(m)[1]
		v, ok := in.perm[key]
		if !ok {
			if in.err == nil {
				in.err = fmt.Errorf("unknown permutation dimension %q", key)
			}
			return m
		}
		return v
	})
}

func (in *interpolator) terminal(label string, t catalog.TerminalText) string {
	return fmt.Sprintf("%s (terminal %d):\n\n```bash\n%s\n```", label, t.Terminal, in.expand(t.Text))
}

func (in *interpolator) link(l catalog.Link) string {
	return fmt.Sprintf("[%s](%s)", in.expand(l.Name), in.expand(l.URL))
}

func (in *interpolator) action(a catalog.Action) string {
	switch v := a.(type) {
	case catalog.StdIn:
		return in.terminal("Run", catalog.TerminalText(v))
	case catalog.Image:
		return fmt.Sprintf("![image](%s)", in.expand(string(v)))
	case catalog.Describe:
		return in.expand(string(v))
	case catalog.URL:
		return in.link(catalog.Link(v))
	}
	return fmt.Sprintf("%v", a)
}

func (in *interpolator) expect(e catalog.Expect) string {
	switch v := e.(type) {
	case catalog.StdOut:
		return in.terminal("Output", catalog.TerminalText(v))
	case catalog.StdErr:
		return in.terminal("Error output", catalog.TerminalText(v))
	case catalog.Image:
		return fmt.Sprintf("![image](%s)", in.expand(string(v)))
	case catalog.Describe:
		return in.expand(string(v))
	case catalog.URL:
		return in.link(catalog.Link(v))
	}
	return fmt.Sprintf("%v", e)
}
