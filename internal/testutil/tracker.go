// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package testutil provides shared test helpers: an in-memory issue
// tracker and workspace fixtures on disk.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/mesh-intelligence/yatm/pkg/issue"
	"github.com/mesh-intelligence/yatm/pkg/tracker"
)

// Tracker is an in-memory issue tracker. The zero value is ready to use.
// Fail, when set, is consulted before every operation and its error is
// returned instead of performing it.
type Tracker struct {
	mu     sync.Mutex
	issues []issue.Remote
	labels []tracker.Label
	next   int

	Fail func(op, entity string) error

	// Calls records operations in order, e.g. "create Boot test".
	Calls []string
}

// Seed adds remote issues, numbering any with Number 0.
func (t *Tracker) Seed(issues ...issue.Remote) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, r := range issues {
		if r.Number == 0 {
			t.next++
			r.Number = t.next
		} else if r.Number > t.next {
			t.next = r.Number
		}
		if r.State == "" {
			r.State = issue.StateOpen
		}
		t.issues = append(t.issues, r)
	}
}

// SeedLabels adds repository labels.
func (t *Tracker) SeedLabels(labels ...tracker.Label) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.labels = append(t.labels, labels...)
}

// Issues returns a copy of the stored issues.
func (t *Tracker) Issues() []issue.Remote {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]issue.Remote(nil), t.issues...)
}

// Labels returns a copy of the stored labels.
func (t *Tracker) Labels() []tracker.Label {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]tracker.Label(nil), t.labels...)
}

func (t *Tracker) record(op, entity string) error {
	t.Calls = append(t.Calls, op+" "+entity)
	if t.Fail != nil {
		return t.Fail(op, entity)
	}
	return nil
}

func (t *Tracker) ListIssues(_ context.Context, state issue.State) ([]issue.Remote, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.record("list", string(state)); err != nil {
		return nil, err
	}
	var out []issue.Remote
	for _, r := range t.issues {
		if state == issue.StateAll || r.State == state {
			out = append(out, r)
		}
	}
	return out, nil
}

func (t *Tracker) CreateIssue(_ context.Context, title, body string, labels []string) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.record("create", title); err != nil {
		return 0, err
	}
	t.next++
	t.issues = append(t.issues, issue.Remote{
		Number: t.next,
		Title:  title,
		Body:   body,
		Labels: uniqueLabels(labels),
		State:  issue.StateOpen,
	})
	return t.next, nil
}

// uniqueLabels drops repeats, keeping first occurrences, the way GitHub
// stores the labels of a new issue.
func uniqueLabels(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}

func (t *Tracker) CloseIssue(_ context.Context, number int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.record("close", fmt.Sprintf("#%d", number)); err != nil {
		return err
	}
	for i := range t.issues {
		if t.issues[i].Number == number {
			t.issues[i].State = issue.StateClosed
			return nil
		}
	}
	return fmt.Errorf("issue #%d not found", number)
}

func (t *Tracker) ListLabels(context.Context) ([]tracker.Label, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.record("list-labels", ""); err != nil {
		return nil, err
	}
	return append([]tracker.Label(nil), t.labels...), nil
}

func (t *Tracker) CreateLabel(_ context.Context, name, color, description string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.record("create-label", name); err != nil {
		return err
	}
	for _, l := range t.labels {
		if l.Name == name {
			return fmt.Errorf("label %q already exists", name)
		}
	}
	t.labels = append(t.labels, tracker.Label{Name: name, Color: color, Description: description})
	return nil
}

func (t *Tracker) DeleteLabel(_ context.Context, name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.record("delete-label", name); err != nil {
		return err
	}
	for i, l := range t.labels {
		if l.Name == name {
			t.labels = append(t.labels[:i], t.labels[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("label %q not found", name)
}
