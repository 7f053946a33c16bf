// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package yatm

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/yatm/pkg/catalog"
	"github.com/mesh-intelligence/yatm/pkg/issue"
	"github.com/mesh-intelligence/yatm/pkg/reconcile"
	"github.com/mesh-intelligence/yatm/pkg/render"
	"github.com/mesh-intelligence/yatm/pkg/synth"
	"github.com/mesh-intelligence/yatm/pkg/tracker"
)

// Tracker is the remote issue tracker the Manager reconciles against.
// *tracker.Client implements it.
type Tracker interface {
	ListIssues(ctx context.Context, state issue.State) ([]issue.Remote, error)
	CreateIssue(ctx context.Context, title, body string, labels []string) (int, error)
	CloseIssue(ctx context.Context, number int) error
	ListLabels(ctx context.Context) ([]tracker.Label, error)
	CreateLabel(ctx context.Context, name, color, description string) error
	DeleteLabel(ctx context.Context, name string) error
}

// ErrNoTracker is returned by tracker operations on a Manager built
// without one.
var ErrNoTracker = errors.New("no issue tracker configured")

// NoMatchError reports a builder that produces no test cases.
type NoMatchError struct {
	Builder string
	Reason  string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("test cases builder %q yields no test cases: %s", e.Builder, e.Reason)
}

// Manager runs the workspace workflow: load, validate, synthesize,
// render, reconcile and create.
type Manager struct {
	cfg     Config
	tracker Tracker
	log     *zap.SugaredLogger
	workers int
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithTracker sets the remote tracker.
func WithTracker(t Tracker) ManagerOption { return func(m *Manager) { m.tracker = t } }

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *zap.Logger) ManagerOption {
	return func(m *Manager) {
		if l == nil {
			l = zap.NewNop()
		}
		m.log = l.Sugar()
	}
}

// WithRenderWorkers bounds concurrent rendering.
func WithRenderWorkers(n int) ManagerOption { return func(m *Manager) { m.workers = n } }

// NewManager returns a Manager for cfg.
func NewManager(cfg Config, opts ...ManagerOption) *Manager {
	m := &Manager{cfg: cfg, log: zap.NewNop().Sugar(), workers: render.DefaultWorkers}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Config returns the workspace configuration.
func (m *Manager) Config() Config { return m.cfg }

// LoadRequirements reads every requirement under the configured
// requirements directories.
func (m *Manager) LoadRequirements() ([]catalog.Requirement, error) {
	reqs, err := catalog.LoadRequirements(m.cfg.RequirementsDirs)
	if err != nil {
		return nil, err
	}
	m.log.Debugf("LoadRequirements: dirs=%v count=%d", m.cfg.RequirementsDirs, len(reqs))
	return reqs, nil
}

// LoadBuilders reads every builder under the configured builders
// directories.
func (m *Manager) LoadBuilders() ([]catalog.Builder, error) {
	builders, err := catalog.LoadBuilders(m.cfg.TestCasesBuildersDirs)
	if err != nil {
		return nil, err
	}
	m.log.Debugf("LoadBuilders: dirs=%v count=%d", m.cfg.TestCasesBuildersDirs, len(builders))
	return builders, nil
}

// ValidateRequirements loads the requirements and checks that names,
// which become issue titles, are unique.
func (m *Manager) ValidateRequirements() ([]catalog.Requirement, error) {
	reqs, err := m.LoadRequirements()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]int, len(reqs))
	var errs []error
	for _, r := range reqs {
		seen[r.Name]++
		if seen[r.Name] == 2 {
			errs = append(errs, fmt.Errorf("duplicate requirement name %q", r.Name))
		}
	}
	return reqs, errors.Join(errs...)
}

// ValidateBuilders loads requirements and builders and returns a
// NoMatchError for every builder that yields no test cases.
func (m *Manager) ValidateBuilders() ([]catalog.Builder, error) {
	reqs, err := m.LoadRequirements()
	if err != nil {
		return nil, err
	}
	builders, err := m.LoadBuilders()
	if err != nil {
		return nil, err
	}
	var errs []error
	for _, b := range builders {
		switch {
		case len(synth.Select(reqs, b.Set)) == 0:
			errs = append(errs, &NoMatchError{Builder: b.Name, Reason: "no requirement survives the set steps"})
		case len(synth.Expand(b.Permutations)) == 0:
			errs = append(errs, &NoMatchError{Builder: b.Name, Reason: "a permutation dimension has no values"})
		}
	}
	return builders, errors.Join(errs...)
}

// TestCases synthesizes every test case of the workspace.
func (m *Manager) TestCases() ([]synth.TestCase, error) {
	reqs, err := m.LoadRequirements()
	if err != nil {
		return nil, err
	}
	builders, err := m.LoadBuilders()
	if err != nil {
		return nil, err
	}
	cases := synth.Synthesize(builders, reqs)
	m.log.Debugf("TestCases: requirements=%d builders=%d cases=%d", len(reqs), len(builders), len(cases))
	return cases, nil
}

// LocalIssues renders every test case. Any render failure fails the
// call.
func (m *Manager) LocalIssues(ctx context.Context) ([]issue.Local, error) {
	cases, err := m.TestCases()
	if err != nil {
		return nil, err
	}
	local, err := render.RenderAll(ctx, cases, m.cfg.WorkspaceVersion, m.workers)
	if err != nil {
		return nil, err
	}
	return local, nil
}

// remoteIssues lists every issue on the tracker, closed ones included,
// so a tester closing an issue does not cause it to be filed again.
func (m *Manager) remoteIssues(ctx context.Context) ([]issue.Remote, error) {
	if m.tracker == nil {
		return nil, ErrNoTracker
	}
	remote, err := m.tracker.ListIssues(ctx, issue.StateAll)
	if err != nil {
		return nil, fmt.Errorf("listing remote issues: %w", err)
	}
	return remote, nil
}

// Plan returns the local issues missing on the tracker, in test case
// order.
func (m *Manager) Plan(ctx context.Context) ([]issue.Local, error) {
	local, err := m.LocalIssues(ctx)
	if err != nil {
		return nil, err
	}
	remote, err := m.remoteIssues(ctx)
	if err != nil {
		return nil, err
	}
	missing := reconcile.Unmatched(local, remote)
	m.log.Infof("Plan: local=%d remote=%d missing=%d", len(local), len(remote), len(missing))
	return missing, nil
}

// Created is an issue Sync filed, or would file on a dry run (Number 0).
type Created struct {
	Number int
	Issue  issue.Local
}

// Sync creates every issue Plan reports, in order. The first failure
// stops the run; issues created before it are returned with the error.
func (m *Manager) Sync(ctx context.Context, dryRun bool) ([]Created, error) {
	missing, err := m.Plan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Created, 0, len(missing))
	for _, li := range missing {
		if dryRun {
			out = append(out, Created{Issue: li})
			continue
		}
		n, err := m.tracker.CreateIssue(ctx, li.Title, li.Body, li.Labels)
		if err != nil {
			return out, fmt.Errorf("creating issue %q: %w", li.Title, err)
		}
		out = append(out, Created{Number: n, Issue: li})
	}
	m.log.Infof("Sync: created=%d dry_run=%t", len(out), dryRun)
	return out, nil
}

// Status classifies every local issue against the tracker.
func (m *Manager) Status(ctx context.Context) ([]reconcile.Match, error) {
	local, err := m.LocalIssues(ctx)
	if err != nil {
		return nil, err
	}
	remote, err := m.remoteIssues(ctx)
	if err != nil {
		return nil, err
	}
	return reconcile.Classify(local, remote), nil
}

// SyncLabels creates every configured label the repository lacks and
// returns the names created.
func (m *Manager) SyncLabels(ctx context.Context) ([]string, error) {
	if m.tracker == nil {
		return nil, ErrNoTracker
	}
	existing, err := m.tracker.ListLabels(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing labels: %w", err)
	}
	have := make(map[string]bool, len(existing))
	for _, l := range existing {
		have[l.Name] = true
	}
	var created []string
	for _, l := range m.cfg.Labels {
		if have[l.Name] {
			continue
		}
		if err := m.tracker.CreateLabel(ctx, l.Name, l.Color, l.Description); err != nil {
			return created, fmt.Errorf("creating label %q: %w", l.Name, err)
		}
		have[l.Name] = true
		created = append(created, l.Name)
	}
	m.log.Infof("SyncLabels: configured=%d created=%d", len(m.cfg.Labels), len(created))
	return created, nil
}

// ResetLabels deletes every label on the repository and returns the
// names deleted.
func (m *Manager) ResetLabels(ctx context.Context) ([]string, error) {
	if m.tracker == nil {
		return nil, ErrNoTracker
	}
	existing, err := m.tracker.ListLabels(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing labels: %w", err)
	}
	var deleted []string
	for _, l := range existing {
		if err := m.tracker.DeleteLabel(ctx, l.Name); err != nil {
			return deleted, fmt.Errorf("deleting label %q: %w", l.Name, err)
		}
		deleted = append(deleted, l.Name)
	}
	m.log.Infof("ResetLabels: deleted=%d", len(deleted))
	return deleted, nil
}

// CloseAll closes every open issue and returns their numbers.
func (m *Manager) CloseAll(ctx context.Context) ([]int, error) {
	if m.tracker == nil {
		return nil, ErrNoTracker
	}
	open, err := m.tracker.ListIssues(ctx, issue.StateOpen)
	if err != nil {
		return nil, fmt.Errorf("listing open issues: %w", err)
	}
	var closed []int
	for _, r := range open {
		if err := m.tracker.CloseIssue(ctx, r.Number); err != nil {
			return closed, fmt.Errorf("closing issue #%d %q: %w", r.Number, r.Title, err)
		}
		closed = append(closed, r.Number)
	}
	m.log.Infof("CloseAll: closed=%d", len(closed))
	return closed, nil
}
