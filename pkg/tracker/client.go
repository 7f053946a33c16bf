// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tracker is the remote issue tracker client. It drives GitHub
// through the gh CLI's REST passthrough (gh api), which reads directly
// from the database rather than the eventually consistent search index.
package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/yatm/pkg/issue"
)

// perPage is the page size requested from list endpoints.
const perPage = 100

// DefaultBackoff is the pause before retrying a secondary rate limit.
const DefaultBackoff = 60 * time.Second

// Label is a repository label.
type Label struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// Client talks to one repository.
type Client struct {
	repo    string
	run     Runner
	backoff time.Duration
	sleep   func(context.Context, time.Duration) error
	log     *zap.SugaredLogger
}

// Option configures a Client.
type Option func(*Client)

// WithRunner replaces the gh runner, mainly for tests.
func WithRunner(r Runner) Option { return func(c *Client) { c.run = r } }

// WithBackoff sets the secondary rate limit pause.
func WithBackoff(d time.Duration) Option { return func(c *Client) { c.backoff = d } }

// WithSleep replaces the pause implementation, mainly for tests.
func WithSleep(f func(context.Context, time.Duration) error) Option {
	return func(c *Client) { c.sleep = f }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l == nil {
			l = zap.NewNop()
		}
		c.log = l.Sugar()
	}
}

// New returns a client for repo, given as "owner/name".
func New(repo string, opts ...Option) *Client {
	c := &Client{
		repo:    repo,
		run:     GH,
		backoff: DefaultBackoff,
		sleep:   sleepContext,
		log:     zap.NewNop().Sugar(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Repo returns the "owner/name" the client targets.
func (c *Client) Repo() string { return c.repo }

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type ghIssue struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	State  string `json:"state"`
	Labels []struct {
		Name string `json:"name"`
	} `json:"labels"`
	PullRequest *json.RawMessage `json:"pull_request"`
}

func (g ghIssue) remote() issue.Remote {
	labels := make([]string, 0, len(g.Labels))
	for _, l := range g.Labels {
		labels = append(labels, l.Name)
	}
	return issue.Remote{
		Number: g.Number,
		Title:  g.Title,
		Labels: labels,
		State:  issue.State(g.State),
		Body:   g.Body,
	}
}

// ListIssues returns every issue in state, following pages until an
// empty one comes back. Pull requests are skipped.
func (c *Client) ListIssues(ctx context.Context, state issue.State) ([]issue.Remote, error) {
	if state == "" {
		state = issue.StateOpen
	}
	var out []issue.Remote
	for page := 1; ; page++ {
		endpoint := fmt.Sprintf("repos/%s/issues?state=%s&per_page=%d&page=%d", c.repo, state, perPage, page)
		data, err := c.run(ctx, "api", "--method", "GET", endpoint)
		if err != nil {
			return nil, &Error{Op: "list issues", Entity: "page " + strconv.Itoa(page), Kind: classify(err), Err: err}
		}
		var raw []ghIssue
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, &Error{Op: "list issues", Entity: "page " + strconv.Itoa(page), Kind: Fatal, Err: fmt.Errorf("parsing response: %w", err)}
		}
		if len(raw) == 0 {
			break
		}
		for _, r := range raw {
			if r.PullRequest != nil {
				continue
			}
			out = append(out, r.remote())
		}
		c.log.Debugf("ListIssues: repo=%s state=%s page=%d got=%d", c.repo, state, page, len(raw))
	}
	c.log.Debugf("ListIssues: repo=%s state=%s total=%d", c.repo, state, len(out))
	return out, nil
}

// CreateIssue opens an issue and returns its number. A secondary rate
// limit pauses for the backoff and repeats the identical request until
// it goes through; any other failure is returned at once.
func (c *Client) CreateIssue(ctx context.Context, title, body string, labels []string) (int, error) {
	args := []string{"api", "--method", "POST", "repos/" + c.repo + "/issues",
		"-f", "title=" + title,
		"-f", "body=" + body,
	}
	for _, l := range labels {
		args = append(args, "-f", "labels[]="+l)
	}

	for attempt := 1; ; attempt++ {
		data, err := c.run(ctx, args...)
		if err == nil {
			var created struct {
				Number int `json:"number"`
			}
			if err := json.Unmarshal(data, &created); err != nil || created.Number == 0 {
				return 0, &Error{Op: "create issue", Entity: title, Kind: Fatal, Err: fmt.Errorf("parsing response %q: %v", data, err)}
			}
			c.log.Infof("CreateIssue: created #%d %q on %s", created.Number, title, c.repo)
			return created.Number, nil
		}
		if classify(err) != Transient {
			return 0, &Error{Op: "create issue", Entity: title, Kind: Fatal, Err: err}
		}
		c.log.Warnf("CreateIssue: secondary rate limit for %q, attempt=%d, retrying in %s", title, attempt, c.backoff)
		if serr := c.sleep(ctx, c.backoff); serr != nil {
			return 0, &Error{Op: "create issue", Entity: title, Kind: Transient, Err: fmt.Errorf("%w (while waiting: %v)", err, serr)}
		}
	}
}

// CloseIssue closes issue number.
func (c *Client) CloseIssue(ctx context.Context, number int) error {
	_, err := c.run(ctx, "api", "--method", "PATCH",
		fmt.Sprintf("repos/%s/issues/%d", c.repo, number),
		"-f", "state=closed",
	)
	if err != nil {
		return &Error{Op: "close issue", Entity: "#" + strconv.Itoa(number), Kind: classify(err), Err: err}
	}
	c.log.Infof("CloseIssue: closed #%d on %s", number, c.repo)
	return nil
}

// ListLabels returns every label on the repository.
func (c *Client) ListLabels(ctx context.Context) ([]Label, error) {
	var out []Label
	for page := 1; ; page++ {
		endpoint := fmt.Sprintf("repos/%s/labels?per_page=%d&page=%d", c.repo, perPage, page)
		data, err := c.run(ctx, "api", "--method", "GET", endpoint)
		if err != nil {
			return nil, &Error{Op: "list labels", Entity: "page " + strconv.Itoa(page), Kind: classify(err), Err: err}
		}
		var raw []Label
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, &Error{Op: "list labels", Entity: "page " + strconv.Itoa(page), Kind: Fatal, Err: fmt.Errorf("parsing response: %w", err)}
		}
		if len(raw) == 0 {
			break
		}
		out = append(out, raw...)
	}
	return out, nil
}

// CreateLabel adds a label. Color is six hex digits without '#'.
func (c *Client) CreateLabel(ctx context.Context, name, color, description string) error {
	_, err := c.run(ctx, "api", "--method", "POST", "repos/"+c.repo+"/labels",
		"-f", "name="+name,
		"-f", "color="+color,
		"-f", "description="+description,
	)
	if err != nil {
		return &Error{Op: "create label", Entity: name, Kind: classify(err), Err: err}
	}
	c.log.Infof("CreateLabel: created %q on %s", name, c.repo)
	return nil
}

// DeleteLabel removes a label by name.
func (c *Client) DeleteLabel(ctx context.Context, name string) error {
	_, err := c.run(ctx, "api", "--method", "DELETE", "repos/"+c.repo+"/labels/"+url.PathEscape(name))
	if err != nil {
		return &Error{Op: "delete label", Entity: name, Kind: classify(err), Err: err}
	}
	c.log.Infof("DeleteLabel: deleted %q on %s", name, c.repo)
	return nil
}
