// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package issue holds the issue records exchanged between the renderer,
// the reconciler and the remote tracker.
package issue

// State is a tracker issue state, also used as a list filter.
type State string

const (
	StateOpen   State = "open"
	StateClosed State = "closed"
	StateAll    State = "all"
)

// Local is an issue rendered from a test case, not yet on the tracker.
// Labels may contain repeats.
type Local struct {
	Title  string
	Labels []string
	Body   string
}

// Remote is an issue as returned by the tracker.
type Remote struct {
	Number int
	Title  string
	Labels []string
	State  State
	Body   string
}
