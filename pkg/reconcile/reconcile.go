// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package reconcile compares rendered issues with the tracker's issues.
// Titles are the natural key; labels must be a subset of the remote
// issue's labels so triage labels added by hand do not break a match.
package reconcile

import "github.com/mesh-intelligence/yatm/pkg/issue"

// Matches reports whether remote already represents local: the titles
// are equal and every local label is on the remote issue. Repeated
// local labels count once; the tracker stores each label a single time.
func Matches(local issue.Local, remote issue.Remote) bool {
	if local.Title != remote.Title {
		return false
	}
	want := distinct(local.Labels)
	if len(want) > len(remote.Labels) {
		return false
	}
	have := make(map[string]struct{}, len(remote.Labels))
	for _, l := range remote.Labels {
		have[l] = struct{}{}
	}
	for l := range want {
		if _, ok := have[l]; !ok {
			return false
		}
	}
	return true
}

func distinct(labels []string) map[string]struct{} {
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}
	return set
}

// Unmatched returns the local issues no remote issue matches, in input
// order. These are the issues to create.
func Unmatched(local []issue.Local, remote []issue.Remote) []issue.Local {
	out := make([]issue.Local, 0, len(local))
	for _, l := range local {
		if find(l, remote) < 0 {
			out = append(out, l)
		}
	}
	return out
}

func find(l issue.Local, remote []issue.Remote) int {
	for i, r := range remote {
		if Matches(l, r) {
			return i
		}
	}
	return -1
}
