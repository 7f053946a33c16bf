// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package reconcile

import "github.com/mesh-intelligence/yatm/pkg/issue"

// MatchType describes how a local issue relates to the tracker.
type MatchType int

const (
	// Missing means no remote issue matches.
	Missing MatchType = iota
	// Identical means a remote issue matches and has the same body.
	Identical
	// Drifted means a remote issue matches but its body differs, usually
	// because the requirement changed after the issue was filed.
	Drifted
)

func (m MatchType) String() string {
	switch m {
	case Missing:
		return "missing"
	case Identical:
		return "identical"
	case Drifted:
		return "drifted"
	}
	return "unknown"
}

// Match pairs a local issue with the first remote issue matching it.
// Remote is nil when Type is Missing.
type Match struct {
	Local  issue.Local
	Remote *issue.Remote
	Type   MatchType
}

// Classify returns one Match per local issue, in input order.
func Classify(local []issue.Local, remote []issue.Remote) []Match {
	out := make([]Match, 0, len(local))
	for _, l := range local {
		m := Match{Local: l, Type: Missing}
		if i := find(l, remote); i >= 0 {
			r := remote[i]
			m.Remote = &r
			m.Type = Drifted
			if r.Body == l.Body {
				m.Type = Identical
			}
		}
		out = append(out, m)
	}
	return out
}

// Counts tallies matches by type.
func Counts(matches []Match) map[MatchType]int {
	out := map[MatchType]int{Missing: 0, Identical: 0, Drifted: 0}
	for _, m := range matches {
		out[m.Type]++
	}
	return out
}
