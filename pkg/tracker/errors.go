// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tracker

import (
	"errors"
	"fmt"
	"strings"
)

// Kind separates failures worth retrying from the rest.
type Kind int

const (
	// Fatal failures abort the run.
	Fatal Kind = iota
	// Transient failures are secondary rate limits; the request can be
	// repeated after a pause.
	Transient
)

func (k Kind) String() string {
	if k == Transient {
		return "transient"
	}
	return "fatal"
}

// Error is a failed tracker operation. Entity names what was being
// operated on: an issue title, a label name or a page.
type Error struct {
	Op     string
	Entity string
	Kind   Kind
	Err    error
}

func (e *Error) Error() string {
	if e.Entity == "" {
		return fmt.Sprintf("%s (%s): %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Entity, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsTransient reports whether err is a tracker Error of kind Transient.
func IsTransient(err error) bool {
	var te *Error
	return errors.As(err, &te) && te.Kind == Transient
}

// classify returns Transient for GitHub's secondary rate limit response.
// Only gh's stderr is inspected; the command line carries the issue title
// and body, which may contain any text.
func classify(err error) Kind {
	var ce *CommandError
	if errors.As(err, &ce) && strings.Contains(strings.ToLower(ce.Stderr), "secondary rate limit") {
		return Transient
	}
	return Fatal
}
