// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tracker

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// binGh is the GitHub CLI binary.
const binGh = "gh"

// Runner executes one gh invocation and returns its stdout. A failed
// invocation returns a *CommandError carrying stderr.
type Runner func(ctx context.Context, args ...string) ([]byte, error)

// CommandError is a gh invocation that exited unsuccessfully.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("gh %s: %v", strings.Join(e.Args, " "), e.Err)
	}
	return fmt.Sprintf("gh %s: %v: %s", strings.Join(e.Args, " "), e.Err, e.Stderr)
}

func (e *CommandError) Unwrap() error { return e.Err }

// GH runs the gh binary from PATH. Authentication is whatever gh is
// logged in with.
func GH(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binGh, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, &CommandError{Args: args, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}
	return out, nil
}
