// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/mesh-intelligence/yatm/pkg/issue"
	"github.com/mesh-intelligence/yatm/pkg/synth"
)

// DefaultWorkers bounds RenderAll when workers is not positive.
const DefaultWorkers = 8

// RenderAll renders cases concurrently with at most workers in flight.
// Results keep input order. Failed cases are left out of the result and
// their errors are joined in input order; the returned slice holds every
// case that rendered.
func RenderAll(ctx context.Context, cases []synth.TestCase, workspaceVersion string, workers int) ([]issue.Local, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	rendered := make([]issue.Local, len(cases))
	failed := make([]error, len(cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range cases {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			li, err := Render(cases[i], workspaceVersion)
			if err != nil {
				failed[i] = err
				return nil
			}
			rendered[i] = li
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]issue.Local, 0, len(cases))
	for i, li := range rendered {
		if failed[i] == nil {
			out = append(out, li)
		}
	}
	return out, errors.Join(failed...)
}
