// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package synth

import (
	"fmt"
	"sort"
)

// Permutation maps each dimension name to the one value chosen for it.
type Permutation map[string]string

// Keys returns the dimension names in lexical order.
func (p Permutation) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Labels returns one "<dimension>: <value>" label per dimension, sorted.
func (p Permutation) Labels() []string {
	labels := make([]string, 0, len(p))
	for k, v := range p {
		labels = append(labels, fmt.Sprintf("%s: %s", k, v))
	}
	sort.Strings(labels)
	return labels
}

// Expand returns the cartesian product of dims. Dimension names are
// sorted first and the last dimension varies fastest, so for
// {A:[a1,a2], B:[b1,b2]} the order is a1b1, a1b2, a2b1, a2b2.
//
// No dimensions yield one empty permutation. Any dimension with no
// values yields none.
func Expand(dims map[string][]string) []Permutation {
	names := make([]string, 0, len(dims))
	for name, values := range dims {
		if len(values) == 0 {
			return []Permutation{}
		}
		names = append(names, name)
	}
	sort.Strings(names)

	total := 1
	for _, name := range names {
		total *= len(dims[name])
	}

	out := make([]Permutation, 0, total)
	idx := make([]int, len(names))
	for {
		p := make(Permutation, len(names))
		for i, name := range names {
			p[name] = dims[name][idx[i]]
		}
		out = append(out, p)

		// Advance the odometer from the right.
		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(dims[names[i]]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return out
		}
	}
}
