// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package synth turns requirements and builders into test cases.
//
// Expand takes the cartesian product of a builder's permutation
// dimensions, Select runs a builder's Include/Exclude chain over the
// requirement universe, and Synthesize crosses the two. Every function
// here is pure: inputs are never mutated and results depend only on
// input values, never on map iteration order.
package synth
