// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package catalog holds the requirement and test case builder records
// that drive test case synthesis, together with the YAML documents they
// are stored in. Records are immutable once loaded.
package catalog
