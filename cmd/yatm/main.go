// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command yatm manages manual test requirements and files their test
// cases as GitHub issues.
package main

import (
	"os"

	"github.com/mesh-intelligence/yatm/internal/cli"
	"github.com/mesh-intelligence/yatm/pkg/yatm"
)

func main() {
	if err := cli.Execute(yatm.Version); err != nil {
		os.Exit(1)
	}
}
