//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Build targets for yatm. Run from the repository root: mage build.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryDir   = "bin"
	binaryName  = "yatm"
	mainPackage = "./cmd/yatm"
)

// Default target when mage runs without arguments.
var Default = Build

// Build compiles the yatm binary into bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	out := filepath.Join(binaryDir, binaryName)
	fmt.Printf("building %s\n", out)
	return sh.RunV("go", "build", "-o", out, mainPackage)
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet over every package.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs lint then tests.
func Check() {
	mg.SerialDeps(Lint, Test)
}

// Install installs yatm into GOBIN.
func Install() error {
	mg.Deps(Check)
	return sh.RunV("go", "install", mainPackage)
}

// Clean removes build output.
func Clean() error {
	fmt.Printf("removing %s\n", binaryDir)
	return sh.Rm(binaryDir)
}
