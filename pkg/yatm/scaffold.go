// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package yatm

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/mesh-intelligence/yatm/pkg/catalog"
)

// timestampLayout names generated files so they sort chronologically.
const timestampLayout = "2006-01-02-15-04-05"

// now is replaced in tests.
var now = func() time.Time { return time.Now().UTC() }

// InitWorkspace creates a workspace in dir: config.yaml, a demo
// requirements file, a demo builders file, the generated files directory
// and a .gitignore excluding it. dir must not exist or be empty.
func InitWorkspace(dir string) error {
	if err := ensureEmptyDir(dir); err != nil {
		return err
	}
	cfg := DefaultConfig()

	data, err := catalog.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	stamp := now().Format(timestampLayout)
	reqDir := filepath.Join(dir, cfg.NewRequirementsDir)
	if err := ensureEmptyDir(reqDir); err != nil {
		return err
	}
	if err := writeNew(filepath.Join(reqDir, "requirements-"+stamp+".yaml"), catalog.DemoRequirementsFile()); err != nil {
		return err
	}

	builderDir := filepath.Join(dir, cfg.NewTestCasesBuilderDir)
	if err := ensureEmptyDir(builderDir); err != nil {
		return err
	}
	if err := writeNew(filepath.Join(builderDir, "test_cases_builder-"+stamp+".yaml"), catalog.DemoBuildersFile()); err != nil {
		return err
	}

	if err := ensureEmptyDir(filepath.Join(dir, cfg.GeneratedFilesDir)); err != nil {
		return err
	}
	gitignore := fmt.Sprintf("/%s\n", filepath.ToSlash(cfg.GeneratedFilesDir))
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	return nil
}

// NewRequirementsFile writes the demo requirements document into the
// configured new requirements directory and returns its path. An empty
// name picks a timestamped one.
func NewRequirementsFile(cfg Config, name string) (string, error) {
	return newCatalogFile(cfg.NewRequirementsDir, name, "requirements", catalog.DemoRequirementsFile())
}

// NewBuildersFile is NewRequirementsFile for test case builders.
func NewBuildersFile(cfg Config, name string) (string, error) {
	return newCatalogFile(cfg.NewTestCasesBuilderDir, name, "test_cases_builder", catalog.DemoBuildersFile())
}

func newCatalogFile(dir, name, prefix string, doc interface{}) (string, error) {
	if name == "" {
		name = prefix + "-" + now().Format(timestampLayout)
	}
	if ext := filepath.Ext(name); ext != ".yaml" && ext != ".yml" {
		name += ".yaml"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := writeNew(path, doc); err != nil {
		return "", err
	}
	return path, nil
}

// writeNew encodes doc to a file that must not already exist.
func writeNew(path string, doc interface{}) error {
	data, err := catalog.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s already exists", path)
		}
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// ensureEmptyDir creates dir, or accepts it when it is an empty directory.
func ensureEmptyDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("checking %s: %w", dir, err)
	case !info.IsDir():
		return fmt.Errorf("%s already exists and is a file", dir)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("%s is not empty", dir)
	}
	return nil
}
