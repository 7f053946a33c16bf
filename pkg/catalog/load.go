// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// RequirementsFile is the on-disk document holding requirements.
type RequirementsFile struct {
	Requirements []Requirement `yaml:"requirements"`
}

// BuildersFile is the on-disk document holding test case builders.
type BuildersFile struct {
	Builders []Builder `yaml:"test_cases_builders"`
}

// LoadRequirements reads every requirements document found under paths
// and returns the requirements in file order.
func LoadRequirements(paths []string) ([]Requirement, error) {
	files, err := FindFiles(paths, YAMLExtensions...)
	if err != nil {
		return nil, fmt.Errorf("finding requirement files: %w", err)
	}
	var all []Requirement
	for _, f := range files {
		reqs, err := ReadRequirementsFile(f)
		if err != nil {
			return nil, err
		}
		all = append(all, reqs...)
	}
	return all, nil
}

// ReadRequirementsFile reads and validates one requirements document.
func ReadRequirementsFile(path string) ([]Requirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	var doc RequirementsFile
	if err := decodeStrict(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	for i, r := range doc.Requirements {
		if r.Name == "" {
			return nil, &ParseError{Path: path, Record: fmt.Sprintf("requirement %d", i), Err: errors.New("name is required")}
		}
	}
	return doc.Requirements, nil
}

// LoadBuilders reads every builders document found under paths and
// returns the builders in file order.
func LoadBuilders(paths []string) ([]Builder, error) {
	files, err := FindFiles(paths, YAMLExtensions...)
	if err != nil {
		return nil, fmt.Errorf("finding test cases builder files: %w", err)
	}
	var all []Builder
	for _, f := range files {
		bs, err := ReadBuildersFile(f)
		if err != nil {
			return nil, err
		}
		all = append(all, bs...)
	}
	return all, nil
}

// ReadBuildersFile reads and validates one builders document.
func ReadBuildersFile(path string) ([]Builder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	var doc BuildersFile
	if err := decodeStrict(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	for i, b := range doc.Builders {
		if b.Name == "" {
			return nil, &ParseError{Path: path, Record: fmt.Sprintf("test cases builder %d", i), Err: errors.New("name is required")}
		}
	}
	return doc.Builders, nil
}

// decodeStrict decodes a single YAML document, rejecting unknown keys and
// empty input.
func decodeStrict(data []byte, out interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("document is empty")
		}
		return err
	}
	return nil
}

// Marshal encodes a catalog document with two-space indentation.
func Marshal(doc interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
