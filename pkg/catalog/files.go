// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package catalog

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// YAMLExtensions are the file extensions treated as catalog documents.
var YAMLExtensions = []string{".yaml", ".yml"}

// FindFiles returns the files under paths whose extension matches one of
// extensions (case-insensitive). A path naming a regular file is returned
// as is, whatever its extension. Directories are walked recursively in
// lexical order so the result is stable across runs.
func FindFiles(paths []string, extensions ...string) ([]string, error) {
	var files []string
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, &NotFoundError{Path: root, Err: err}
		}
		if !info.IsDir() {
			files = append(files, root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return &NotFoundError{Path: path, Err: err}
			}
			if d.IsDir() {
				return nil
			}
			if hasExtension(path, extensions) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
