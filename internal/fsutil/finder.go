// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// FindFilesByExtension recursively searches rootPath for files ending with
// one of extensions, compared case-insensitively. The paths come back in
// lexical order. A rootPath naming a file is returned as is when it matches.
func FindFilesByExtension(rootPath string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 || slices.Contains(extensions, "") {
		panic("extension must not be empty")
	}

	matches := func(name string) bool {
		name = strings.ToLower(name)
		for _, ext := range extensions {
			if strings.HasSuffix(name, strings.ToLower(ext)) {
				return true
			}
		}
		return false
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && matches(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}
