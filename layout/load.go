// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file picks a concrete syntax from a file name and reads descriptions
// from the file system or from an io.Reader.
package layout

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat is returned for file names without a known extension.
var ErrUnknownFormat = errors.New("unknown layout format")

// Format is a concrete description syntax.
type Format int

const (
	FormatHCL Format = iota + 1
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatHCL:
		return "hcl"
	case FormatYAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Extensions lists the file extensions FormatFromPath understands.
var Extensions = []string{".hcl", ".yaml", ".yml"}

// FormatFromPath derives the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return FormatHCL, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Parse reads src in the given format. filename is only used in messages.
func Parse(src []byte, filename string, format Format) (*Element, error) {
	switch format {
	case FormatHCL:
		return ParseHCL(src, filename)
	case FormatYAML:
		return ParseYAML(src, filename)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

// Read consumes r and parses it.
func Read(r io.Reader, filename string, format Format) (*Element, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", filename, err)
	}
	return Parse(src, filename, format)
}

// Load reads a description file.
func Load(path string) (*Element, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", path, err)
	}
	return Parse(src, path, format)
}

// LoadFS reads a description file from fsys.
func LoadFS(fsys fs.FS, name string) (*Element, error) {
	format, err := FormatFromPath(name)
	if err != nil {
		return nil, err
	}
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", name, err)
	}
	return Parse(src, name, format)
}
