// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package layout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"a.hcl":      FormatHCL,
		"dir/b.YAML": FormatYAML,
		"c.yml":      FormatYAML,
	} {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("layout.xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`component "Label" { id = "x" }`), 0644))

	el, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Label", el.Type)
	assert.Equal(t, "x", el.ID())
	assert.Equal(t, path, el.Pos.Filename)

	_, err = Load(filepath.Join(dir, "missing.hcl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.hcl")
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"layouts/main.yml": {Data: []byte("type: Panel\nattributes:\n  id: p\n")},
	}

	el, err := LoadFS(fsys, "layouts/main.yml")
	require.NoError(t, err)
	assert.Equal(t, "Panel", el.Type)
	assert.Equal(t, "p", el.ID())

	_, err = LoadFS(fsys, "layouts/main.txt")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRead(t *testing.T) {
	el, err := Read(strings.NewReader("type: Label\n"), "inline", FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "Label", el.Type)

	_, err = Parse([]byte("type: Label\n"), "inline", Format(0))
	require.ErrorIs(t, err, ErrUnknownFormat)
}
