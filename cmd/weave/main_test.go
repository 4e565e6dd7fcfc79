package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/weave/internal/cli"
)

func TestRun_InvalidLayout(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	invalidHCL := `
		component "VerticalLayout" {
			id = "root"
		// Missing closing brace here
	`
	filePath := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0600), "failed to set up test file")
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, []string{filePath})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to build layout")
	require.Contains(t, err.Error(), "failed to parse HCL layout")
}

func TestRun_BuildsAndPrintsTree(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	layout := `
component "VerticalLayout" {
  id = "root"
  component "Button" {
    id      = "ok"
    caption = "OK"
  }
}
`
	filePath := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(layout), 0600))
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, []string{"--log-format", "text", filePath})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "VerticalLayout")
	require.Contains(t, out.String(), "#ok")
	require.Contains(t, out.String(), "OK")
}

func TestRun_Demo(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, []string{"--demo"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "#person-list")
	require.Contains(t, out.String(), "Click me")
	require.Contains(t, out.String(), "2 rows")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
