// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ignorePos = cmpopts.IgnoreFields(Element{}, "Pos")

func TestParseHCL(t *testing.T) {
	src := `
component "VerticalLayout" {
  id       = "root"
  sizeFull = ""
  spacing  = true

  component "Button" {
    id      = "button"
    caption = "Click me"

    parent {
      componentAlignment = "middle_center"
      expandRatio        = 1.5
    }

    attributes "urn:example:audit" {
      tag = "primary"
    }
  }

  component "Label" {
    value = 42
  }
}
`
	got, err := ParseHCL([]byte(src), "main.hcl")
	require.NoError(t, err)

	want := &Element{
		Type: "VerticalLayout",
		Attributes: Attributes{
			{Name: "id", Value: "root"},
			{Name: "sizeFull", Value: ""},
			{Name: "spacing", Value: "true"},
		},
		Children: []*Element{
			{
				Type: "Button",
				Attributes: Attributes{
					{Name: "id", Value: "button"},
					{Name: "caption", Value: "Click me"},
					{Namespace: ParentNamespace, Name: "componentAlignment", Value: "middle_center"},
					{Namespace: ParentNamespace, Name: "expandRatio", Value: "1.5"},
					{Namespace: "urn:example:audit", Name: "tag", Value: "primary"},
				},
			},
			{
				Type:       "Label",
				Attributes: Attributes{{Name: "value", Value: "42"}},
			},
		},
	}
	if diff := cmp.Diff(want, got, ignorePos); diff != "" {
		t.Errorf("ParseHCL() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, Pos{Filename: "main.hcl", Line: 2, Column: 1}, got.Pos)
	assert.Equal(t, 7, got.Children[0].Pos.Line)
}

func TestParseHCL_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "syntax error",
			src:     `component "Label" {`,
			wantErr: "failed to parse HCL layout",
		},
		{
			name:    "no root",
			src:     ``,
			wantErr: "exactly one top-level",
		},
		{
			name: "two roots",
			src: `
component "Label" {}
component "Label" {}
`,
			wantErr: "exactly one top-level",
		},
		{
			name:    "top-level attribute",
			src:     "id = \"x\"\ncomponent \"Label\" {}\n",
			wantErr: "Unexpected top-level attribute",
		},
		{
			name:    "missing type label",
			src:     `component {}`,
			wantErr: "Missing component type",
		},
		{
			name:    "unknown block",
			src:     "component \"Label\" {\n  style {}\n}\n",
			wantErr: "Unsupported block type",
		},
		{
			name:    "list value",
			src:     `component "Label" { value = ["a"] }`,
			wantErr: "Invalid attribute value",
		},
		{
			name:    "variable reference",
			src:     `component "Label" { value = var.x }`,
			wantErr: "invalid HCL layout",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseHCL([]byte(tc.src), "bad.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
