// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributes_Group(t *testing.T) {
	attrs := Attributes{
		{Name: "caption", Value: "first"},
		{Name: "id", Value: "button"},
		{Namespace: ParentNamespace, Name: "componentAlignment", Value: "top_left"},
		{Name: "caption", Value: "last"},
		{Namespace: "urn:example:audit", Name: "tag", Value: "x"},
	}

	assert.Equal(t, []Pair{{Name: "caption", Value: "last"}, {Name: "id", Value: "button"}}, attrs.Group(""))
	assert.Equal(t, []Pair{{Name: "componentAlignment", Value: "top_left"}}, attrs.Group(ParentNamespace))
	assert.Empty(t, attrs.Group("urn:missing"))
	assert.Equal(t, []string{"", ParentNamespace, "urn:example:audit"}, attrs.Namespaces())

	v, ok := attrs.Get("", "caption")
	assert.True(t, ok)
	assert.Equal(t, "last", v)
	_, ok = attrs.Get(ParentNamespace, "caption")
	assert.False(t, ok)
	assert.Equal(t, "button", attrs.ID())
}

func TestElement_WalkAndCount(t *testing.T) {
	root := &Element{Type: "VerticalLayout", Children: []*Element{
		{Type: "Label"},
		{Type: "Panel", Children: []*Element{{Type: "Button"}}},
	}}

	var types []string
	root.Walk(func(el *Element) { types = append(types, el.Type) })

	assert.Equal(t, []string{"VerticalLayout", "Label", "Panel", "Button"}, types)
	assert.Equal(t, 4, root.Count())
	assert.Equal(t, "", root.ID())
}

func TestPos_String(t *testing.T) {
	assert.Equal(t, "<unknown>", Pos{}.String())
	assert.Equal(t, "main.hcl:3,5", Pos{Filename: "main.hcl", Line: 3, Column: 5}.String())
}
