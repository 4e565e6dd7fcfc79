// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Element and Attributes, the in-memory form of a layout
// description.
//
// Why keep attributes as an ordered list instead of a map?
//
// A map would lose both the source order and the information that a key was
// repeated. Handlers apply attributes in source order, and a repeated key must
// resolve to its last value while being applied exactly once. Grouping an
// ordered list gives both guarantees in one place.
package layout

import (
	"fmt"
	"slices"
)

// ParentNamespace addresses properties that the parent container keeps about
// a child.
const ParentNamespace = "urn:weave:parent"

// Pos is a location in a description source.
type Pos struct {
	Filename string
	Line     int
	Column   int
}

func (p Pos) String() string {
	if p.Filename == "" && p.Line == 0 {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d,%d", p.Filename, p.Line, p.Column)
}

// Attribute is one raw attribute of an element.
type Attribute struct {
	Namespace string
	Name      string
	Value     string
}

// Pair is a name and value inside a single namespace.
type Pair struct {
	Name  string
	Value string
}

// Attributes is the ordered attribute list of an element.
type Attributes []Attribute

// Namespaces returns the distinct namespaces in order of first appearance.
func (a Attributes) Namespaces() []string {
	var out []string
	for _, attr := range a {
		if !slices.Contains(out, attr.Namespace) {
			out = append(out, attr.Namespace)
		}
	}
	return out
}

// Group returns the attributes of one namespace. A repeated name keeps the
// position of its first occurrence and the value of its last.
func (a Attributes) Group(namespace string) []Pair {
	var out []Pair
	index := make(map[string]int)
	for _, attr := range a {
		if attr.Namespace != namespace {
			continue
		}
		if i, seen := index[attr.Name]; seen {
			out[i].Value = attr.Value
			continue
		}
		index[attr.Name] = len(out)
		out = append(out, Pair{Name: attr.Name, Value: attr.Value})
	}
	return out
}

// Get returns the effective value of name in namespace.
func (a Attributes) Get(namespace, name string) (string, bool) {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i].Namespace == namespace && a[i].Name == name {
			return a[i].Value, true
		}
	}
	return "", false
}

// ID returns the effective default-namespace id, or "".
func (a Attributes) ID() string {
	id, _ := a.Get("", "id")
	return id
}

// Element describes one component of the tree.
type Element struct {
	Type       string
	Attributes Attributes
	Children   []*Element
	Pos        Pos
}

// ID is a shorthand for e.Attributes.ID().
func (e *Element) ID() string { return e.Attributes.ID() }

// Walk visits e and its descendants in pre-order.
func (e *Element) Walk(fn func(el *Element)) {
	fn(e)
	for _, child := range e.Children {
		child.Walk(fn)
	}
}

// Count returns the number of elements in the tree rooted at e.
func (e *Element) Count() int {
	n := 0
	e.Walk(func(*Element) { n++ })
	return n
}
