// Package render turns an assembled component tree into text for the
// terminal and into a JSON-friendly snapshot for the inspection server.
package render

import (
	"fmt"
	"reflect"
	"time"

	"github.com/vk/weave/component"
	"github.com/vk/weave/data"
)

// Node is the snapshot of one component.
type Node struct {
	Type     string  `json:"type"`
	ID       string  `json:"id,omitempty"`
	Caption  string  `json:"caption,omitempty"`
	Value    string  `json:"value,omitempty"`
	Rows     int     `json:"rows,omitempty"`
	Disabled bool    `json:"disabled,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// Snapshot captures the tree under root.
func Snapshot(root component.Component) *Node {
	n := &Node{
		Type: TypeName(root),
		ID:   root.ID(),
	}
	if c, ok := root.(interface{ Caption() string }); ok {
		n.Caption = c.Caption()
	}
	if e, ok := root.(interface{ Enabled() bool }); ok {
		n.Disabled = !e.Enabled()
	}
	n.Value = valueOf(root)
	if v, ok := root.(data.CollectionViewer); ok && v.CollectionDataSource() != nil {
		n.Rows = v.CollectionDataSource().Size()
	}
	if container, ok := root.(component.HasComponents); ok {
		for _, child := range container.Components() {
			n.Children = append(n.Children, Snapshot(child))
		}
	}
	return n
}

// TypeName is the bare type name of c, e.g. "Button".
func TypeName(c component.Component) string {
	t := reflect.TypeOf(c)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func valueOf(c component.Component) string {
	switch v := c.(type) {
	case interface{ Value() string }:
		return v.Value()
	case interface{ Value() time.Time }:
		if t := v.Value(); !t.IsZero() {
			return t.Format(time.DateOnly)
		}
		return ""
	case interface{ Value() bool }:
		return fmt.Sprint(v.Value())
	}
	return ""
}
