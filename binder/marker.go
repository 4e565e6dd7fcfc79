// Package binder connects a controller to the components of an inflated
// tree.
//
// A controller declares what it wants bound through UIMarkers. A data-source
// marker names a method returning a data.Property, data.Item or
// data.Collection that becomes the data source of the component with the
// marker's id. A handler marker names a method taking one event value; it is
// registered as the matching listener of the component with the marker's id.
// Exported struct fields tagged `ui:"<id>"` receive the component with that
// id, or, when already set, are used in its place during inflation.
package binder

import "fmt"

// Kind is the role a marker gives a controller method.
type Kind int

const (
	KindDataSource Kind = iota + 1
	KindHandler
)

func (k Kind) String() string {
	switch k {
	case KindDataSource:
		return "data-source"
	case KindHandler:
		return "handler"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Marker ties a controller method to a component id.
type Marker struct {
	Kind   Kind
	ID     string
	Method string
}

// DataSource marks method as the data source of component id.
func DataSource(id, method string) Marker {
	return Marker{Kind: KindDataSource, ID: id, Method: method}
}

// Handler marks method as an event handler of component id.
func Handler(id, method string) Marker {
	return Marker{Kind: KindHandler, ID: id, Method: method}
}

func (m Marker) String() string {
	return fmt.Sprintf("%s %s -> %q", m.Kind, m.Method, m.ID)
}

// Controller lists the markers of a controller.
type Controller interface {
	UIMarkers() []Marker
}
