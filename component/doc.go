// Package component is the widget set the inflater assembles. Every widget is
// a plain Go struct whose exported Set* methods are the properties a layout
// description can address by name; layouts additionally expose two-argument
// setters (component, value) that describe how a child is placed.
//
// The package knows nothing about layout descriptions. It is the opaque
// target that the handler package reaches through reflection.
package component
