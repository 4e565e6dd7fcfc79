package handler

import (
	"context"
	"fmt"
	"reflect"

	"github.com/vk/weave/component"
	"github.com/vk/weave/filter"
	"github.com/vk/weave/internal/ctxlog"
	"github.com/vk/weave/internal/reflectutil"
	"github.com/vk/weave/layout"
	"github.com/vk/weave/parser"
)

var componentType = reflect.TypeFor[component.Component]()

// Parent assigns parent-namespace attributes through two-argument setters
// of the component's container, e.g. SetComponentAlignment(child, value).
type Parent struct {
	assigner
}

// NewParent returns the parent-namespace handler.
func NewParent(parsers *parser.Registry, filters filter.Chain) *Parent {
	return &Parent{assigner{parsers: parsers, filters: filters}}
}

func (h *Parent) Kind() Kind        { return KindParent }
func (h *Parent) Namespace() string { return layout.ParentNamespace }
func (h *Parent) Phase() Phase      { return AfterAttach }

// Assign requires node to be attached to a ComponentContainer.
func (h *Parent) Assign(ctx context.Context, node component.Component, attrs []layout.Pair) error {
	if len(attrs) == 0 {
		return nil
	}
	container, ok := node.Parent().(component.ComponentContainer)
	if !ok {
		return fmt.Errorf("%w: component %q must be attached to a component container, parent is %T", ErrIllegalState, node.ID(), node.Parent())
	}
	logger := ctxlog.FromContext(ctx).With("handler", h.Kind().String(), "container", reflect.TypeOf(container).String())
	shape := reflectutil.FirstParam(componentType)
	lead := reflect.ValueOf(&node).Elem()

	for _, attr := range attrs {
		setter, ok := h.writeMethod(container, attr.Name, shape)
		if !ok {
			logger.Debug("No layout setter for attribute, skipping.", "attribute", attr.Name)
			continue
		}
		valueType := shape.ValueType(setter)

		value, supported, err := h.parsers.Parse(attr.Value, valueType, node)
		if err != nil {
			return &Error{Namespace: h.Namespace(), Attribute: attr.Name, Method: setter.Name, Err: err}
		}
		if !supported {
			logger.Debug("No parser for layout setter type, skipping.", "attribute", attr.Name, "method", setter.Name, "type", valueType.String())
			continue
		}

		logger.Debug("Assigning layout attribute.", "attribute", attr.Name, "method", setter.Name, "child", node.ID())
		err = h.filters.Apply(container, setter.Name, value, func(v any) error {
			return invoke(container, setter, lead, v)
		})
		if err != nil {
			return &Error{Namespace: h.Namespace(), Attribute: attr.Name, Method: setter.Name, Err: err}
		}
	}
	return nil
}
