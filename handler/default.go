package handler

import (
	"context"
	"reflect"

	"github.com/vk/weave/component"
	"github.com/vk/weave/filter"
	"github.com/vk/weave/internal/ctxlog"
	"github.com/vk/weave/internal/reflectutil"
	"github.com/vk/weave/layout"
	"github.com/vk/weave/parser"
)

// Default assigns default-namespace attributes to the component's own
// setters before the component is attached.
type Default struct {
	assigner
}

// NewDefault returns the default-namespace handler.
func NewDefault(parsers *parser.Registry, filters filter.Chain) *Default {
	return &Default{assigner{parsers: parsers, filters: filters}}
}

func (h *Default) Kind() Kind        { return KindDefault }
func (h *Default) Namespace() string { return "" }
func (h *Default) Phase() Phase      { return BeforeAttach }

// Assign calls one setter per attribute. Attributes without a setter, or
// whose setter takes a type no parser supports, are skipped.
func (h *Default) Assign(ctx context.Context, node component.Component, attrs []layout.Pair) error {
	if len(attrs) == 0 {
		return nil
	}
	logger := ctxlog.FromContext(ctx).With("handler", h.Kind().String(), "component", reflect.TypeOf(node).String())
	shape := reflectutil.Arity(0, 1)

	for _, attr := range attrs {
		setter, ok := h.writeMethod(node, attr.Name, shape)
		if !ok {
			logger.Debug("No setter for attribute, skipping.", "attribute", attr.Name)
			continue
		}

		valueType := shape.ValueType(setter)
		if valueType == nil {
			logger.Debug("Invoking mode setter.", "attribute", attr.Name, "method", setter.Name)
			if err := invoke(node, setter, reflect.Value{}, nil); err != nil {
				return &Error{Attribute: attr.Name, Method: setter.Name, Err: err}
			}
			continue
		}

		value, supported, err := h.parsers.Parse(attr.Value, valueType, node)
		if err != nil {
			return &Error{Attribute: attr.Name, Method: setter.Name, Err: err}
		}
		if !supported {
			logger.Debug("No parser for setter type, skipping.", "attribute", attr.Name, "method", setter.Name, "type", valueType.String())
			continue
		}

		logger.Debug("Assigning attribute.", "attribute", attr.Name, "method", setter.Name)
		err = h.filters.Apply(node, setter.Name, value, func(v any) error {
			return invoke(node, setter, reflect.Value{}, v)
		})
		if err != nil {
			return &Error{Attribute: attr.Name, Method: setter.Name, Err: err}
		}
	}
	return nil
}
