package parser

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/vk/weave/component"
)

// Registry is an ordered parser list. It is not safe to modify while an
// inflation is using it.
type Registry struct {
	parsers []Parser
}

// NewRegistry returns a registry holding the built-in parsers.
func NewRegistry() *Registry {
	return &Registry{parsers: Builtins()}
}

// Builtins returns the built-in parsers in lookup order.
func Builtins() []Parser {
	return []Parser{
		enumParser{},
		domainParser{},
		positionParser{},
		textParser{},
		primitiveParser{},
	}
}

// Register appends parsers after the ones already present.
func (r *Registry) Register(parsers ...Parser) {
	r.parsers = append(r.parsers, parsers...)
}

// Prepend inserts parsers in front of every registered parser, built-ins
// included.
func (r *Registry) Prepend(parsers ...Parser) {
	r.parsers = append(slices.Clone(parsers), r.parsers...)
}

// Parsers returns a copy of the lookup order.
func (r *Registry) Parsers() []Parser {
	return slices.Clone(r.parsers)
}

// Resolve returns the first parser supporting t, or nil.
func (r *Registry) Resolve(t reflect.Type) Parser {
	if t == nil {
		return nil
	}
	for _, p := range r.parsers {
		if p.Supports(t) {
			return p
		}
	}
	return nil
}

// Specialized reports whether t is served by something other than the
// primitive parser.
func (r *Registry) Specialized(t reflect.Type) bool {
	p := r.Resolve(t)
	return p != nil && p.Kind() != KindPrimitive
}

// Parse converts raw into t. ok is false when no parser supports t. An empty
// raw value yields the zero value of t without calling the parser.
func (r *Registry) Parse(raw string, t reflect.Type, node component.Component) (value any, ok bool, err error) {
	p := r.Resolve(t)
	if p == nil {
		return nil, false, nil
	}
	if raw == "" {
		return reflect.Zero(t).Interface(), true, nil
	}
	value, err = p.Parse(raw, t, node)
	if err != nil {
		return nil, true, fmt.Errorf("%s parser: cannot convert %q to %s: %w", p.Kind(), raw, t, err)
	}
	return value, true, nil
}
