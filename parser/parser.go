package parser

import (
	"fmt"
	"reflect"

	"github.com/vk/weave/component"
)

// Kind tags the family a parser belongs to.
type Kind int

const (
	KindEnum Kind = iota + 1
	KindDomain
	KindPosition
	KindText
	KindPrimitive
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindDomain:
		return "domain"
	case KindPosition:
		return "position"
	case KindText:
		return "text"
	case KindPrimitive:
		return "primitive"
	case KindCustom:
		return "custom"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Parser converts raw strings into values of the types it supports.
type Parser interface {
	Kind() Kind
	Supports(t reflect.Type) bool
	// Parse converts raw into a value assignable to t. node is the component
	// the value is destined for.
	Parse(raw string, t reflect.Type, node component.Component) (any, error)
}

// Func adapts a pair of functions to a custom Parser.
type Func struct {
	SupportsFunc func(t reflect.Type) bool
	ParseFunc    func(raw string, t reflect.Type, node component.Component) (any, error)
}

func (f Func) Kind() Kind                   { return KindCustom }
func (f Func) Supports(t reflect.Type) bool { return f.SupportsFunc(t) }

func (f Func) Parse(raw string, t reflect.Type, node component.Component) (any, error) {
	return f.ParseFunc(raw, t, node)
}

// For returns a custom parser for exactly the type T.
func For[T any](parse func(raw string) (T, error)) Parser {
	target := reflect.TypeFor[T]()
	return Func{
		SupportsFunc: func(t reflect.Type) bool { return t == target },
		ParseFunc: func(raw string, _ reflect.Type, _ component.Component) (any, error) {
			return parse(raw)
		},
	}
}
