// Package handler applies the attributes of one namespace to a component.
//
// Every Handler claims a (namespace, phase) pair. The inflater runs the
// BeforeAttach handlers of a component before the component is added to its
// parent and the AfterAttach handlers once it is attached. Two handlers ship
// with the package: Default for the component's own properties and Parent
// for the properties its container keeps about it.
package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/weave/component"
	"github.com/vk/weave/layout"
)

// ErrIllegalState is returned when parent-namespace attributes target a
// component whose parent cannot hold layout properties.
var ErrIllegalState = errors.New("illegal state")

// Phase is when, relative to attachment, a handler runs.
type Phase int

const (
	BeforeAttach Phase = iota
	AfterAttach
)

func (p Phase) String() string {
	switch p {
	case BeforeAttach:
		return "BEFORE_ATTACH"
	case AfterAttach:
		return "AFTER_ATTACH"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Kind tags built-in handlers apart from custom ones.
type Kind int

const (
	KindDefault Kind = iota + 1
	KindParent
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindDefault:
		return "default"
	case KindParent:
		return "parent"
	case KindCustom:
		return "custom"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Handler assigns the attributes of its namespace to a component.
type Handler interface {
	Kind() Kind
	Namespace() string
	Phase() Phase
	Assign(ctx context.Context, node component.Component, attrs []layout.Pair) error
}

// Error wraps a failure to assign one attribute.
type Error struct {
	Namespace string
	Attribute string
	Method    string
	Err       error
}

func (e *Error) Error() string {
	name := e.Attribute
	if e.Namespace != "" {
		name = e.Namespace + ":" + name
	}
	if e.Method != "" {
		return fmt.Sprintf("attribute %q (%s): %v", name, e.Method, e.Err)
	}
	return fmt.Sprintf("attribute %q: %v", name, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Set is the ordered list of handlers used for one inflation.
type Set struct {
	handlers []Handler
}

// NewSet returns a set holding handlers in the given order.
func NewSet(handlers ...Handler) *Set {
	s := &Set{}
	s.Add(handlers...)
	return s
}

// Add appends handlers. When two handlers claim the same namespace and
// phase, the first one added is used.
func (s *Set) Add(handlers ...Handler) {
	s.handlers = append(s.handlers, handlers...)
}

// Lookup returns the handler claiming namespace in phase.
func (s *Set) Lookup(namespace string, phase Phase) (Handler, bool) {
	for _, h := range s.handlers {
		if h.Namespace() == namespace && h.Phase() == phase {
			return h, true
		}
	}
	return nil, false
}

// Handlers returns the handlers in order.
func (s *Set) Handlers() []Handler {
	return append([]Handler(nil), s.handlers...)
}
