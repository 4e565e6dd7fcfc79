// Package filter intercepts converted attribute values on their way to a
// setter. Filters run in registration order; each one either forwards the
// (possibly replaced) value with Proceed or drops the assignment by returning
// without calling it.
package filter

import "strings"

// Filter inspects or rewrites one attribute assignment.
type Filter interface {
	Filter(ctx *Context) error
}

// Func adapts a function to a Filter.
type Func func(ctx *Context) error

func (f Func) Filter(ctx *Context) error { return f(ctx) }

// assignment is the state shared by every Context of one chain run.
type assignment struct {
	target any
	method string
	value  any
}

// Context is what a filter sees of an assignment.
type Context struct {
	a    *assignment
	next func() error
}

// Target is the object whose setter is about to be called.
func (c *Context) Target() any { return c.a.target }

// Method is the name of the setter about to be called.
func (c *Context) Method() string { return c.a.method }

// Value is the converted value as left by the previous filters.
func (c *Context) Value() any { return c.a.value }

// SetValue replaces the value seen by later filters and by the setter.
func (c *Context) SetValue(v any) { c.a.value = v }

// Proceed runs the rest of the chain and finally the setter. Each call runs
// them again.
func (c *Context) Proceed() error { return c.next() }

// Chain is an ordered filter list.
type Chain []Filter

// Apply runs value through the chain and hands the result to invoke. If a
// filter does not proceed, invoke is never called and Apply returns that
// filter's result.
func (c Chain) Apply(target any, method string, value any, invoke func(value any) error) error {
	a := &assignment{target: target, method: method, value: value}
	return c.run(0, a, invoke)
}

func (c Chain) run(i int, a *assignment, invoke func(value any) error) error {
	if i == len(c) {
		return invoke(a.value)
	}
	ctx := &Context{a: a, next: func() error { return c.run(i+1, a, invoke) }}
	return c[i].Filter(ctx)
}

// MessagePrefix marks string values that are message keys for Translate.
const MessagePrefix = "$"

// Translate rewrites string values of the form "$key" with lookup(key).
// Unknown keys and non-string values pass through unchanged.
func Translate(lookup func(key string) (string, bool)) Filter {
	return Func(func(ctx *Context) error {
		if s, ok := ctx.Value().(string); ok && strings.HasPrefix(s, MessagePrefix) {
			if msg, found := lookup(strings.TrimPrefix(s, MessagePrefix)); found {
				ctx.SetValue(msg)
			}
		}
		return ctx.Proceed()
	})
}

// Messages adapts a map to a Translate lookup.
func Messages(m map[string]string) func(key string) (string, bool) {
	return func(key string) (string, bool) {
		msg, ok := m[key]
		return msg, ok
	}
}
