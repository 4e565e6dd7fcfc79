// Package reflectutil finds the setter a property name refers to.
//
// A property maps to the method Set<Name>. Go has no overloading, so the
// alternatives of a setter are spelled Set<Name>As<Suffix>, where Suffix
// starts with an upper-case letter; all of them are candidates and Preferred
// picks one. Method names are compared case-insensitively so that "id"
// reaches SetID.
package reflectutil

import (
	"reflect"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// overloadSeparator joins a setter name and the suffix of an alternative.
const overloadSeparator = "As"

var errorType = reflect.TypeFor[error]()

// SetterName maps a property name to its setter: "sizeFull" -> "SetSizeFull".
func SetterName(property string) string {
	if property == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(property)
	return "Set" + string(unicode.ToUpper(r)) + property[size:]
}

// Shape constrains the parameters of a candidate method (receiver excluded).
type Shape struct {
	min, max int
	first    reflect.Type
}

// Arity accepts methods taking between min and max parameters.
func Arity(min, max int) Shape { return Shape{min: min, max: max} }

// FirstParam accepts two-parameter methods whose first parameter can hold a
// value of type t. The second parameter is unconstrained.
func FirstParam(t reflect.Type) Shape { return Shape{min: 2, max: 2, first: t} }

// Accepts reports whether the method type ft (receiver first) fits the
// shape. A method may return nothing or a single error.
func (s Shape) Accepts(ft reflect.Type) bool {
	n := ft.NumIn() - 1
	if n < s.min || n > s.max {
		return false
	}
	if s.first != nil && !s.first.AssignableTo(ft.In(1)) {
		return false
	}
	switch ft.NumOut() {
	case 0:
		return true
	case 1:
		return ft.Out(0) == errorType
	}
	return false
}

// ValueType returns the type of the parameter that receives the property
// value, or nil for a parameterless setter.
func (s Shape) ValueType(m reflect.Method) reflect.Type {
	n := m.Type.NumIn() - 1
	switch {
	case s.first != nil:
		return m.Type.In(2)
	case n >= 1:
		return m.Type.In(1)
	}
	return nil
}

// FindMethods returns the methods of t named setter, or setter followed by
// an As suffix, that fit shape. They come in reflection order, which for Go
// is lexical by name.
func FindMethods(t reflect.Type, setter string, shape Shape) []reflect.Method {
	if t == nil || setter == "" {
		return nil
	}
	var out []reflect.Method
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if !matchesSetter(m.Name, setter) || !shape.Accepts(m.Type) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func matchesSetter(name, setter string) bool {
	if strings.EqualFold(name, setter) {
		return true
	}
	if len(name) <= len(setter)+len(overloadSeparator) {
		return false
	}
	if !strings.EqualFold(name[:len(setter)], setter) || !strings.HasPrefix(name[len(setter):], overloadSeparator) {
		return false
	}
	// The suffix starts a new word: SetCaptionAsHTML, not SetCaptionAssistant.
	r, _ := utf8.DecodeRuneInString(name[len(setter)+len(overloadSeparator):])
	return unicode.IsUpper(r)
}

// Deprecator is implemented by targets that flag some setters as
// deprecated.
type Deprecator interface {
	DeprecatedMethods() []string
}

// IsDeprecated reports whether target flags method as deprecated.
func IsDeprecated(target any, method string) bool {
	d, ok := target.(Deprecator)
	if !ok {
		return false
	}
	for _, name := range d.DeprecatedMethods() {
		if name == method {
			return true
		}
	}
	return false
}

// Preferred picks the best candidate: non-deprecated before deprecated, then
// methods whose value type has a specialized parser before the rest. Ties
// keep their incoming order.
func Preferred(target any, methods []reflect.Method, specialized func(reflect.Method) bool) (reflect.Method, bool) {
	if len(methods) == 0 {
		return reflect.Method{}, false
	}
	type ranked struct {
		m           reflect.Method
		deprecated  bool
		specialized bool
	}
	candidates := make([]ranked, len(methods))
	for i, m := range methods {
		candidates[i] = ranked{m: m, deprecated: IsDeprecated(target, m.Name), specialized: specialized(m)}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.deprecated != b.deprecated {
			return !a.deprecated
		}
		return a.specialized && !b.specialized
	})
	return candidates[0].m, true
}
