package parser

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/vk/weave/component"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

var (
	stringerType        = reflect.TypeFor[fmt.Stringer]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	alignmentType       = reflect.TypeFor[component.Alignment]()
	resourceType        = reflect.TypeFor[component.Resource]()
	sizeType            = reflect.TypeFor[component.Size]()
	positionType        = reflect.TypeFor[component.Position]()
	durationType        = reflect.TypeFor[time.Duration]()
)

// enumParser matches names against the values listed by an EnumValues
// method: `func (T) EnumValues() []T` on a type that is also a fmt.Stringer.
type enumParser struct{}

func (enumParser) Kind() Kind { return KindEnum }

func (enumParser) Supports(t reflect.Type) bool {
	_, ok := enumValues(t)
	return ok
}

func (enumParser) Parse(raw string, t reflect.Type, _ component.Component) (any, error) {
	values, _ := enumValues(t)
	var folded reflect.Value
	for i := 0; i < values.Len(); i++ {
		v := values.Index(i)
		name := v.Interface().(fmt.Stringer).String()
		if name == raw {
			return v.Interface(), nil
		}
		if !folded.IsValid() && strings.EqualFold(name, raw) {
			folded = v
		}
	}
	if folded.IsValid() {
		return folded.Interface(), nil
	}
	return nil, fmt.Errorf("no %s constant named %q", t, raw)
}

func enumValues(t reflect.Type) (reflect.Value, bool) {
	if t.Kind() == reflect.Interface || !t.Implements(stringerType) {
		return reflect.Value{}, false
	}
	m, ok := t.MethodByName("EnumValues")
	if !ok || m.Type.NumIn() != 1 || m.Type.NumOut() != 1 || m.Type.Out(0) != reflect.SliceOf(t) {
		return reflect.Value{}, false
	}
	return m.Func.Call([]reflect.Value{reflect.Zero(t)})[0], true
}

// domainParser handles the composite values of the widget set.
type domainParser struct{}

func (domainParser) Kind() Kind { return KindDomain }

func (domainParser) Supports(t reflect.Type) bool {
	switch t {
	case alignmentType, resourceType, sizeType, durationType:
		return true
	}
	return false
}

func (domainParser) Parse(raw string, t reflect.Type, _ component.Component) (any, error) {
	switch t {
	case alignmentType:
		return component.ParseAlignment(raw)
	case resourceType:
		return component.ParseResource(raw)
	case sizeType:
		return component.ParseSize(raw)
	case durationType:
		return time.ParseDuration(strings.TrimSpace(raw))
	}
	return nil, fmt.Errorf("unsupported type %s", t)
}

// positionParser reads CSS-like absolute positions.
type positionParser struct{}

func (positionParser) Kind() Kind                   { return KindPosition }
func (positionParser) Supports(t reflect.Type) bool { return t == positionType }

func (positionParser) Parse(raw string, _ reflect.Type, _ component.Component) (any, error) {
	return component.ParsePosition(raw)
}

// textParser serves any value type whose pointer implements
// encoding.TextUnmarshaler, time.Time being the common case.
type textParser struct{}

func (textParser) Kind() Kind { return KindText }

func (textParser) Supports(t reflect.Type) bool {
	return t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface && reflect.PointerTo(t).Implements(textUnmarshalerType)
}

func (textParser) Parse(raw string, t reflect.Type, _ component.Component) (any, error) {
	ptr := reflect.New(t)
	if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(raw)); err != nil {
		return nil, err
	}
	return ptr.Elem().Interface(), nil
}

// primitiveParser converts to strings, booleans and numbers through cty,
// which gives HCL's conversion rules: "true"/"false" for booleans and
// arbitrary-precision decimal parsing with range checks for numbers.
type primitiveParser struct{}

func (primitiveParser) Kind() Kind { return KindPrimitive }

func (primitiveParser) Supports(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Interface:
		return t.NumMethod() == 0
	}
	return false
}

func (primitiveParser) Parse(raw string, t reflect.Type, _ component.Component) (any, error) {
	if t.Kind() == reflect.Interface {
		return raw, nil
	}
	if t.Kind() != reflect.String {
		raw = strings.TrimSpace(raw)
	}
	ty, err := gocty.ImpliedType(reflect.Zero(t).Interface())
	if err != nil {
		return nil, err
	}
	val, err := convert.Convert(cty.StringVal(raw), ty)
	if err != nil {
		return nil, err
	}
	out := reflect.New(t)
	if err := gocty.FromCtyValue(val, out.Interface()); err != nil {
		return nil, err
	}
	return out.Elem().Interface(), nil
}
