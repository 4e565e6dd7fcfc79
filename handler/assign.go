package handler

import (
	"fmt"
	"reflect"

	"github.com/vk/weave/filter"
	"github.com/vk/weave/internal/reflectutil"
	"github.com/vk/weave/parser"
)

// assigner resolves setters and pushes converted values through the filter
// chain. Default and Parent share it.
type assigner struct {
	parsers *parser.Registry
	filters filter.Chain
}

// writeMethod picks the setter for property on target.
func (a *assigner) writeMethod(target any, property string, shape reflectutil.Shape) (reflect.Method, bool) {
	methods := reflectutil.FindMethods(reflect.TypeOf(target), reflectutil.SetterName(property), shape)
	return reflectutil.Preferred(target, methods, func(m reflect.Method) bool {
		t := shape.ValueType(m)
		return t != nil && a.parsers.Specialized(t)
	})
}

// invoke calls m on target with lead (may be invalid) and value. Panics
// raised by reflection or by the setter become errors.
func invoke(target any, m reflect.Method, lead reflect.Value, value any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("setter panicked: %v", r)
		}
	}()

	args := []reflect.Value{reflect.ValueOf(target)}
	if lead.IsValid() {
		args = append(args, lead)
	}
	if n := m.Type.NumIn(); len(args) < n {
		v, convErr := argument(value, m.Type.In(n-1))
		if convErr != nil {
			return convErr
		}
		args = append(args, v)
	}

	out := m.Func.Call(args)
	if len(out) == 1 && !out[0].IsNil() {
		return out[0].Interface().(error)
	}
	return nil
}

// argument adapts a filtered value to the parameter type t.
func argument(value any, t reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(t), nil
	}
	v := reflect.ValueOf(value)
	switch {
	case v.Type().AssignableTo(t):
		return v, nil
	case v.Type().ConvertibleTo(t):
		return v.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("value of type %s cannot be passed as %s", v.Type(), t)
}
