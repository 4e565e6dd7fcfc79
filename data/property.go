package data

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrReadOnly is returned when writing to a read-only property.
	ErrReadOnly = errors.New("property is read-only")
	// ErrTypeMismatch is returned when a value does not fit the property type.
	ErrTypeMismatch = errors.New("value type does not match property type")
)

// Property is a single typed value holder.
type Property interface {
	Value() any
	SetValue(v any) error
	Type() reflect.Type
}

// PropertyViewer is implemented by components that display a Property.
type PropertyViewer interface {
	SetPropertyDataSource(p Property)
	PropertyDataSource() Property
}

// ObjectProperty is an in-memory Property.
type ObjectProperty struct {
	value     any
	typ       reflect.Type
	readOnly  bool
	listeners []func(Property)
}

// NewObjectProperty returns a property whose type is the dynamic type of v.
// A nil v yields a property of type any.
func NewObjectProperty(v any) *ObjectProperty {
	typ := reflect.TypeOf(v)
	if typ == nil {
		typ = reflect.TypeFor[any]()
	}
	return &ObjectProperty{value: v, typ: typ}
}

// NewTypedProperty returns a property of type t holding v.
func NewTypedProperty(t reflect.Type, v any) (*ObjectProperty, error) {
	p := &ObjectProperty{typ: t}
	if err := p.check(v); err != nil {
		return nil, err
	}
	p.value = v
	return p, nil
}

func (p *ObjectProperty) Value() any         { return p.value }
func (p *ObjectProperty) Type() reflect.Type { return p.typ }

// SetReadOnly toggles write protection.
func (p *ObjectProperty) SetReadOnly(readOnly bool) { p.readOnly = readOnly }

// ReadOnly reports whether SetValue is rejected.
func (p *ObjectProperty) ReadOnly() bool { return p.readOnly }

// SetValue stores v and notifies listeners.
func (p *ObjectProperty) SetValue(v any) error {
	if p.readOnly {
		return ErrReadOnly
	}
	if err := p.check(v); err != nil {
		return err
	}
	p.value = v
	for _, fn := range p.listeners {
		fn(p)
	}
	return nil
}

// AddValueChangeListener registers fn to be called after every SetValue.
func (p *ObjectProperty) AddValueChangeListener(fn func(Property)) {
	p.listeners = append(p.listeners, fn)
}

func (p *ObjectProperty) check(v any) error {
	if v == nil {
		return nil
	}
	if vt := reflect.TypeOf(v); !vt.AssignableTo(p.typ) {
		return fmt.Errorf("%w: %s is not assignable to %s", ErrTypeMismatch, vt, p.typ)
	}
	return nil
}

func (p *ObjectProperty) String() string {
	return fmt.Sprint(p.value)
}
