package binder

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/vk/weave/component"
	"github.com/vk/weave/data"
	"github.com/vk/weave/internal/ctxlog"
)

// TagName is the struct tag naming the component a field receives.
const TagName = "ui"

var (
	componentType = reflect.TypeFor[component.Component]()
	errorType     = reflect.TypeFor[error]()
)

type fieldBinding struct {
	id    string
	name  string
	field reflect.Value
}

type dataSourceBinding struct {
	marker Marker
	source any
}

type handlerBinding struct {
	marker Marker
	event  reflect.Type
	fn     reflect.Value
}

// Bindings is the result of discovering a controller. It is bound once the
// tree exists.
type Bindings struct {
	controller  any
	presupplied map[string]component.Component
	fields      []fieldBinding
	dataSources []dataSourceBinding
	handlers    []handlerBinding
}

// Discover inspects controller and calls each of its data-source methods
// once. A nil controller yields empty bindings.
func Discover(ctx context.Context, controller any) (*Bindings, error) {
	b := &Bindings{presupplied: make(map[string]component.Component)}
	if isNil(controller) {
		return b, nil
	}
	b.controller = controller
	logger := ctxlog.FromContext(ctx).With("controller", reflect.TypeOf(controller).String())

	if err := b.discoverFields(reflect.ValueOf(controller)); err != nil {
		return nil, err
	}

	c, ok := controller.(Controller)
	if !ok {
		logger.Debug("Controller declares no markers.")
		return b, nil
	}
	v := reflect.ValueOf(controller)
	for _, m := range c.UIMarkers() {
		if m.ID == "" {
			return nil, &Error{Member: m.Method, Err: fmt.Errorf("%w: empty id", ErrInvalidMarker)}
		}
		method := v.MethodByName(m.Method)
		if !method.IsValid() {
			return nil, &Error{ID: m.ID, Member: m.Method, Err: fmt.Errorf("%w: %T has no exported method %s", ErrInvalidMarker, controller, m.Method)}
		}
		switch m.Kind {
		case KindDataSource:
			source, err := callDataSource(method)
			if err != nil {
				return nil, &Error{ID: m.ID, Member: m.Method, Err: err}
			}
			logger.Debug("Data source resolved.", "id", m.ID, "method", m.Method, "source", fmt.Sprintf("%T", source))
			b.dataSources = append(b.dataSources, dataSourceBinding{marker: m, source: source})
		case KindHandler:
			event, err := handlerEvent(method.Type())
			if err != nil {
				return nil, &Error{ID: m.ID, Member: m.Method, Err: err}
			}
			b.handlers = append(b.handlers, handlerBinding{marker: m, event: event, fn: method})
		default:
			return nil, &Error{ID: m.ID, Member: m.Method, Err: fmt.Errorf("%w: unknown kind %s", ErrInvalidMarker, m.Kind)}
		}
	}
	return b, nil
}

func (b *Bindings) discoverFields(v reflect.Value) error {
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil
	}
	v = v.Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		id, ok := sf.Tag.Lookup(TagName)
		if !ok {
			continue
		}
		id = strings.TrimSpace(id)
		if id == "" || !sf.IsExported() || !sf.Type.Implements(componentType) {
			return &Error{ID: id, Member: sf.Name, Err: fmt.Errorf("%w: field must be exported, tagged with an id and hold a component", ErrInvalidMarker)}
		}
		field := v.Field(i)
		if !field.IsNil() {
			b.presupplied[id] = field.Interface().(component.Component)
			continue
		}
		b.fields = append(b.fields, fieldBinding{id: id, name: sf.Name, field: field})
	}
	return nil
}

// callDataSource invokes a func() T or func() (T, error) method and checks
// that the result can serve as a data source.
func callDataSource(method reflect.Value) (any, error) {
	mt := method.Type()
	if mt.NumIn() != 0 || mt.NumOut() < 1 || mt.NumOut() > 2 || mt.NumOut() == 2 && mt.Out(1) != errorType {
		return nil, fmt.Errorf("%w: data source must be func() T or func() (T, error), got %s", ErrInvalidMarker, mt)
	}
	out := method.Call(nil)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	if isNil(out[0].Interface()) {
		return nil, fmt.Errorf("%w: method returned nil", ErrNotDataBearing)
	}
	source := out[0].Interface()
	switch source.(type) {
	case data.Property, data.Item, data.Collection:
		return source, nil
	}
	return nil, fmt.Errorf("%w: %T is neither a property, an item nor a collection", ErrNotDataBearing, source)
}

func handlerEvent(mt reflect.Type) (reflect.Type, error) {
	if mt.NumIn() != 1 || mt.NumOut() > 1 || mt.NumOut() == 1 && mt.Out(0) != errorType {
		return nil, fmt.Errorf("%w: handler must take one event and return nothing or an error, got %s", ErrInvalidMarker, mt)
	}
	return mt.In(0), nil
}

// Presupplied returns the components already held by tagged fields, keyed
// by id.
func (b *Bindings) Presupplied() map[string]component.Component {
	out := make(map[string]component.Component, len(b.presupplied))
	for id, c := range b.presupplied {
		out[id] = c
	}
	return out
}

// Bind applies the bindings to the tree under root. It does nothing for a
// nil controller.
func (b *Bindings) Bind(ctx context.Context, root component.Component) error {
	if b == nil || b.controller == nil {
		return nil
	}
	logger := ctxlog.FromContext(ctx).With("controller", reflect.TypeOf(b.controller).String())

	for _, f := range b.fields {
		node, ok := component.FindByID(root, f.id)
		if !ok {
			return &Error{ID: f.id, Member: f.name, Err: ErrNodeNotFound}
		}
		nv := reflect.ValueOf(node)
		if !nv.Type().AssignableTo(f.field.Type()) {
			return &Error{ID: f.id, Member: f.name, Err: fmt.Errorf("%w: %T does not fit field of type %s", ErrInvalidMarker, node, f.field.Type())}
		}
		f.field.Set(nv)
		logger.Debug("Field bound.", "id", f.id, "field", f.name)
	}

	for _, ds := range b.dataSources {
		node, ok := component.FindByID(root, ds.marker.ID)
		if !ok {
			return &Error{ID: ds.marker.ID, Member: ds.marker.Method, Err: ErrNodeNotFound}
		}
		if err := install(node, ds.source); err != nil {
			return &Error{ID: ds.marker.ID, Member: ds.marker.Method, Err: err}
		}
		logger.Debug("Data source bound.", "id", ds.marker.ID, "method", ds.marker.Method)
	}

	for _, h := range b.handlers {
		node, ok := component.FindByID(root, h.marker.ID)
		if !ok {
			return &Error{ID: h.marker.ID, Member: h.marker.Method, Err: ErrNodeNotFound}
		}
		if err := listen(ctx, node, h); err != nil {
			return &Error{ID: h.marker.ID, Member: h.marker.Method, Err: err}
		}
		logger.Debug("Handler bound.", "id", h.marker.ID, "method", h.marker.Method, "event", h.event.String())
	}
	return nil
}

// install hands source to the viewer interface of node that accepts it.
func install(node component.Component, source any) error {
	if c, ok := source.(data.Collection); ok {
		if v, ok := node.(data.CollectionViewer); ok {
			v.SetCollectionDataSource(c)
			return nil
		}
	}
	if item, ok := source.(data.Item); ok {
		if v, ok := node.(data.ItemViewer); ok {
			v.SetItemDataSource(item)
			return nil
		}
	}
	if p, ok := source.(data.Property); ok {
		if v, ok := node.(data.PropertyViewer); ok {
			v.SetPropertyDataSource(p)
			return nil
		}
	}
	return fmt.Errorf("%w: %T cannot display %T", ErrNotDataBearing, node, source)
}

// listen registers h through the first Add...Listener(func(E)) method of
// node whose E is the handler's event type.
func listen(ctx context.Context, node component.Component, h handlerBinding) error {
	nv := reflect.ValueOf(node)
	nt := nv.Type()
	for i := 0; i < nt.NumMethod(); i++ {
		m := nt.Method(i)
		if !strings.HasPrefix(m.Name, "Add") || !strings.HasSuffix(m.Name, "Listener") {
			continue
		}
		if m.Type.NumIn() != 2 || m.Type.NumOut() != 0 {
			continue
		}
		fnType := m.Type.In(1)
		if fnType.Kind() != reflect.Func || fnType.NumIn() != 1 || fnType.NumOut() != 0 || fnType.In(0) != h.event {
			continue
		}
		listener := reflect.MakeFunc(fnType, func(args []reflect.Value) []reflect.Value {
			out := h.fn.Call(args)
			if len(out) == 1 && !out[0].IsNil() {
				ctxlog.FromContext(ctx).Error("Event handler failed.", "id", h.marker.ID, "method", h.marker.Method, "error", out[0].Interface())
			}
			return nil
		})
		nv.Method(i).Call([]reflect.Value{listener})
		return nil
	}
	return fmt.Errorf("%w: %T has no listener for %s", ErrNoListener, node, h.event)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
