// Package inflater assembles a component tree from a layout description.
//
// Inflation runs in three passes over the description:
//
//  1. Every element is constructed, or taken from the pre-supplied
//     instances by id, and its BeforeAttach handlers run. Elements are
//     visited depth-first, parents before children.
//  2. Children are attached to their parents.
//  3. The AfterAttach handlers of every non-root element run, so
//     parent-namespace attributes always see an attached child.
//
// An Inflater is not safe to reconfigure while Inflate is running.
package inflater

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/weave/component"
	"github.com/vk/weave/filter"
	"github.com/vk/weave/handler"
	"github.com/vk/weave/internal/ctxlog"
	"github.com/vk/weave/layout"
	"github.com/vk/weave/parser"
)

// ErrInflate matches every error returned by Inflate.
var ErrInflate = errors.New("inflation failed")

// Error locates an inflation failure in the description.
type Error struct {
	Type string
	ID   string
	Pos  layout.Pos
	Err  error
}

func (e *Error) Error() string {
	what := e.Type
	if e.ID != "" {
		what = fmt.Sprintf("%s %q", e.Type, e.ID)
	}
	return fmt.Sprintf("%s: %s: %v", e.Pos, what, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes every *Error match ErrInflate.
func (e *Error) Is(target error) bool { return target == ErrInflate }

// Option configures an Inflater.
type Option func(*Inflater)

// WithCatalog replaces the default component catalog.
func WithCatalog(c *component.Catalog) Option {
	return func(i *Inflater) { i.catalog = c }
}

// WithParsers replaces the default parser registry.
func WithParsers(r *parser.Registry) Option {
	return func(i *Inflater) { i.parsers = r }
}

// WithFilters appends filters to the chain, in the given order.
func WithFilters(filters ...filter.Filter) Option {
	return func(i *Inflater) { i.filters = append(i.filters, filters...) }
}

// WithHandlers appends handlers after the built-in ones. A handler claiming
// a namespace and phase already taken by a built-in is never used.
func WithHandlers(handlers ...handler.Handler) Option {
	return func(i *Inflater) { i.extra = append(i.extra, handlers...) }
}

// Inflater turns layout elements into components.
type Inflater struct {
	catalog  *component.Catalog
	parsers  *parser.Registry
	filters  filter.Chain
	extra    []handler.Handler
	handlers *handler.Set
}

// New returns an Inflater using the default catalog and the built-in
// parsers unless options say otherwise.
func New(opts ...Option) *Inflater {
	i := &Inflater{}
	for _, opt := range opts {
		opt(i)
	}
	if i.catalog == nil {
		i.catalog = component.Default()
	}
	if i.parsers == nil {
		i.parsers = parser.NewRegistry()
	}
	i.handlers = handler.NewSet(
		handler.NewDefault(i.parsers, i.filters),
		handler.NewParent(i.parsers, i.filters),
	)
	i.handlers.Add(i.extra...)
	return i
}

// Handlers returns the handler set used for inflation.
func (i *Inflater) Handlers() *handler.Set { return i.handlers }

// built pairs an element with the component made for it.
type built struct {
	el     *layout.Element
	node   component.Component
	isRoot bool
}

// Inflate builds the tree described by root. Components in presupplied are
// used in place of new instances for the elements carrying their id.
func (i *Inflater) Inflate(ctx context.Context, root *layout.Element, presupplied map[string]component.Component) (component.Component, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrInflate)
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Inflating layout.", "root", root.Type, "elements", root.Count(), "presupplied", len(presupplied))

	var order []built
	rootNode, err := i.construct(ctx, root, presupplied, &order)
	if err != nil {
		return nil, err
	}
	order[0].isRoot = true

	nodes := make(map[*layout.Element]component.Component, len(order))
	for _, b := range order {
		nodes[b.el] = b.node
	}
	for _, b := range order {
		if err := i.attachChildren(ctx, b, nodes); err != nil {
			return nil, err
		}
	}

	for _, b := range order {
		if b.isRoot {
			if len(b.el.Attributes.Group(layout.ParentNamespace)) > 0 {
				logger.Debug("Ignoring parent attributes of the root element.", "type", b.el.Type)
			}
			continue
		}
		if err := i.assign(ctx, b, handler.AfterAttach); err != nil {
			return nil, err
		}
	}

	logger.Debug("Layout inflated.", "root", root.Type)
	return rootNode, nil
}

// construct runs the first pass for el and its descendants, recording each
// element in visiting order.
func (i *Inflater) construct(ctx context.Context, el *layout.Element, presupplied map[string]component.Component, order *[]built) (component.Component, error) {
	node, err := i.instance(ctx, el, presupplied)
	if err != nil {
		return nil, &Error{Type: el.Type, ID: el.ID(), Pos: el.Pos, Err: err}
	}
	b := built{el: el, node: node}
	*order = append(*order, b)

	if err := i.assign(ctx, b, handler.BeforeAttach); err != nil {
		return nil, err
	}
	for _, child := range el.Children {
		if _, err := i.construct(ctx, child, presupplied, order); err != nil {
			return nil, err
		}
	}
	return node, nil
}

func (i *Inflater) instance(ctx context.Context, el *layout.Element, presupplied map[string]component.Component) (component.Component, error) {
	if id := el.ID(); id != "" {
		if node, ok := presupplied[id]; ok && node != nil {
			ctxlog.FromContext(ctx).Debug("Using pre-supplied component.", "id", id, "type", el.Type)
			return node, nil
		}
	}
	return i.catalog.New(el.Type)
}

// attachChildren adds the components of b's child elements to b's component.
func (i *Inflater) attachChildren(ctx context.Context, b built, nodes map[*layout.Element]component.Component) error {
	if len(b.el.Children) == 0 {
		return nil
	}
	children := make([]component.Component, 0, len(b.el.Children))
	for _, child := range b.el.Children {
		children = append(children, nodes[child])
	}

	fail := func(err error) error {
		return &Error{Type: b.el.Type, ID: b.el.ID(), Pos: b.el.Pos, Err: err}
	}
	switch parent := b.node.(type) {
	case component.ComponentContainer:
		for _, c := range children {
			parent.AddComponent(c)
		}
	case component.SingleComponentContainer:
		if len(children) > 1 {
			return fail(fmt.Errorf("holds a single component, %d children declared", len(children)))
		}
		parent.SetContent(children[0])
	default:
		return fail(fmt.Errorf("%T cannot hold children", b.node))
	}
	ctxlog.FromContext(ctx).Debug("Attached children.", "type", b.el.Type, "id", b.el.ID(), "children", len(children))
	return nil
}

// assign runs the handlers of phase for every namespace of b's element.
// Namespaces without a handler in that phase are skipped.
func (i *Inflater) assign(ctx context.Context, b built, phase handler.Phase) error {
	for _, ns := range b.el.Attributes.Namespaces() {
		h, ok := i.handlers.Lookup(ns, phase)
		if !ok {
			continue
		}
		if err := h.Assign(ctx, b.node, b.el.Attributes.Group(ns)); err != nil {
			return &Error{Type: b.el.Type, ID: b.el.ID(), Pos: b.el.Pos, Err: err}
		}
	}
	return nil
}
