// Package weave assembles component trees from layout descriptions and binds
// them to controllers.
//
// A build reads one description, discovers the controller's bindings,
// inflates the tree with the pre-supplied components slotted in and finally
// binds data sources, handlers and fields. Errors from the inflation phase
// match inflater.ErrInflate and errors from the binding phase match
// binder.ErrBinding.
package weave

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/vk/weave/binder"
	"github.com/vk/weave/component"
	"github.com/vk/weave/filter"
	"github.com/vk/weave/handler"
	"github.com/vk/weave/inflater"
	"github.com/vk/weave/internal/ctxlog"
	"github.com/vk/weave/layout"
	"github.com/vk/weave/parser"
)

// Builder collects the inputs of one build. A Builder is not safe for
// concurrent use.
type Builder struct {
	load       func() (*layout.Element, error)
	controller any
	filters    []filter.Filter
	handlers   []handler.Handler
	parsers    []parser.Parser
	prepended  []parser.Parser
	catalog    *component.Catalog
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// ReadFromFile reads the description from path. The format follows the file
// extension.
func (b *Builder) ReadFromFile(path string) *Builder {
	b.load = func() (*layout.Element, error) { return layout.Load(path) }
	return b
}

// ReadFromFS reads the description name from fsys.
func (b *Builder) ReadFromFS(fsys fs.FS, name string) *Builder {
	b.load = func() (*layout.Element, error) { return layout.LoadFS(fsys, name) }
	return b
}

// ReadFromStream reads the description from r.
func (b *Builder) ReadFromStream(r io.Reader, format layout.Format) *Builder {
	b.load = func() (*layout.Element, error) { return layout.Read(r, "", format) }
	return b
}

// BindTo sets the controller. A nil controller builds the tree unbound.
func (b *Builder) BindTo(controller any) *Builder {
	b.controller = controller
	return b
}

// AddFilters appends attribute filters.
func (b *Builder) AddFilters(filters ...filter.Filter) *Builder {
	b.filters = append(b.filters, filters...)
	return b
}

// AddHandlers appends namespace handlers after the built-in ones.
func (b *Builder) AddHandlers(handlers ...handler.Handler) *Builder {
	b.handlers = append(b.handlers, handlers...)
	return b
}

// AddParsers appends parsers after the built-in ones. They are consulted
// only for types no built-in parser supports.
func (b *Builder) AddParsers(parsers ...parser.Parser) *Builder {
	b.parsers = append(b.parsers, parsers...)
	return b
}

// PrependParsers puts parsers in front of the built-in ones, so they take
// over every type they support.
func (b *Builder) PrependParsers(parsers ...parser.Parser) *Builder {
	b.prepended = append(b.prepended, parsers...)
	return b
}

// WithCatalog replaces the default component catalog.
func (b *Builder) WithCatalog(c *component.Catalog) *Builder {
	b.catalog = c
	return b
}

// Build reads the description and returns the bound tree.
func (b *Builder) Build(ctx context.Context) (component.Component, error) {
	if b.load == nil {
		return nil, fmt.Errorf("%w: no layout source configured", inflater.ErrInflate)
	}
	logger := ctxlog.FromContext(ctx)

	root, err := b.load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", inflater.ErrInflate, err)
	}
	logger.Debug("Layout loaded.", "root", root.Type, "elements", root.Count())

	bindings, err := binder.Discover(ctx, b.controller)
	if err != nil {
		return nil, err
	}

	registry := parser.NewRegistry()
	registry.Prepend(b.prepended...)
	registry.Register(b.parsers...)
	opts := []inflater.Option{
		inflater.WithParsers(registry),
		inflater.WithFilters(b.filters...),
		inflater.WithHandlers(b.handlers...),
	}
	if b.catalog != nil {
		opts = append(opts, inflater.WithCatalog(b.catalog))
	}

	tree, err := inflater.New(opts...).Inflate(ctx, root, bindings.Presupplied())
	if err != nil {
		return nil, err
	}
	if err := bindings.Bind(ctx, tree); err != nil {
		return nil, err
	}
	logger.Debug("Tree built.", "root", root.Type)
	return tree, nil
}

// Create builds the tree described in r and binds it to controller.
func Create(ctx context.Context, r io.Reader, format layout.Format, controller any, filters ...filter.Filter) (component.Component, error) {
	return New().ReadFromStream(r, format).BindTo(controller).AddFilters(filters...).Build(ctx)
}

// FindByID returns the first component under root whose id is id.
func FindByID(root component.Component, id string) (component.Component, bool) {
	return component.FindByID(root, id)
}

// IsInflateError reports whether err comes from reading or inflating the
// description.
func IsInflateError(err error) bool { return errors.Is(err, inflater.ErrInflate) }

// IsBindingError reports whether err comes from binding the controller.
func IsBindingError(err error) bool { return errors.Is(err, binder.ErrBinding) }
