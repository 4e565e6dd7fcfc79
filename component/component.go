package component

import "slices"

// Component is a node of the assembled tree.
type Component interface {
	ID() string
	SetID(id string)
	Parent() Component
	// SetParent is called by containers when the component is attached or
	// detached. It does not add the component to the parent.
	SetParent(parent Component)
}

// HasComponents is a component with children that can be iterated.
type HasComponents interface {
	Component
	Components() []Component
}

// ComponentContainer holds any number of children. Only children of a
// ComponentContainer can carry parent-namespace attributes.
type ComponentContainer interface {
	HasComponents
	AddComponent(c Component)
	RemoveComponent(c Component)
}

// SingleComponentContainer holds at most one child.
type SingleComponentContainer interface {
	HasComponents
	SetContent(c Component)
	Content() Component
}

// Base carries the properties every widget shares. Widgets embed it.
type Base struct {
	id          string
	caption     string
	description string
	width       Size
	height      Size
	disabled    bool
	hidden      bool
	readOnly    bool
	styles      []string
	icon        Resource
	parent      Component
}

func (b *Base) ID() string                 { return b.id }
func (b *Base) SetID(id string)            { b.id = id }
func (b *Base) Parent() Component          { return b.parent }
func (b *Base) SetParent(parent Component) { b.parent = parent }

func (b *Base) Caption() string            { return b.caption }
func (b *Base) SetCaption(caption string)  { b.caption = caption }
func (b *Base) Description() string        { return b.description }
func (b *Base) SetDescription(text string) { b.description = text }

func (b *Base) Width() Size         { return b.width }
func (b *Base) SetWidth(size Size)  { b.width = size }
func (b *Base) Height() Size        { return b.height }
func (b *Base) SetHeight(size Size) { b.height = size }

// SetSizeFull makes the component fill its slot.
func (b *Base) SetSizeFull() {
	b.width = Full
	b.height = Full
}

// SetSizeUndefined lets the component size itself to its content.
func (b *Base) SetSizeUndefined() {
	b.width = Undefined
	b.height = Undefined
}

func (b *Base) Enabled() bool                 { return !b.disabled }
func (b *Base) SetEnabled(enabled bool)       { b.disabled = !enabled }
func (b *Base) Visible() bool                 { return !b.hidden }
func (b *Base) SetVisible(visible bool)       { b.hidden = !visible }
func (b *Base) ReadOnly() bool                { return b.readOnly }
func (b *Base) SetReadOnly(readOnly bool)     { b.readOnly = readOnly }
func (b *Base) Icon() Resource                { return b.icon }
func (b *Base) SetIcon(icon Resource)         { b.icon = icon }
func (b *Base) StyleNames() []string          { return slices.Clone(b.styles) }
func (b *Base) SetStyleName(styleName string) { b.styles = []string{styleName} }

// AddStyleName appends a style name unless it is already present.
func (b *Base) AddStyleName(styleName string) {
	if !slices.Contains(b.styles, styleName) {
		b.styles = append(b.styles, styleName)
	}
}

// SetIconAsURL sets an external icon from a plain URL.
//
// Deprecated: use SetIcon with a Resource.
func (b *Base) SetIconAsURL(url string) {
	b.icon = Resource{Kind: ExternalResource, Location: url}
}

// DeprecatedMethods lists the setters that layout authors should not reach
// when a better overload exists.
func (b *Base) DeprecatedMethods() []string {
	return []string{"SetIconAsURL"}
}
