package component

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNotChild is returned by layout setters addressing a component that is
// not a child of the layout.
var ErrNotChild = errors.New("component is not a child of this layout")

// childList is the child bookkeeping shared by multi-child layouts.
type childList struct {
	owner    Component
	children []Component
}

func (l *childList) add(c Component) {
	if old, ok := c.Parent().(ComponentContainer); ok && old != l.owner {
		old.RemoveComponent(c)
	}
	c.SetParent(l.owner)
	l.children = append(l.children, c)
}

func (l *childList) remove(c Component) bool {
	i := slices.Index(l.children, c)
	if i < 0 {
		return false
	}
	l.children = slices.Delete(l.children, i, i+1)
	c.SetParent(nil)
	return true
}

func (l *childList) contains(c Component) bool { return slices.Contains(l.children, c) }

// OrderedLayout lays out children in a single row or column.
type OrderedLayout struct {
	Base
	childList
	spacing    bool
	margin     bool
	alignments map[Component]Alignment
	ratios     map[Component]float64
	horizontal bool
}

// VerticalLayout stacks children top to bottom.
type VerticalLayout struct{ OrderedLayout }

// HorizontalLayout places children left to right.
type HorizontalLayout struct{ OrderedLayout }

// NewVerticalLayout returns an empty vertical layout.
func NewVerticalLayout() *VerticalLayout {
	l := &VerticalLayout{}
	l.init(l, false)
	return l
}

// NewHorizontalLayout returns an empty horizontal layout.
func NewHorizontalLayout() *HorizontalLayout {
	l := &HorizontalLayout{}
	l.init(l, true)
	l.spacing = true
	return l
}

func (l *OrderedLayout) init(owner Component, horizontal bool) {
	l.owner = owner
	l.horizontal = horizontal
	l.alignments = make(map[Component]Alignment)
	l.ratios = make(map[Component]float64)
}

func (l *OrderedLayout) AddComponent(c Component) { l.add(c) }

func (l *OrderedLayout) RemoveComponent(c Component) {
	if l.remove(c) {
		delete(l.alignments, c)
		delete(l.ratios, c)
	}
}

func (l *OrderedLayout) Components() []Component { return slices.Clone(l.children) }

func (l *OrderedLayout) Horizontal() bool        { return l.horizontal }
func (l *OrderedLayout) Spacing() bool           { return l.spacing }
func (l *OrderedLayout) SetSpacing(enabled bool) { l.spacing = enabled }
func (l *OrderedLayout) Margin() bool            { return l.margin }
func (l *OrderedLayout) SetMargin(enabled bool)  { l.margin = enabled }

// SetComponentAlignment aligns child c inside its slot.
func (l *OrderedLayout) SetComponentAlignment(c Component, alignment Alignment) error {
	if !l.contains(c) {
		return fmt.Errorf("%w: %q", ErrNotChild, c.ID())
	}
	l.alignments[c] = alignment
	return nil
}

// ComponentAlignment returns the alignment of c, TopLeft by default.
func (l *OrderedLayout) ComponentAlignment(c Component) Alignment {
	if a, ok := l.alignments[c]; ok {
		return a
	}
	return TopLeft
}

// SetExpandRatio sets how much of the spare space c receives.
func (l *OrderedLayout) SetExpandRatio(c Component, ratio float64) error {
	if !l.contains(c) {
		return fmt.Errorf("%w: %q", ErrNotChild, c.ID())
	}
	if ratio < 0 {
		return fmt.Errorf("expand ratio must not be negative, got %v", ratio)
	}
	l.ratios[c] = ratio
	return nil
}

func (l *OrderedLayout) ExpandRatio(c Component) float64 { return l.ratios[c] }

// AbsoluteLayout places children at explicit offsets.
type AbsoluteLayout struct {
	Base
	childList
	positions map[Component]Position
}

// NewAbsoluteLayout returns an empty absolute layout.
func NewAbsoluteLayout() *AbsoluteLayout {
	l := &AbsoluteLayout{positions: make(map[Component]Position)}
	l.owner = l
	return l
}

func (l *AbsoluteLayout) AddComponent(c Component) { l.add(c) }

func (l *AbsoluteLayout) RemoveComponent(c Component) {
	if l.remove(c) {
		delete(l.positions, c)
	}
}

func (l *AbsoluteLayout) Components() []Component { return slices.Clone(l.children) }

// SetPosition places child c.
func (l *AbsoluteLayout) SetPosition(c Component, position Position) error {
	if !l.contains(c) {
		return fmt.Errorf("%w: %q", ErrNotChild, c.ID())
	}
	l.positions[c] = position
	return nil
}

// Position returns where c is placed and whether a position was set.
func (l *AbsoluteLayout) Position(c Component) (Position, bool) {
	p, ok := l.positions[c]
	return p, ok
}

// Panel frames a single content component.
type Panel struct {
	Base
	content    Component
	scrollable bool
}

// NewPanel returns an empty panel.
func NewPanel() *Panel { return &Panel{} }

// SetContent replaces the content of the panel.
func (p *Panel) SetContent(c Component) {
	if p.content != nil {
		p.content.SetParent(nil)
	}
	p.content = c
	if c != nil {
		c.SetParent(p)
	}
}

func (p *Panel) Content() Component { return p.content }

func (p *Panel) Components() []Component {
	if p.content == nil {
		return nil
	}
	return []Component{p.content}
}

func (p *Panel) Scrollable() bool              { return p.scrollable }
func (p *Panel) SetScrollable(scrollable bool) { p.scrollable = scrollable }
