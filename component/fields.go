package component

import (
	"fmt"
	"time"

	"github.com/vk/weave/data"
)

// Label displays a read-only text, optionally backed by a Property.
type Label struct {
	Base
	value  string
	mode   ContentMode
	source data.Property
}

// NewLabel returns an empty label.
func NewLabel() *Label { return &Label{} }

// Value returns the property value when a data source is set.
func (l *Label) Value() string {
	if l.source != nil {
		return fmt.Sprint(l.source.Value())
	}
	return l.value
}

func (l *Label) SetValue(value string)                 { l.value = value }
func (l *Label) ContentMode() ContentMode              { return l.mode }
func (l *Label) SetContentMode(mode ContentMode)       { l.mode = mode }
func (l *Label) SetPropertyDataSource(p data.Property) { l.source = p }
func (l *Label) PropertyDataSource() data.Property     { return l.source }

// Button fires ClickEvents.
type Button struct {
	Base
	listeners      []func(ClickEvent)
	disableOnClick bool
}

// NewButton returns a button without listeners.
func NewButton() *Button { return &Button{} }

// AddClickListener registers fn for clicks.
func (b *Button) AddClickListener(fn func(ClickEvent)) {
	b.listeners = append(b.listeners, fn)
}

func (b *Button) SetDisableOnClick(disable bool) { b.disableOnClick = disable }
func (b *Button) DisableOnClick() bool           { return b.disableOnClick }

// Click simulates a user click. Disabled buttons ignore it.
func (b *Button) Click() {
	if !b.Enabled() {
		return
	}
	if b.disableOnClick {
		b.SetEnabled(false)
	}
	event := ClickEvent{Source: b}
	for _, fn := range b.listeners {
		fn(event)
	}
}

// Field is the value-holding part shared by input widgets. The owning widget
// is passed in so events name the widget rather than the embedded Field.
type Field struct {
	Base
	self      Component
	source    data.Property
	listeners []func(ValueChangeEvent)
	required  bool
}

func (f *Field) SetPropertyDataSource(p data.Property) { f.source = p }
func (f *Field) PropertyDataSource() data.Property     { return f.source }
func (f *Field) Required() bool                        { return f.required }
func (f *Field) SetRequired(required bool)             { f.required = required }

// AddValueChangeListener registers fn for value changes.
func (f *Field) AddValueChangeListener(fn func(ValueChangeEvent)) {
	f.listeners = append(f.listeners, fn)
}

// store writes v into the data source when there is one and fires a
// ValueChangeEvent. local is updated by the caller only when it returns true.
func (f *Field) store(v any) (bool, error) {
	if f.ReadOnly() {
		return false, data.ErrReadOnly
	}
	if f.source != nil {
		if err := f.source.SetValue(v); err != nil {
			return false, err
		}
	}
	event := ValueChangeEvent{Source: f.self, Value: v}
	for _, fn := range f.listeners {
		fn(event)
	}
	return f.source == nil, nil
}

func (f *Field) load() (any, bool) {
	if f.source == nil {
		return nil, false
	}
	return f.source.Value(), true
}

// TextField edits a string.
type TextField struct {
	Field
	value     string
	maxLength int
	prompt    string
}

// NewTextField returns an empty text field.
func NewTextField() *TextField {
	t := &TextField{maxLength: -1}
	t.self = t
	return t
}

func (t *TextField) Value() string {
	if v, ok := t.load(); ok {
		if s, isString := v.(string); isString {
			return s
		}
		return fmt.Sprint(v)
	}
	return t.value
}

// SetValue stores value, honouring the maximum length.
func (t *TextField) SetValue(value string) error {
	if t.maxLength >= 0 && len(value) > t.maxLength {
		return fmt.Errorf("value is longer than %d characters", t.maxLength)
	}
	local, err := t.store(value)
	if err != nil {
		return err
	}
	if local {
		t.value = value
	}
	return nil
}

func (t *TextField) MaxLength() int               { return t.maxLength }
func (t *TextField) SetMaxLength(maxLength int)   { t.maxLength = maxLength }
func (t *TextField) InputPrompt() string          { return t.prompt }
func (t *TextField) SetInputPrompt(prompt string) { t.prompt = prompt }

// CheckBox edits a bool.
type CheckBox struct {
	Field
	value bool
}

// NewCheckBox returns an unchecked check box.
func NewCheckBox() *CheckBox {
	c := &CheckBox{}
	c.self = c
	return c
}

func (c *CheckBox) Value() bool {
	if v, ok := c.load(); ok {
		b, _ := v.(bool)
		return b
	}
	return c.value
}

func (c *CheckBox) SetValue(value bool) error {
	local, err := c.store(value)
	if err != nil {
		return err
	}
	if local {
		c.value = value
	}
	return nil
}

// DateField edits a time.
type DateField struct {
	Field
	value      time.Time
	format     string
	resolution Resolution
}

// NewDateField returns a date field with day resolution.
func NewDateField() *DateField {
	d := &DateField{format: time.DateOnly}
	d.self = d
	return d
}

func (d *DateField) Value() time.Time {
	if v, ok := d.load(); ok {
		t, _ := v.(time.Time)
		return t
	}
	return d.value
}

func (d *DateField) SetValue(value time.Time) error {
	local, err := d.store(value)
	if err != nil {
		return err
	}
	if local {
		d.value = value
	}
	return nil
}

func (d *DateField) DateFormat() string                  { return d.format }
func (d *DateField) SetDateFormat(format string)         { d.format = format }
func (d *DateField) Resolution() Resolution              { return d.resolution }
func (d *DateField) SetResolution(resolution Resolution) { d.resolution = resolution }

// Table shows a Collection row by row.
type Table struct {
	Base
	source     data.Collection
	pageLength int
	selectable bool
	listeners  []func(ItemClickEvent)
}

// NewTable returns a table with the default page length of 15 rows.
func NewTable() *Table { return &Table{pageLength: 15} }

func (t *Table) SetCollectionDataSource(c data.Collection) { t.source = c }
func (t *Table) CollectionDataSource() data.Collection     { return t.source }
func (t *Table) PageLength() int                           { return t.pageLength }
func (t *Table) SetPageLength(rows int)                    { t.pageLength = rows }
func (t *Table) Selectable() bool                          { return t.selectable }
func (t *Table) SetSelectable(selectable bool)             { t.selectable = selectable }

// AddItemClickListener registers fn for row clicks.
func (t *Table) AddItemClickListener(fn func(ItemClickEvent)) {
	t.listeners = append(t.listeners, fn)
}

// ClickItem simulates a click on the row with itemID.
func (t *Table) ClickItem(itemID any) {
	event := ItemClickEvent{Source: t, ItemID: itemID}
	for _, fn := range t.listeners {
		fn(event)
	}
}

// Form shows the properties of a single Item.
type Form struct {
	Base
	item data.Item
}

// NewForm returns a form without an item.
func NewForm() *Form { return &Form{} }

func (f *Form) SetItemDataSource(item data.Item) { f.item = item }
func (f *Form) ItemDataSource() data.Item        { return f.item }
