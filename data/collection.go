package data

import "reflect"

// Collection is an ordered set of items sharing the same property ids.
type Collection interface {
	ItemIDs() []any
	Item(id any) Item
	AddItem() any
	AddCollectionProperty(id any, t reflect.Type, defaultValue any) bool
	CollectionPropertyIDs() []any
	Size() int
}

// CollectionViewer is implemented by components that display a Collection.
type CollectionViewer interface {
	SetCollectionDataSource(c Collection)
	CollectionDataSource() Collection
}

type column struct {
	id  any
	typ reflect.Type
	def any
}

// IndexedCollection is an in-memory Collection with integer item ids
// starting at 1.
type IndexedCollection struct {
	columns []column
	ids     []any
	items   map[any]*PropertysetItem
	next    int
}

// NewIndexedCollection returns an empty collection.
func NewIndexedCollection() *IndexedCollection {
	return &IndexedCollection{items: make(map[any]*PropertysetItem), next: 1}
}

// AddCollectionProperty declares a column. Existing items receive the
// default value.
func (c *IndexedCollection) AddCollectionProperty(id any, t reflect.Type, defaultValue any) bool {
	for _, col := range c.columns {
		if col.id == id {
			return false
		}
	}
	col := column{id: id, typ: t, def: defaultValue}
	c.columns = append(c.columns, col)
	for _, item := range c.items {
		item.AddItemProperty(id, newColumnProperty(col))
	}
	return true
}

// AddItem appends an item filled with column defaults and returns its id.
func (c *IndexedCollection) AddItem() any {
	id := c.next
	c.next++
	item := NewPropertysetItem()
	for _, col := range c.columns {
		item.AddItemProperty(col.id, newColumnProperty(col))
	}
	c.ids = append(c.ids, id)
	c.items[id] = item
	return id
}

func (c *IndexedCollection) Item(id any) Item {
	item, ok := c.items[id]
	if !ok {
		return nil
	}
	return item
}

func (c *IndexedCollection) ItemIDs() []any {
	return append([]any(nil), c.ids...)
}

func (c *IndexedCollection) CollectionPropertyIDs() []any {
	ids := make([]any, 0, len(c.columns))
	for _, col := range c.columns {
		ids = append(ids, col.id)
	}
	return ids
}

func (c *IndexedCollection) Size() int { return len(c.ids) }

func newColumnProperty(col column) Property {
	p, err := NewTypedProperty(col.typ, col.def)
	if err != nil {
		// A default that does not fit its column is a programming error.
		panic(err)
	}
	return p
}
