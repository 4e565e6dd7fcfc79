package data

// Item is a record of properties addressed by property id.
type Item interface {
	ItemProperty(id any) Property
	ItemPropertyIDs() []any
}

// ItemViewer is implemented by components that display an Item.
type ItemViewer interface {
	SetItemDataSource(item Item)
	ItemDataSource() Item
}

// PropertysetItem keeps its properties in insertion order.
type PropertysetItem struct {
	ids   []any
	props map[any]Property
}

// NewPropertysetItem returns an empty item.
func NewPropertysetItem() *PropertysetItem {
	return &PropertysetItem{props: make(map[any]Property)}
}

// AddItemProperty adds p under id. It reports false if id is already taken.
func (i *PropertysetItem) AddItemProperty(id any, p Property) bool {
	if _, exists := i.props[id]; exists {
		return false
	}
	i.ids = append(i.ids, id)
	i.props[id] = p
	return true
}

func (i *PropertysetItem) ItemProperty(id any) Property {
	return i.props[id]
}

func (i *PropertysetItem) ItemPropertyIDs() []any {
	return append([]any(nil), i.ids...)
}
