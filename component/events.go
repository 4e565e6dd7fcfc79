package component

// ClickEvent is fired by a Button.
type ClickEvent struct {
	Source Component
}

// ValueChangeEvent is fired by fields when their value changes.
type ValueChangeEvent struct {
	Source Component
	Value  any
}

// ItemClickEvent is fired by a Table when a row is clicked.
type ItemClickEvent struct {
	Source Component
	ItemID any
}
