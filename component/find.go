package component

// FindByID searches the tree under root depth-first and returns the first
// component whose id equals id. Only root itself is checked when it has no
// children.
//
// A nil root or an empty id is a programming error and panics.
func FindByID(root Component, id string) (Component, bool) {
	if id == "" {
		panic("component: id must not be empty")
	}
	if root == nil {
		panic("component: root must not be nil")
	}
	var found Component
	Walk(root, func(c Component) bool {
		if c.ID() == id {
			found = c
			return false
		}
		return true
	})
	return found, found != nil
}

// Walk visits root and its descendants in pre-order. Returning false from fn
// stops the walk.
func Walk(root Component, fn func(c Component) bool) bool {
	if !fn(root) {
		return false
	}
	if container, ok := root.(HasComponents); ok {
		for _, child := range container.Components() {
			if !Walk(child, fn) {
				return false
			}
		}
	}
	return true
}

// Depth returns how many ancestors c has.
func Depth(c Component) int {
	depth := 0
	for p := c.Parent(); p != nil; p = p.Parent() {
		depth++
	}
	return depth
}
