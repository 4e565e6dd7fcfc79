package component

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// ErrUnknownType is returned for type tokens that were never registered.
var ErrUnknownType = errors.New("unknown component type")

// Factory constructs a fresh component.
type Factory func() Component

// Catalog maps type tokens used in layout descriptions to factories.
type Catalog struct {
	factories map[string]Factory
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{factories: make(map[string]Factory)}
}

// Default returns a new catalog holding every widget of this package.
func Default() *Catalog {
	c := NewCatalog()
	c.Register("VerticalLayout", func() Component { return NewVerticalLayout() })
	c.Register("HorizontalLayout", func() Component { return NewHorizontalLayout() })
	c.Register("AbsoluteLayout", func() Component { return NewAbsoluteLayout() })
	c.Register("Panel", func() Component { return NewPanel() })
	c.Register("Label", func() Component { return NewLabel() })
	c.Register("Button", func() Component { return NewButton() })
	c.Register("TextField", func() Component { return NewTextField() })
	c.Register("CheckBox", func() Component { return NewCheckBox() })
	c.Register("DateField", func() Component { return NewDateField() })
	c.Register("Table", func() Component { return NewTable() })
	c.Register("Form", func() Component { return NewForm() })
	return c
}

// Register adds a factory under token. Registering the same token twice
// panics.
func (c *Catalog) Register(token string, factory Factory) {
	if _, exists := c.factories[token]; exists {
		panic(fmt.Sprintf("component type '%s' already registered", token))
	}
	slog.Debug("Registering component type.", "type", token)
	c.factories[token] = factory
}

// New constructs the component registered under token.
func (c *Catalog) New(token string) (Component, error) {
	factory, ok := c.factories[token]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, token)
	}
	comp := factory()
	if comp == nil {
		return nil, fmt.Errorf("factory for %q returned no component", token)
	}
	return comp, nil
}

// Has reports whether token is registered.
func (c *Catalog) Has(token string) bool {
	_, ok := c.factories[token]
	return ok
}

// Tokens lists registered tokens in lexical order.
func (c *Catalog) Tokens() []string {
	tokens := make([]string, 0, len(c.factories))
	for token := range c.factories {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}
