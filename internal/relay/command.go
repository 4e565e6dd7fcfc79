package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/vk/weave/component"
	"github.com/vk/weave/handler"
	"github.com/vk/weave/layout"
	"github.com/vk/weave/parser"
)

// Event kinds a Command can carry.
const (
	EventClick = "click"
	EventValue = "value"
	EventItem  = "item"
)

var ErrUnsupportedEvent = errors.New("unsupported event")

// Command asks for an event to be fired on the component with ID.
type Command struct {
	ID    string `json:"id"`
	Event string `json:"event"`
	Value string `json:"value,omitempty"`
}

// Decode reads a Command from the arguments of a socket.io event. The first
// argument may be a JSON string, raw bytes or an already decoded object.
func Decode(args ...any) (Command, error) {
	var cmd Command
	if len(args) == 0 {
		return cmd, errors.New("event carries no payload")
	}
	var raw []byte
	switch v := args[0].(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return cmd, fmt.Errorf("failed to encode payload: %w", err)
		}
		raw = b
	}
	if err := json.Unmarshal(raw, &cmd); err != nil {
		return cmd, fmt.Errorf("failed to decode payload: %w", err)
	}
	if cmd.ID == "" {
		return cmd, errors.New("payload has no component id")
	}
	return cmd, nil
}

// Dispatch fires cmd on the tree under root. Values are converted and set
// the same way layout attributes are.
func Dispatch(ctx context.Context, root component.Component, cmd Command) error {
	node, ok := component.FindByID(root, cmd.ID)
	if !ok {
		return fmt.Errorf("no component with id %q", cmd.ID)
	}
	switch cmd.Event {
	case EventClick:
		b, ok := node.(interface{ Click() })
		if !ok {
			return fmt.Errorf("%w: %T cannot be clicked", ErrUnsupportedEvent, node)
		}
		b.Click()
		return nil
	case EventValue:
		values := handler.NewDefault(parser.NewRegistry(), nil)
		return values.Assign(ctx, node, []layout.Pair{{Name: "value", Value: cmd.Value}})
	case EventItem:
		t, ok := node.(*component.Table)
		if !ok {
			return fmt.Errorf("%w: %T has no items", ErrUnsupportedEvent, node)
		}
		itemID, err := strconv.Atoi(cmd.Value)
		if err != nil {
			return fmt.Errorf("item id %q: %w", cmd.Value, err)
		}
		t.ClickItem(itemID)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedEvent, cmd.Event)
}
