package inflater

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/weave/component"
	"github.com/vk/weave/filter"
	"github.com/vk/weave/handler"
	"github.com/vk/weave/internal/testutil"
	"github.com/vk/weave/layout"
)

const traceNS = "urn:weave:trace"

// tracer records every call it receives together with whether the
// component was attached at that moment.
type tracer struct {
	phase handler.Phase
	log   *[]string
}

func (t tracer) Kind() handler.Kind   { return handler.KindCustom }
func (t tracer) Namespace() string    { return traceNS }
func (t tracer) Phase() handler.Phase { return t.phase }
func (t tracer) Assign(_ context.Context, node component.Component, attrs []layout.Pair) error {
	*t.log = append(*t.log, fmt.Sprintf("%s %s attached=%t", t.phase, node.ID(), node.Parent() != nil))
	return nil
}

func el(typ, id string, children ...*layout.Element) *layout.Element {
	e := &layout.Element{Type: typ, Children: children}
	if id != "" {
		e.Attributes = append(e.Attributes, layout.Attribute{Name: "id", Value: id})
	}
	e.Attributes = append(e.Attributes, layout.Attribute{Namespace: traceNS, Name: "mark", Value: "x"})
	return e
}

func TestInflate_PhaseOrder(t *testing.T) {
	// --- Arrange ---
	ctx, _ := testutil.LogContext(t)
	var calls []string
	inf := New(WithHandlers(tracer{phase: handler.BeforeAttach, log: &calls}, tracer{phase: handler.AfterAttach, log: &calls}))
	root := el("VerticalLayout", "root",
		el("HorizontalLayout", "row",
			el("Label", "a"),
		),
		el("Label", "b"),
	)

	// --- Act ---
	node, err := inf.Inflate(ctx, root, nil)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{
		"BEFORE_ATTACH root attached=false",
		"BEFORE_ATTACH row attached=false",
		"BEFORE_ATTACH a attached=false",
		"BEFORE_ATTACH b attached=false",
		"AFTER_ATTACH row attached=true",
		"AFTER_ATTACH a attached=true",
		"AFTER_ATTACH b attached=true",
	}, calls)

	v, ok := node.(*component.VerticalLayout)
	require.True(t, ok)
	require.Len(t, v.Components(), 2)
	assert.Equal(t, "row", v.Components()[0].ID())
	assert.Equal(t, "b", v.Components()[1].ID())
	a, found := component.FindByID(node, "a")
	require.True(t, found)
	assert.Same(t, v.Components()[0], a.Parent())
}

func TestInflate_AttributesAndParentAttributes(t *testing.T) {
	ctx, logs := testutil.LogContext(t)
	src := `
component "VerticalLayout" {
  id     = "root"
  margin = "true"
  parent {
    componentAlignment = "bottom_right"
  }

  component "Label" {
    id      = "title"
    caption = "$title"
    parent {
      componentAlignment = "middle_center"
      expandRatio        = "2"
    }
  }
}
`
	root, err := layout.Parse([]byte(src), "test.hcl", layout.FormatHCL)
	require.NoError(t, err)
	inf := New(WithFilters(filter.Translate(filter.Messages(map[string]string{"title": "Welcome"}))))

	node, err := inf.Inflate(ctx, root, nil)

	require.NoError(t, err)
	v := node.(*component.VerticalLayout)
	assert.True(t, v.Margin())
	label := v.Components()[0].(*component.Label)
	assert.Equal(t, "Welcome", label.Caption())
	assert.Equal(t, component.MiddleCenter, v.ComponentAlignment(label))
	assert.InDelta(t, 2.0, v.ExpandRatio(label), 1e-9)
	assert.Contains(t, logs.String(), "Ignoring parent attributes of the root element")
}

func TestInflate_Presupplied(t *testing.T) {
	ctx, _ := testutil.LogContext(t)
	mine := component.NewLabel()
	mine.SetValue("kept")
	root := el("VerticalLayout", "",
		el("Label", "status"),
		el("Label", "other"),
	)
	root.Children[0].Attributes = append(root.Children[0].Attributes, layout.Attribute{Name: "caption", Value: "Status"})

	node, err := New().Inflate(ctx, root, map[string]component.Component{"status": mine, "missing": component.NewButton()})

	require.NoError(t, err)
	status, ok := component.FindByID(node, "status")
	require.True(t, ok)
	assert.Same(t, mine, status)
	assert.Equal(t, "Status", mine.Caption(), "attributes still apply to pre-supplied components")
	assert.Equal(t, "kept", mine.Value())
	assert.Same(t, node, mine.Parent())
}

func TestInflate_LastValueWins(t *testing.T) {
	root := &layout.Element{Type: "Label", Attributes: layout.Attributes{
		{Name: "caption", Value: "first"},
		{Name: "caption", Value: "second"},
	}}
	var seen []any
	spy := filter.Func(func(ctx *filter.Context) error {
		seen = append(seen, ctx.Value())
		return ctx.Proceed()
	})

	node, err := New(WithFilters(spy)).Inflate(context.Background(), root, nil)

	require.NoError(t, err)
	assert.Equal(t, "second", node.(*component.Label).Caption())
	assert.Equal(t, []any{"second"}, seen, "a repeated attribute is applied once")
}

func TestInflate_UnknownNamespaceIgnored(t *testing.T) {
	root := &layout.Element{Type: "Label", Attributes: layout.Attributes{
		{Namespace: "urn:somebody:else", Name: "caption", Value: "ignored"},
		{Name: "caption", Value: "used"},
	}}

	node, err := New().Inflate(context.Background(), root, nil)

	require.NoError(t, err)
	assert.Equal(t, "used", node.(*component.Label).Caption())
}

func TestInflate_Errors(t *testing.T) {
	pos := layout.Pos{Filename: "broken.hcl", Line: 3, Column: 5}
	testCases := []struct {
		name    string
		root    *layout.Element
		wantErr error
		wantMsg string
	}{
		{
			name:    "nil root",
			root:    nil,
			wantMsg: "no root element",
		},
		{
			name: "unknown type",
			root: &layout.Element{Type: "VerticalLayout", Children: []*layout.Element{
				{Type: "Spinner", Pos: pos},
			}},
			wantErr: component.ErrUnknownType,
			wantMsg: "broken.hcl:3,5: Spinner",
		},
		{
			name: "single-component container with two children",
			root: &layout.Element{Type: "Panel", Children: []*layout.Element{
				{Type: "Label"}, {Type: "Label"},
			}},
			wantMsg: "holds a single component, 2 children declared",
		},
		{
			name: "children under a widget",
			root: &layout.Element{Type: "Label", Children: []*layout.Element{
				{Type: "Label"},
			}},
			wantMsg: "cannot hold children",
		},
		{
			name: "setter failure",
			root: &layout.Element{Type: "Label", Attributes: layout.Attributes{
				{Name: "id", Value: "broken"},
				{Name: "width", Value: "very"},
			}},
			wantErr: component.ErrInvalidValue,
			wantMsg: `Label "broken"`,
		},
		{
			name: "parent attribute on a panel child",
			root: &layout.Element{Type: "Panel", Children: []*layout.Element{
				{Type: "Label", Attributes: layout.Attributes{
					{Namespace: layout.ParentNamespace, Name: "componentAlignment", Value: "top_left"},
				}},
			}},
			wantErr: handler.ErrIllegalState,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			node, err := New().Inflate(context.Background(), tc.root, nil)

			require.Error(t, err)
			assert.Nil(t, node)
			assert.ErrorIs(t, err, ErrInflate)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
			if tc.wantMsg != "" {
				assert.Contains(t, err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestInflate_ErrorPosition(t *testing.T) {
	pos := layout.Pos{Filename: "view.yaml", Line: 7, Column: 3}
	root := &layout.Element{Type: "Nope", Pos: pos, Attributes: layout.Attributes{{Name: "id", Value: "x"}}}

	_, err := New().Inflate(context.Background(), root, nil)

	var inflateErr *Error
	require.True(t, errors.As(err, &inflateErr))
	assert.Equal(t, pos, inflateErr.Pos)
	assert.Equal(t, "Nope", inflateErr.Type)
	assert.Equal(t, "x", inflateErr.ID)
}

func TestNew_Options(t *testing.T) {
	catalog := component.NewCatalog()
	catalog.Register("Thing", func() component.Component { return component.NewLabel() })

	inf := New(WithCatalog(catalog))

	_, err := inf.Inflate(context.Background(), &layout.Element{Type: "Thing"}, nil)
	require.NoError(t, err)
	_, err = inf.Inflate(context.Background(), &layout.Element{Type: "Label"}, nil)
	require.ErrorIs(t, err, component.ErrUnknownType)

	h, ok := inf.Handlers().Lookup("", handler.BeforeAttach)
	require.True(t, ok)
	assert.Equal(t, handler.KindDefault, h.Kind())
	h, ok = inf.Handlers().Lookup(layout.ParentNamespace, handler.AfterAttach)
	require.True(t, ok)
	assert.Equal(t, handler.KindParent, h.Kind())
}
