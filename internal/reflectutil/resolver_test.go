package reflectutil

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color struct{ r, g, b uint8 }

type widget struct{ child *widget }

func (w *widget) SetID(id string)                     {}
func (w *widget) SetColor(name string)                {}
func (w *widget) SetColorAsRGB(c color)               {}
func (w *widget) SetColorful(on bool)                 {}
func (w *widget) SetColorAssist(on bool)              {}
func (w *widget) SetSizeFull()                        {}
func (w *widget) SetSize(a, b, c int)                 {}
func (w *widget) SetLabel(text string) error          { return nil }
func (w *widget) SetLabelAsCount(n int) (int, bool)   { return 0, false }
func (w *widget) SetTitleAsLegacy(text string)        {}
func (w *widget) SetTitle(text string)                {}
func (w *widget) SetAlign(child *widget, pos int)     {}
func (w *widget) SetAlignAsName(child any, p string)  {}
func (w *widget) SetAlignOther(child string, pos int) {}

func (w *widget) DeprecatedMethods() []string { return []string{"SetTitle"} }

var widgetType = reflect.TypeFor[*widget]()

func names(methods []reflect.Method) []string {
	out := make([]string, 0, len(methods))
	for _, m := range methods {
		out = append(out, m.Name)
	}
	return out
}

func TestSetterName(t *testing.T) {
	assert.Equal(t, "SetSizeFull", SetterName("sizeFull"))
	assert.Equal(t, "SetCaption", SetterName("Caption"))
	assert.Equal(t, "SetÉtat", SetterName("état"))
	assert.Equal(t, "", SetterName(""))
}

func TestFindMethods(t *testing.T) {
	testCases := []struct {
		name   string
		setter string
		shape  Shape
		want   []string
	}{
		{name: "overload siblings", setter: "SetColor", shape: Arity(0, 1), want: []string{"SetColor", "SetColorAsRGB"}},
		{name: "As must start a new word", setter: "SetColorAs", shape: Arity(0, 1), want: nil},
		{name: "case-insensitive", setter: "SetId", shape: Arity(0, 1), want: []string{"SetID"}},
		{name: "zero-arg setter", setter: "SetSizeFull", shape: Arity(0, 1), want: []string{"SetSizeFull"}},
		{name: "arity filter", setter: "SetSize", shape: Arity(0, 1), want: nil},
		{name: "error result allowed, other results not", setter: "SetLabel", shape: Arity(0, 1), want: []string{"SetLabel"}},
		{name: "first parameter shape", setter: "SetAlign", shape: FirstParam(widgetType), want: []string{"SetAlign", "SetAlignAsName"}},
		{name: "missing", setter: "SetNothing", shape: Arity(0, 1), want: nil},
		{name: "empty setter", setter: "", shape: Arity(0, 1), want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FindMethods(widgetType, tc.setter, tc.shape)
			if tc.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, names(got))
		})
	}

	assert.Nil(t, FindMethods(nil, "SetColor", Arity(0, 1)))
}

func TestShape_ValueType(t *testing.T) {
	m, ok := widgetType.MethodByName("SetColorAsRGB")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeFor[color](), Arity(0, 1).ValueType(m))

	m, ok = widgetType.MethodByName("SetSizeFull")
	require.True(t, ok)
	assert.Nil(t, Arity(0, 1).ValueType(m))

	m, ok = widgetType.MethodByName("SetAlign")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeFor[int](), FirstParam(widgetType).ValueType(m))
}

func TestPreferred_SpecializedWins(t *testing.T) {
	methods := FindMethods(widgetType, "SetColor", Arity(0, 1))
	specialized := func(m reflect.Method) bool {
		return Arity(0, 1).ValueType(m) == reflect.TypeFor[color]()
	}

	got, ok := Preferred(&widget{}, methods, specialized)
	require.True(t, ok)
	assert.Equal(t, "SetColorAsRGB", got.Name)

	// Declaration order does not matter.
	reversed := []reflect.Method{methods[1], methods[0]}
	got, ok = Preferred(&widget{}, reversed, specialized)
	require.True(t, ok)
	assert.Equal(t, "SetColorAsRGB", got.Name)
}

func TestPreferred_TiesKeepOrder(t *testing.T) {
	methods := FindMethods(widgetType, "SetColor", Arity(0, 1))
	none := func(reflect.Method) bool { return false }

	got, ok := Preferred(&widget{}, methods, none)
	require.True(t, ok)
	assert.Equal(t, "SetColor", got.Name)
}

func TestPreferred_DeprecatedLoses(t *testing.T) {
	methods := FindMethods(widgetType, "SetTitle", Arity(0, 1))
	require.Equal(t, []string{"SetTitle", "SetTitleAsLegacy"}, names(methods))

	// Deprecation outranks a specialized parser.
	got, ok := Preferred(&widget{}, methods, func(m reflect.Method) bool { return m.Name == "SetTitle" })
	require.True(t, ok)
	assert.Equal(t, "SetTitleAsLegacy", got.Name)

	assert.True(t, IsDeprecated(&widget{}, "SetTitle"))
	assert.False(t, IsDeprecated(&widget{}, "SetTitleAsLegacy"))
	assert.False(t, IsDeprecated(struct{}{}, "SetTitle"))
}

func TestPreferred_Empty(t *testing.T) {
	_, ok := Preferred(&widget{}, nil, func(reflect.Method) bool { return true })
	assert.False(t, ok)
}
