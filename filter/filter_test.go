package filter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// appendMarker returns a filter that appends marker to string values and
// proceeds.
func appendMarker(marker string) Filter {
	return Func(func(ctx *Context) error {
		ctx.SetValue(ctx.Value().(string) + marker)
		return ctx.Proceed()
	})
}

func TestChain_AppliesInRegistrationOrder(t *testing.T) {
	chain := Chain{appendMarker("1"), appendMarker("2"), appendMarker("3")}

	var got []any
	err := chain.Apply("target", "SetCaption", "v", func(value any) error {
		got = append(got, value)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []any{"v123"}, got)
}

func TestChain_Empty(t *testing.T) {
	calls := 0
	err := Chain(nil).Apply(nil, "SetValue", 7, func(value any) error {
		calls++
		assert.Equal(t, 7, value)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestChain_Veto(t *testing.T) {
	veto := Func(func(ctx *Context) error { return nil })
	var after bool
	chain := Chain{appendMarker("1"), veto, Func(func(ctx *Context) error {
		after = true
		return ctx.Proceed()
	})}

	calls := 0
	err := chain.Apply("target", "SetCaption", "v", func(any) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Zero(t, calls, "the setter must not run after a veto")
	assert.False(t, after, "filters after a veto must not run")
}

func TestChain_SeesTargetAndMethod(t *testing.T) {
	target := &struct{ name string }{name: "button"}
	var seenTarget any
	var seenMethod string
	chain := Chain{Func(func(ctx *Context) error {
		seenTarget, seenMethod = ctx.Target(), ctx.Method()
		return ctx.Proceed()
	})}

	require.NoError(t, chain.Apply(target, "SetCaption", "x", func(any) error { return nil }))
	assert.Same(t, target, seenTarget)
	assert.Equal(t, "SetCaption", seenMethod)
}

func TestChain_PropagatesErrors(t *testing.T) {
	setterErr := errors.New("setter failed")
	err := Chain{appendMarker("!")}.Apply(nil, "SetCaption", "v", func(any) error { return setterErr })
	require.ErrorIs(t, err, setterErr)

	filterErr := errors.New("rejected")
	err = Chain{Func(func(*Context) error { return filterErr })}.Apply(nil, "SetCaption", "v", func(any) error {
		t.Fatal("setter must not run")
		return nil
	})
	require.ErrorIs(t, err, filterErr)
}

func TestTranslate(t *testing.T) {
	chain := Chain{Translate(Messages(map[string]string{"greeting": "Hello"}))}

	testCases := []struct {
		name  string
		value any
		want  any
	}{
		{name: "known key", value: "$greeting", want: "Hello"},
		{name: "unknown key", value: "$farewell", want: "$farewell"},
		{name: "plain string", value: "greeting", want: "greeting"},
		{name: "non-string", value: 42, want: 42},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got any
			require.NoError(t, chain.Apply(nil, "SetCaption", tc.value, func(v any) error {
				got = v
				return nil
			}))
			assert.Equal(t, tc.want, got)
		})
	}
}
