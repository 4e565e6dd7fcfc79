package relay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectError(t *testing.T) {
	cause := errors.New("handshake rejected")
	testCases := []struct {
		name string
		args []any
		want string
	}{
		{name: "no arguments", args: nil, want: "connection refused without a reason"},
		{name: "nil argument", args: []any{nil}, want: "connection refused without a reason"},
		{name: "error argument", args: []any{cause}, want: "handshake rejected"},
		{name: "other argument", args: []any{map[string]any{"message": "denied"}}, want: "map[message:denied]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { err = connectError(tc.args...) })
			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())
		})
	}
	assert.ErrorIs(t, connectError(cause), cause)
}

func TestReport_KeepsFirstOutcome(t *testing.T) {
	connected := make(chan error, 1)
	first := errors.New("first")

	done := make(chan struct{})
	go func() {
		defer close(done)
		report(connected, first)
		report(connected, nil)
		report(connected, errors.New("third"))
	}()
	<-done

	assert.Equal(t, first, <-connected)
	select {
	case err := <-connected:
		t.Fatalf("unexpected second outcome: %v", err)
	default:
	}
}
