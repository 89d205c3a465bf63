package exc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	e := New(CodeInvalidArgument, "nil is not a value")
	require.Equal(t, CodeInvalidArgument, e.Code())
	require.Equal(t, "nil is not a value", e.Message())
	require.Equal(t, "C0001: nil is not a value", e.Error())
}

func TestWrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	e := Wrap(CodeFailureValueAccess, cause)
	require.Equal(t, CodeFailureValueAccess, e.Code())
	require.Equal(t, "boom", e.Message())
	require.ErrorIs(t, e, cause)
}

func TestWrapNil(t *testing.T) {
	t.Parallel()

	require.Nil(t, Wrap(CodeFailureValueAccess, nil))
}

func TestWrapException(t *testing.T) {
	t.Parallel()

	inner := New(CodeEmptyValueAccess, "nothing here")
	outer := Wrap(CodeFailureValueAccess, inner)
	require.Equal(t, CodeFailureValueAccess, outer.Code())
	require.Equal(t, "nothing here", outer.Message())
	require.ErrorIs(t, outer, inner)

	var unwrapped Exception
	require.ErrorAs(t, outer, &unwrapped)
	require.Equal(t, CodeFailureValueAccess, unwrapped.Code())
}
