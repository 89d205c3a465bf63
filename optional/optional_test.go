package optional

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/containers.go/exc"
)

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var e exc.Exception
	require.ErrorAs(t, err, &e)
	require.Equal(t, code, e.Code())
}

func TestSome(t *testing.T) {
	t.Parallel()

	o := Some(42)
	require.True(t, o.IsPresent())
	require.False(t, o.IsAbsent())
	require.Equal(t, 42, o.Value())

	v, err := o.Unwrap()
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestSomeZeroValue(t *testing.T) {
	t.Parallel()

	o := Some(0)
	require.True(t, o.IsPresent())

	v, err := o.Unwrap()
	require.NoError(t, err)
	require.Equal(t, 0, v)
}

func TestSomeNilPointer(t *testing.T) {
	t.Parallel()

	var p *int
	o := Some(p)
	require.True(t, o.IsPresent())
	require.Nil(t, o.Value())
}

func TestNone(t *testing.T) {
	t.Parallel()

	o := None[string]()
	require.True(t, o.IsAbsent())
	require.False(t, o.IsPresent())
	require.Equal(t, "", o.Value())

	_, err := o.Unwrap()
	requireCode(t, err, exc.CodeEmptyValueAccess)
}

func TestUnwrapRepeatable(t *testing.T) {
	t.Parallel()

	o := Some("anchor")
	first, err := o.Unwrap()
	require.NoError(t, err)
	second, err := o.Unwrap()
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.True(t, o.IsPresent())
}

func TestWithValue(t *testing.T) {
	t.Parallel()

	v := 7
	o, err := WithValue(&v)
	require.NoError(t, err)
	require.True(t, o.IsPresent())
	require.Equal(t, 7, o.Value())
}

func TestWithValueNil(t *testing.T) {
	t.Parallel()

	o, err := WithValue[int](nil)
	requireCode(t, err, exc.CodeInvalidArgument)
	require.True(t, o.IsAbsent())
}

func TestWithValueCopies(t *testing.T) {
	t.Parallel()

	v := 7
	o, err := WithValue(&v)
	require.NoError(t, err)
	v = 8
	require.Equal(t, 7, o.Value())
}

func TestExpectValue(t *testing.T) {
	t.Parallel()

	v, err := ExpectValue(Some("ready"))
	require.NoError(t, err)
	require.Equal(t, "ready", v)

	_, err = ExpectValue(None[string]())
	requireCode(t, err, exc.CodeEmptyValueAccess)
}

func TestExpectAbsent(t *testing.T) {
	t.Parallel()

	require.NoError(t, ExpectAbsent(None[int]()))

	err := ExpectAbsent(Some(1))
	requireCode(t, err, exc.CodeUnexpectedValuePresent)
}
