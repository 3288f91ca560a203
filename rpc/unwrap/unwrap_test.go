package unwrap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnwrap(t *testing.T) {
	errCall := errors.New("call failed")

	require.ErrorIs(t, Nothing(nil, errCall), errCall)
	require.NoError(t, Nothing([]byte("ignored"), nil))

	s, err := String([]byte("Alice"), nil)
	require.NoError(t, err)
	require.Equal(t, "Alice", s)

	_, err = String(nil, errCall)
	require.ErrorIs(t, err, errCall)

	b, err := Bool([]byte("true"), nil)
	require.NoError(t, err)
	require.True(t, b)

	_, err = Bool([]byte("maybe"), nil)
	require.Error(t, err)

	_, err = Bool(nil, errCall)
	require.ErrorIs(t, err, errCall)

	m, err := JSON[map[string]int]([]byte(`{"a":1}`), nil)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"a": 1}, m)

	_, err = JSON[map[string]int]([]byte(`[`), nil)
	require.Error(t, err)
}

func TestEntries(t *testing.T) {
	type rec struct{ ID string }

	res, err := Entries[rec]([]byte(`[{"ID":"a"},"raw \"value\"",{"ID":"b"}]`), nil)
	require.NoError(t, err)
	require.Len(t, res, 3)
	require.Equal(t, &rec{ID: "a"}, res[0].Record)
	require.Nil(t, res[1].Record)
	require.Equal(t, `raw "value"`, res[1].Raw)
	require.Equal(t, &rec{ID: "b"}, res[2].Record)

	res, err = Entries[rec]([]byte(`[]`), nil)
	require.NoError(t, err)
	require.Empty(t, res)

	_, err = Entries[rec]([]byte(`[1]`), nil)
	require.Error(t, err)
}
