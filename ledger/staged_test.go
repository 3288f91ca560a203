package ledger

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/storage"
	"github.com/stretchr/testify/require"
)

func collect(tb testing.TB, st Store, start, end string) []string {
	var keys []string
	err := Range(st, start, end, func(kv KV) error {
		keys = append(keys, kv.Key)
		return nil
	})
	require.NoError(tb, err)
	return keys
}

func TestStagedStore(t *testing.T) {
	lower := storage.NewMemoryStore()
	st := NewStagedStore(lower)

	for _, k := range []string{"b", "d", "a", "c"} {
		require.NoError(t, st.PutState(k, []byte("v"+k)))
	}

	t.Run("point reads", func(t *testing.T) {
		v, err := st.GetState("a")
		require.NoError(t, err)
		require.Equal(t, []byte("va"), v)

		v, err = st.GetState("missing")
		require.NoError(t, err)
		require.Nil(t, v)
	})

	t.Run("zero-length value is absent", func(t *testing.T) {
		require.NoError(t, st.PutState("e", []byte{}))

		v, err := st.GetState("e")
		require.NoError(t, err)
		require.Nil(t, v)
		require.NotContains(t, collect(t, st, "", ""), "e")
	})

	t.Run("range", func(t *testing.T) {
		require.Equal(t, []string{"a", "b", "c", "d"}, collect(t, st, "", ""))
		require.Equal(t, []string{"b", "c"}, collect(t, st, "b", "d"))
		require.Equal(t, []string{"c", "d"}, collect(t, st, "c", ""))
		require.Equal(t, []string{"a", "b"}, collect(t, st, "", "c"))
		require.Empty(t, collect(t, st, "x", ""))
	})

	t.Run("empty key", func(t *testing.T) {
		require.Error(t, st.PutState("", []byte("v")))
		require.Error(t, st.DelState(""))
	})

	t.Run("commit", func(t *testing.T) {
		_, err := lower.Get([]byte("a"))
		require.ErrorIs(t, err, storage.ErrKeyNotFound)

		require.NoError(t, st.DelState("d"))
		require.NoError(t, st.Commit())

		v, err := lower.Get([]byte("a"))
		require.NoError(t, err)
		require.Equal(t, []byte("va"), v)

		require.Equal(t, []string{"a", "b", "c"}, collect(t, NewStagedStore(lower), "", ""))
	})
}

func TestStateHash(t *testing.T) {
	fill := func(keys ...string) Store {
		st := NewStagedStore(storage.NewMemoryStore())
		for _, k := range keys {
			require.NoError(t, st.PutState(k, []byte(`{"ID":"`+k+`"}`)))
		}
		return st
	}

	h1, err := StateHash(fill("a", "b", "c"))
	require.NoError(t, err)

	h2, err := StateHash(fill("c", "a", "b"))
	require.NoError(t, err)
	require.Equal(t, h1, h2)
	require.Equal(t, EncodeStateHash(h1), EncodeStateHash(h2))

	h3, err := StateHash(fill("a", "b"))
	require.NoError(t, err)
	require.NotEqual(t, h1, h3)
}

func TestStateHashEncoding(t *testing.T) {
	h := NewStateHasher()
	require.NoError(t, h.Add(KV{Key: "a", Value: []byte("1")}))
	sum := h.Sum()

	decoded, err := DecodeStateHash(EncodeStateHash(sum))
	require.NoError(t, err)
	require.Equal(t, sum, decoded)

	_, err = DecodeStateHash("0OIl")
	require.Error(t, err)

	_, err = DecodeStateHash(EncodeStateHash(sum)[:10])
	require.Error(t, err)
}

func TestStagedStoreKeyspace(t *testing.T) {
	lower := storage.NewMemoryStore()

	committed := NewStagedStore(lower)
	for _, k := range []string{"asset1", "product1", "s1"} {
		require.NoError(t, committed.PutState(k, []byte("v"+k)))
	}
	require.NoError(t, committed.Commit())

	st := NewStagedStore(lower)
	for _, k := range []string{"asset2", "product2", "s2", "\x00bin", "\xffbin"} {
		require.NoError(t, st.PutState(k, []byte("v"+k)))
	}
	require.NoError(t, st.DelState("s1"))

	require.Equal(t, []string{"\x00bin", "asset1", "asset2", "product1", "product2", "s2", "\xffbin"},
		collect(t, st, "", ""))
	require.Equal(t, []string{"asset2", "product1", "product2"}, collect(t, st, "asset2", "s"))
	require.Equal(t, []string{"product1", "product2", "s2"}, collect(t, st, "p", "t"))
	require.Equal(t, []string{"s2", "\xffbin"}, collect(t, st, "s", ""))

	v, err := st.GetState("product1")
	require.NoError(t, err)
	require.Equal(t, []byte("vproduct1"), v)

	v, err = st.GetState("s1")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, st.Commit())
	require.Equal(t, []string{"\x00bin", "asset1", "asset2", "product1", "product2", "s2", "\xffbin"},
		collect(t, NewStagedStore(lower), "", ""))
}

func TestStagedStoreEmptyKey(t *testing.T) {
	st := NewStagedStore(storage.NewMemoryStore())

	v, err := st.GetState("")
	require.NoError(t, err)
	require.Nil(t, v)

	require.Empty(t, collect(t, st, "", ""))
}
