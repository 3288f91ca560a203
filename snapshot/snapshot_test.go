package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/storage"
	"github.com/stretchr/testify/require"
	"github.com/tradeledger/asset-transfer/ledger"
)

func TestID(t *testing.T) {
	id := ID{Label: "staging", Epoch: 1700000000}
	require.Equal(t, "staging-1700000000", id.String())

	var res ID
	require.NoError(t, res.decodeString("staging-1700000000-manifest.json"))
	require.Equal(t, id, res)

	res, err := ParseID("staging-1700000000")
	require.NoError(t, err)
	require.Equal(t, id, res)

	require.Error(t, res.decodeString("staging"))
	require.Error(t, res.decodeString("staging-x-manifest.json"))
	require.Error(t, res.decodeString("-1-manifest.json"))

	err = res.decodeString("staging")
	require.ErrorContains(t, err, "expected '<label>-<epoch>' prefix")
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	id := ID{Label: "test", Epoch: 42}

	items := []ledger.KV{
		{Key: "a1", Value: []byte(`{"ID":"a1"}`)},
		{Key: "b,2", Value: []byte("line\nbreak")},
		{Key: "c3", Value: []byte{0, 1, 2}},
	}

	c, err := NewCreator(dir, id)
	require.NoError(t, err)
	for i := range items {
		require.NoError(t, c.Write(items[i]))
	}
	h, err := c.Flush()
	require.NoError(t, err)
	c.Close()

	st := ledger.NewStagedStore(storage.NewMemoryStore())
	for i := range items {
		require.NoError(t, st.PutState(items[i].Key, items[i].Value))
	}
	expected, err := ledger.StateHash(st)
	require.NoError(t, err)
	require.Equal(t, ledger.EncodeStateHash(expected), h)

	_, err = NewCreator(dir, id)
	require.ErrorIs(t, err, os.ErrExist)

	r, err := Open(dir, id)
	require.NoError(t, err)
	require.Equal(t, h, r.StateHash())
	require.Equal(t, len(items), r.Len())

	var got []ledger.KV
	require.NoError(t, r.IterateState(func(key string, value []byte) error {
		got = append(got, ledger.KV{Key: key, Value: value})
		return nil
	}))
	require.Equal(t, items, got)

	var ids []ID
	require.NoError(t, IterateDumps(dir, func(id ID, r *Reader) {
		ids = append(ids, id)
		require.Equal(t, len(items), r.Len())
	}))
	require.Equal(t, []ID{id}, ids)
}

func TestInvalidLabel(t *testing.T) {
	_, err := NewCreator(t.TempDir(), ID{Label: "with-hyphen"})
	require.Error(t, err)
	_, err = NewCreator(t.TempDir(), ID{})
	require.Error(t, err)
}

func TestCorrupted(t *testing.T) {
	dir := t.TempDir()
	id := ID{Label: "test", Epoch: 1}

	c, err := NewCreator(dir, id)
	require.NoError(t, err)
	require.NoError(t, c.Write(ledger.KV{Key: "a1", Value: []byte("v1")}))
	_, err = c.Flush()
	require.NoError(t, err)
	c.Close()

	path := filepath.Join(dir, "test-1-state.csv")
	other := _encoding.EncodeToString([]byte("a1")) + "," + _encoding.EncodeToString([]byte("v2")) + "\n"
	require.NoError(t, os.WriteFile(path, []byte(other), 0600))

	_, err = Open(dir, id)
	require.ErrorContains(t, err, "state hash mismatch")
}

func TestIterateMissingDir(t *testing.T) {
	var n int
	require.NoError(t, IterateDumps(filepath.Join(t.TempDir(), "none"), func(ID, *Reader) { n++ }))
	require.Zero(t, n)
}
