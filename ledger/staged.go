package ledger

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/nspcc-dev/neo-go/pkg/core/storage"
)

// StagedStore implements Store on top of the neo-go storage. Writes are kept
// in memory until Commit, reads observe staged writes over the lower store.
// Dropping StagedStore without Commit discards all staged writes.
//
// StagedStore must be constructed using NewStagedStore.
type StagedStore struct {
	cache  *storage.MemCachedStore
	writes int
}

// NewStagedStore returns StagedStore staging writes over the given store.
func NewStagedStore(lower storage.Store) *StagedStore {
	return &StagedStore{
		cache: storage.NewMemCachedStore(lower),
	}
}

// GetState implements Store.
func (x *StagedStore) GetState(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}

	val, err := x.cache.Get([]byte(key))
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %q: %w", key, err)
	}

	if len(val) == 0 {
		return nil, nil
	}

	return bytes.Clone(val), nil
}

// PutState implements Store.
func (x *StagedStore) PutState(key string, value []byte) error {
	if key == "" {
		return errors.New("empty key")
	}

	if len(value) == 0 {
		return x.DelState(key)
	}

	x.cache.Put([]byte(key), bytes.Clone(value))
	x.writes++

	return nil
}

// DelState implements Store.
func (x *StagedStore) DelState(key string) error {
	if key == "" {
		return errors.New("empty key")
	}

	x.cache.Delete([]byte(key))
	x.writes++

	return nil
}

// GetStateByRange implements Store. Items are collected when the range is
// opened, so writes staged during iteration are not visible to it.
//
// neo-go memory stores require non-empty seek prefix and keep some first
// bytes in separate maps, so the range is seeked per first key byte.
func (x *StagedStore) GetStateByRange(start, end string) (Iterator, error) {
	var items []KV

	first := 0
	if start != "" {
		first = int(start[0])
	}

	for b := first; b <= 0xff; b++ {
		if end != "" && b > int(end[0]) {
			break
		}

		x.cache.Seek(storage.SeekRange{Prefix: []byte{byte(b)}}, func(k, v []byte) bool {
			key := string(k)
			if len(v) == 0 || key < start || (end != "" && key >= end) {
				return true
			}

			items = append(items, KV{
				Key:   key,
				Value: bytes.Clone(v),
			})

			return true
		})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })

	return newSliceIterator(items), nil
}

// Writes returns number of staged write operations.
func (x *StagedStore) Writes() int {
	return x.writes
}

// Commit flushes staged writes into the lower store.
func (x *StagedStore) Commit() error {
	_, err := x.cache.Persist()
	if err != nil {
		return fmt.Errorf("persist staged writes: %w", err)
	}

	return nil
}
