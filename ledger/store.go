package ledger

import (
	"fmt"
)

// KV is a single world state item.
type KV struct {
	Key   string
	Value []byte
}

// Iterator is a lazy ascending sequence of world state items returned by
// range scans. Iterator must be closed after use.
type Iterator interface {
	// Next advances the iterator and reports whether there is an item to read
	// with At. Next returns false at the end of the sequence or on failure,
	// the latter is reported by Err.
	Next() bool
	// At returns the current item.
	At() KV
	// Err returns the first failure encountered by Next.
	Err() error
	// Close releases resources of the iterator.
	Close() error
}

// Store is the world state as seen by contract handlers.
//
// Absent keys and keys holding zero-length values are indistinguishable:
// GetState returns nil for both, and PutState with a zero-length value is
// equivalent to DelState. Store implementations do not retry, any failure is
// returned to the handler and aborts the invocation.
type Store interface {
	// GetState returns value stored by the key or nil if there is no such key.
	GetState(key string) ([]byte, error)
	// PutState stages value for the key.
	PutState(key string, value []byte) error
	// DelState stages removal of the key.
	DelState(key string) error
	// GetStateByRange returns items with keys in [start, end) in ascending key
	// order. Empty start or end leave the corresponding side unbounded, so
	// two empty bounds scan the whole keyspace.
	GetStateByRange(start, end string) (Iterator, error)
}

// Range passes all items with keys in [start, end) into f in ascending key
// order. Range stops on the first error returned by f and returns it.
func Range(st Store, start, end string, f func(KV) error) error {
	it, err := st.GetStateByRange(start, end)
	if err != nil {
		return fmt.Errorf("open range [%q, %q): %w", start, end, err)
	}

	for it.Next() {
		if err = f(it.At()); err != nil {
			_ = it.Close()
			return err
		}
	}

	if err = it.Err(); err != nil {
		_ = it.Close()
		return fmt.Errorf("iterate range [%q, %q): %w", start, end, err)
	}

	return it.Close()
}

// sliceIterator iterates over already collected items.
type sliceIterator struct {
	items []KV
	cur   int
}

func newSliceIterator(items []KV) *sliceIterator {
	return &sliceIterator{items: items, cur: -1}
}

func (x *sliceIterator) Next() bool {
	if x.cur+1 >= len(x.items) {
		x.cur = len(x.items)
		return false
	}
	x.cur++
	return true
}

func (x *sliceIterator) At() KV {
	return x.items[x.cur]
}

func (x *sliceIterator) Err() error {
	return nil
}

func (x *sliceIterator) Close() error {
	x.items = nil
	return nil
}
