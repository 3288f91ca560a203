package snapshot

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/tradeledger/asset-transfer/ledger"
)

// IterateDumps iterates over all snapshots written by Creator in the
// specified directory, and passes ID and Reader of each snapshot into f.
func IterateDumps(dir string, f func(ID, *Reader)) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, e error) error {
		if errors.Is(e, fs.ErrNotExist) {
			return nil
		}

		if e != nil {
			return e
		}

		if d.IsDir() {
			if path != dir {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()

		if !strings.HasSuffix(name, manifestFileSuffix) {
			return nil
		}

		var id ID

		err := id.decodeString(name)
		if err != nil {
			return fmt.Errorf("decode snapshot ID from file name '%s': %w", name, err)
		}

		r, err := Open(dir, id)
		if err != nil {
			return fmt.Errorf("open snapshot '%s': %w", name, err)
		}

		f(id, r)

		return nil
	})
}

// Reader reads the world state items of the snapshot.
type Reader struct {
	manifest manifest
	items    []ledger.KV
}

// Open reads the snapshot with the given ID from the directory and checks
// its integrity against the manifest.
func Open(dir string, id ID) (*Reader, error) {
	var s streams

	err := openStreams(&s, dir, id, true)
	if err != nil {
		return nil, err
	}

	defer s.close()

	var r Reader

	err = r.fromStreams(s.manifest, s.state)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

func (x *Reader) fromStreams(rManifest, rState io.Reader) error {
	err := json.NewDecoder(rManifest).Decode(&x.manifest)
	if err != nil {
		return fmt.Errorf("decode manifest from JSON: %w", err)
	}

	var rec []string

	_csv := csv.NewReader(rState)
	_csv.FieldsPerRecord = 2
	_csv.ReuseRecord = true

	hasher := ledger.NewStateHasher()

	for {
		rec, err = _csv.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("read next CSV record: %w", err)
		}

		// out-of-range safety guaranteed by csv settings
		k, err := _encoding.DecodeString(rec[0])
		if err != nil {
			return fmt.Errorf("decode state item key: %w", err)
		}

		v, err := _encoding.DecodeString(rec[1])
		if err != nil {
			return fmt.Errorf("decode state item value: %w", err)
		}

		kv := ledger.KV{Key: string(k), Value: v}

		if n := len(x.items); n > 0 && x.items[n-1].Key >= kv.Key {
			return fmt.Errorf("state items are not in ascending key order at %q", kv.Key)
		}

		if err = hasher.Add(kv); err != nil {
			return err
		}

		x.items = append(x.items, kv)
	}

	if len(x.items) != x.manifest.Items {
		return fmt.Errorf("manifest declares %d items, found %d", x.manifest.Items, len(x.items))
	}

	if h := ledger.EncodeStateHash(hasher.Sum()); h != x.manifest.StateHash {
		return fmt.Errorf("state hash mismatch: manifest %s, computed %s", x.manifest.StateHash, h)
	}

	return nil
}

// StateHash returns the base58 state hash of the snapshot.
func (x *Reader) StateHash() string {
	return x.manifest.StateHash
}

// Len returns number of items in the snapshot.
func (x *Reader) Len() int {
	return len(x.items)
}

// IterateState passes all items of the snapshot into f in ascending key
// order. Iteration stops on the first error returned by f.
func (x *Reader) IterateState(f func(key string, value []byte) error) error {
	for i := range x.items {
		if err := f(x.items[i].Key, x.items[i].Value); err != nil {
			return err
		}
	}
	return nil
}
