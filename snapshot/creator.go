package snapshot

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tradeledger/asset-transfer/ledger"
)

// Creator writes the world state snapshot. Items must be written in
// ascending key order, e.g. by passing Write into ledger.World.Export.
//
// Use IterateDumps or Open to access existing snapshots.
type Creator struct {
	streams

	id     ID
	items  int
	hasher *ledger.StateHasher

	stateCSV *csv.Writer
}

// NewCreator returns Creator which writes snapshot with the given ID into the
// directory. Resulting Creator should be closed when finished working with
// it.
//
// NewCreator fails if snapshot with provided ID already exists. Label must
// be non-empty and must not contain hyphens.
func NewCreator(dir string, id ID) (*Creator, error) {
	if id.Label == "" || strings.Contains(id.Label, sep) {
		return nil, fmt.Errorf("invalid snapshot label '%s'", id.Label)
	}

	res := Creator{
		id:     id,
		hasher: ledger.NewStateHasher(),
	}

	err := openStreams(&res.streams, dir, id, false)
	if err != nil {
		return nil, err
	}

	res.stateCSV = csv.NewWriter(res.streams.state)

	return &res, nil
}

// Write saves given world state item into the snapshot.
func (x *Creator) Write(kv ledger.KV) error {
	err := x.stateCSV.Write([]string{
		_encoding.EncodeToString([]byte(kv.Key)),
		_encoding.EncodeToString(kv.Value),
	})
	if err != nil {
		return fmt.Errorf("write state item as CSV data: %w", err)
	}

	x.items++

	return x.hasher.Add(kv)
}

// Flush flushes accumulated snapshot to the file system and returns the
// state hash of the written items.
func (x *Creator) Flush() (string, error) {
	x.stateCSV.Flush()

	err := x.stateCSV.Error()
	if err != nil {
		return "", fmt.Errorf("flush CSV data: %w", err)
	}

	m := manifest{
		Label:     x.id.Label,
		Epoch:     x.id.Epoch,
		Items:     x.items,
		StateHash: ledger.EncodeStateHash(x.hasher.Sum()),
	}

	jEnc := json.NewEncoder(x.streams.manifest)
	jEnc.SetIndent("", " ")

	err = jEnc.Encode(m)
	if err != nil {
		return "", fmt.Errorf("encode manifest to JSON: %w", err)
	}

	return m.StateHash, nil
}

// Close releases underlying resources of the Creator and makes it unusable.
func (x *Creator) Close() {
	x.close()
}
