package ledger

import (
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// StateHasher accumulates world state items for StateHash. Items must be
// added in ascending key order.
type StateHasher struct {
	w *io.BufBinWriter
}

// NewStateHasher returns empty StateHasher.
func NewStateHasher() *StateHasher {
	return &StateHasher{w: io.NewBufBinWriter()}
}

// Add feeds the item as length-prefixed key and value.
func (x *StateHasher) Add(kv KV) error {
	x.w.WriteVarBytes([]byte(kv.Key))
	x.w.WriteVarBytes(kv.Value)
	return x.w.Err
}

// Sum returns SHA-256 digest of all added items.
func (x *StateHasher) Sum() util.Uint256 {
	return hash.Sha256(x.w.Bytes())
}

// StateHash returns digest of the whole world state. Two stores holding
// equal items always hash equally.
func StateHash(st Store) (util.Uint256, error) {
	h := NewStateHasher()

	err := Range(st, "", "", h.Add)
	if err != nil {
		return util.Uint256{}, fmt.Errorf("serialize world state: %w", err)
	}

	return h.Sum(), nil
}

// EncodeStateHash returns base58 text form of the state hash.
func EncodeStateHash(h util.Uint256) string {
	return base58.Encode(h.BytesBE())
}

// DecodeStateHash parses the state hash from base58 text form.
func DecodeStateHash(s string) (util.Uint256, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return util.Uint256{}, fmt.Errorf("decode base58: %w", err)
	}

	return util.Uint256DecodeBytesBE(b)
}
