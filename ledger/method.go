package ledger

import (
	"strconv"

	"github.com/tradeledger/asset-transfer/internal/canonical"
)

// Handler executes one named operation against the world state. args are
// the string arguments of the transaction, the result is converted into
// transaction payload by EncodeResult.
type Handler func(st Store, args []string) (any, error)

// Method describes contract operation available for invocation.
type Method struct {
	// Name of the operation within its contract.
	Name string
	// Safe methods never write to the world state.
	Safe bool
	// Handler implements the operation.
	Handler Handler
}

// Dispatcher resolves operations by the transaction function name.
type Dispatcher interface {
	Lookup(name string) (Method, error)
}

// EncodeResult converts handler result into transaction payload: nothing for
// nil, raw bytes for strings and byte slices, true/false for booleans and
// canonical JSON for everything else.
func EncodeResult(v any) ([]byte, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(x), nil
	case []byte:
		return x, nil
	case bool:
		return []byte(strconv.FormatBool(x)), nil
	default:
		return canonical.Marshal(v)
	}
}
