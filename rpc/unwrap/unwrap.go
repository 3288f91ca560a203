/*
Package unwrap provides helpers converting transaction payloads into Go
values. Every function accepts payload along with the error of the call
producing it, so calls can be wrapped directly:

	ok, err := unwrap.Bool(inv.Call(ctx, "AssetExists", id))
*/
package unwrap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/tradeledger/asset-transfer/common"
)

// Nothing checks the call error and discards the payload.
func Nothing(_ []byte, err error) error {
	return err
}

// String returns payload as a string.
func String(payload []byte, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// Bool decodes true/false payload.
func Bool(payload []byte, err error) (bool, error) {
	if err != nil {
		return false, err
	}

	res, err := strconv.ParseBool(string(payload))
	if err != nil {
		return false, fmt.Errorf("invalid boolean payload: %w", err)
	}

	return res, nil
}

// JSON decodes JSON payload into value of type T.
func JSON[T any](payload []byte, err error) (T, error) {
	var res T

	if err != nil {
		return res, err
	}

	err = json.Unmarshal(payload, &res)
	if err != nil {
		return res, fmt.Errorf("invalid JSON payload: %w", err)
	}

	return res, nil
}

// Entries decodes result of the range scan queries: JSON array where each
// element is either a record or a string holding undecodable raw value.
func Entries[T any](payload []byte, err error) ([]common.Entry[T], error) {
	items, err := JSON[[]json.RawMessage](payload, err)
	if err != nil {
		return nil, err
	}

	res := make([]common.Entry[T], len(items))

	for i := range items {
		if bytes.HasPrefix(items[i], []byte{'"'}) {
			err = json.Unmarshal(items[i], &res[i].Raw)
		} else {
			res[i].Record = new(T)
			err = json.Unmarshal(items[i], res[i].Record)
		}
		if err != nil {
			return nil, fmt.Errorf("invalid entry #%d: %w", i, err)
		}
	}

	return res, nil
}
