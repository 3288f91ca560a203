package common

import (
	"fmt"

	"github.com/tradeledger/asset-transfer/internal/canonical"
	"github.com/tradeledger/asset-transfer/ledger"
)

// Exists checks whether there is a non-empty value stored by the key.
func Exists(st ledger.Store, key string) (bool, error) {
	data, err := st.GetState(key)
	if err != nil {
		return false, err
	}

	return len(data) > 0, nil
}

// GetRecord reads value stored by the key and decodes it into rec. kind is
// used in error messages only. Returns ErrNotFound if there is no such key.
func GetRecord(st ledger.Store, kind, key string, rec any) error {
	data, err := st.GetState(key)
	if err != nil {
		return err
	}

	if len(data) == 0 {
		return fmt.Errorf("the %s %s %w", kind, key, ErrNotFound)
	}

	err = canonical.Unmarshal(data, rec)
	if err != nil {
		return fmt.Errorf("the %s %s: %w: %w", kind, key, ErrDecodeFailure, err)
	}

	return nil
}

// PutRecord writes canonical encoding of rec by the key.
func PutRecord(st ledger.Store, key string, rec any) error {
	data, err := canonical.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", key, err)
	}

	return st.PutState(key, data)
}

// MustNotExist returns ErrAlreadyExists if the key is in use.
func MustNotExist(st ledger.Store, kind, key string) error {
	exists, err := Exists(st, key)
	if err != nil {
		return err
	}

	if exists {
		return fmt.Errorf("the %s %s %w", kind, key, ErrAlreadyExists)
	}

	return nil
}

// MustExist returns ErrNotFound if the key is not in use.
func MustExist(st ledger.Store, kind, key string) error {
	exists, err := Exists(st, key)
	if err != nil {
		return err
	}

	if !exists {
		return fmt.Errorf("the %s %s %w", kind, key, ErrNotFound)
	}

	return nil
}

// Entry is an item of a range scan result: either a decoded record or, when
// the stored value could not be decoded, the raw value as a string.
type Entry[T any] struct {
	Record *T
	Raw    string
}

// MarshalJSON encodes Entry as the record object or as a JSON string.
func (x Entry[T]) MarshalJSON() ([]byte, error) {
	if x.Record != nil {
		return canonical.Marshal(x.Record)
	}
	return canonical.Marshal(x.Raw)
}

// ScanRecords decodes all records of the world state in ascending key order.
// Values which do not decode into T or fail validation are returned as raw
// strings instead of aborting the scan.
func ScanRecords[T any](st ledger.Store, validate func(*T) error) ([]Entry[T], error) {
	res := []Entry[T]{}

	err := ledger.Range(st, "", "", func(kv ledger.KV) error {
		var rec T

		err := canonical.Unmarshal(kv.Value, &rec)
		if err == nil && validate != nil {
			err = validate(&rec)
		}
		if err != nil {
			res = append(res, Entry[T]{Raw: string(kv.Value)})
			return nil
		}

		res = append(res, Entry[T]{Record: &rec})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
