/*
Package canonical implements deterministic JSON encoding of ledger records.

Every replica executing the same transaction must produce byte-identical
writes, so records are never persisted in the form produced by an arbitrary
encoder. Canonical form is compact JSON where:

  - object keys are sorted in ascending byte order at every nesting level,
    objects nested inside arrays included;
  - array elements keep their order;
  - there is no insignificant whitespace;
  - integers are written in plain decimal, other numbers in the shortest
    representation that round-trips float64;
  - strings are escaped without HTML escaping.
*/
package canonical

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Marshal returns canonical encoding of v. v is first encoded with the
// standard JSON rules (struct tags, omitempty) and then canonicalized, so two
// logically equal values produce identical bytes regardless of how they were
// constructed.
func Marshal(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode JSON: %w", err)
	}

	return Canonicalize(raw)
}

// Canonicalize rewrites the given JSON document into canonical form. The
// document must consist of exactly one JSON value.
func Canonicalize(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any

	err := dec.Decode(&v)
	if err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}

	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON value")
	}

	var buf bytes.Buffer

	err = write(&buf, v)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes canonical (or any other valid) JSON into v rejecting
// fields unknown to v's type and trailing data.
func Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	err := dec.Decode(v)
	if err != nil {
		return err
	}

	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("trailing data after JSON value")
	}

	return nil
}

func write(buf *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		buf.WriteString(strconv.FormatBool(x))
	case json.Number:
		return writeNumber(buf, x)
	case string:
		return writeString(buf, x)
	case []any:
		buf.WriteByte('[')
		for i := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := write(buf, x[i]); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := write(buf, x[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unsupported JSON value type %T", v)
	}

	return nil
}

func writeNumber(buf *bytes.Buffer, n json.Number) error {
	if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
		buf.WriteString(strconv.FormatInt(i, 10))
		return nil
	}

	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", n, err)
	}

	// encoding/json uses a fixed shortest round-trip format for float64
	b, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode number %q: %w", n, err)
	}

	buf.Write(b)

	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer

	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)

	err := enc.Encode(s)
	if err != nil {
		return fmt.Errorf("encode string: %w", err)
	}

	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte{'\n'}))

	return nil
}
