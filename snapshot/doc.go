/*
Package snapshot dumps the world state into files and reads it back.

A snapshot identified by ID consists of two files in the same directory:

	'<label>-<epoch>-state.csv': world state items
	'<label>-<epoch>-manifest.json': item count and state hash

State CSV rows are 'key,value' with both fields base64-encoded, in ascending
key order. The manifest carries the base58 state hash (see
ledger.StateHash) which is checked when the snapshot is read.
*/
package snapshot
