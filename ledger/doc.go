/*
Package ledger provides the boundary between contract handlers and the
external key-value world state.

Handlers see the world state only through Store: point reads, writes and
deletes plus ordered range scans. Everything a handler writes during one
invocation is staged and either committed as a unit or discarded, which is
the responsibility of whoever owns the Store: a Fabric peer (see package
chaincode) or a local World.

World is a single-process execution environment built on the neo-go storage
layer. It serializes submitted invocations, stages their writes in a
MemCachedStore and persists them only when the handler succeeds. Read-only
calls run against a throw-away stage and never reach the underlying store.
*/
package ledger
