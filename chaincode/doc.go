/*
Package chaincode binds the contracts to a Hyperledger Fabric peer.

Chaincode implements shim.Chaincode: transaction function name selects the
operation through a ledger.Dispatcher, the transaction stub serves as the
world state. Endorsement, ordering, conflict detection and commit remain the
responsibility of the peer: reads and writes made through the stub become
the read/write set of the transaction.
*/
package chaincode
