package chaincode

import (
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/tradeledger/asset-transfer/ledger"
)

// stubStore is ledger.Store over the Fabric transaction stub.
type stubStore struct {
	stub shim.ChaincodeStubInterface
}

// NewStore returns ledger.Store reading and writing the world state through
// the given stub.
func NewStore(stub shim.ChaincodeStubInterface) ledger.Store {
	return stubStore{stub: stub}
}

func (x stubStore) GetState(key string) ([]byte, error) {
	val, err := x.stub.GetState(key)
	if err != nil {
		return nil, err
	}

	if len(val) == 0 {
		return nil, nil
	}

	return val, nil
}

func (x stubStore) PutState(key string, value []byte) error {
	if len(value) == 0 {
		return x.stub.DelState(key)
	}
	return x.stub.PutState(key, value)
}

func (x stubStore) DelState(key string) error {
	return x.stub.DelState(key)
}

func (x stubStore) GetStateByRange(start, end string) (ledger.Iterator, error) {
	it, err := x.stub.GetStateByRange(start, end)
	if err != nil {
		return nil, err
	}

	return &stubIterator{it: it}, nil
}

// stubIterator fetches items from the peer on demand.
type stubIterator struct {
	it  shim.StateQueryIteratorInterface
	cur ledger.KV
	err error
}

func (x *stubIterator) Next() bool {
	for x.err == nil && x.it.HasNext() {
		kv, err := x.it.Next()
		if err != nil {
			x.err = err
			return false
		}

		// zero-length value means absent key
		if len(kv.GetValue()) == 0 {
			continue
		}

		x.cur = ledger.KV{
			Key:   kv.GetKey(),
			Value: kv.GetValue(),
		}

		return true
	}

	return false
}

func (x *stubIterator) At() ledger.KV {
	return x.cur
}

func (x *stubIterator) Err() error {
	return x.err
}

func (x *stubIterator) Close() error {
	return x.it.Close()
}
