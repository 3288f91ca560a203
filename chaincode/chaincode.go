package chaincode

import (
	"github.com/hyperledger/fabric-chaincode-go/shim"
	pb "github.com/hyperledger/fabric-protos-go/peer"
	"github.com/tradeledger/asset-transfer/ledger"
	"go.uber.org/zap"
)

// Chaincode dispatches Fabric transactions to contract operations.
//
// Chaincode must be constructed using New.
type Chaincode struct {
	methods ledger.Dispatcher
	log     *zap.Logger
}

// New returns Chaincode resolving operations using methods. Nil logger
// disables logging.
func New(methods ledger.Dispatcher, log *zap.Logger) *Chaincode {
	if log == nil {
		log = zap.NewNop()
	}

	return &Chaincode{
		methods: methods,
		log:     log,
	}
}

// Init implements shim.Chaincode. The world state is seeded by the
// InitLedger operations, so Init does nothing.
func (x *Chaincode) Init(shim.ChaincodeStubInterface) pb.Response {
	return shim.Success(nil)
}

// Invoke implements shim.Chaincode.
func (x *Chaincode) Invoke(stub shim.ChaincodeStubInterface) pb.Response {
	fn, args := stub.GetFunctionAndParameters()

	m, err := x.methods.Lookup(fn)
	if err != nil {
		x.log.Info("unknown transaction function", zap.String("tx", stub.GetTxID()), zap.String("function", fn))
		return shim.Error(err.Error())
	}

	res, err := m.Handler(NewStore(stub), args)
	if err != nil {
		x.log.Info("transaction failed",
			zap.String("tx", stub.GetTxID()), zap.String("function", fn), zap.Error(err))
		return shim.Error(err.Error())
	}

	payload, err := ledger.EncodeResult(res)
	if err != nil {
		x.log.Error("failed to encode transaction result",
			zap.String("tx", stub.GetTxID()), zap.String("function", fn), zap.Error(err))
		return shim.Error(err.Error())
	}

	x.log.Debug("transaction executed", zap.String("tx", stub.GetTxID()), zap.String("function", fn))

	return shim.Success(payload)
}
