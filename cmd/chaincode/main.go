package main

import (
	"os"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/tradeledger/asset-transfer/chaincode"
	"github.com/tradeledger/asset-transfer/contracts"
	"go.uber.org/zap"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	cc := chaincode.New(contracts.Default(), log)

	// chaincode-as-a-service when the peer connects to us, regular chaincode
	// process otherwise
	if addr := os.Getenv("CHAINCODE_SERVER_ADDRESS"); addr != "" {
		server := &shim.ChaincodeServer{
			CCID:     os.Getenv("CHAINCODE_ID"),
			Address:  addr,
			CC:       cc,
			TLSProps: shim.TLSProperties{Disabled: true},
		}

		log.Info("starting chaincode server", zap.String("address", addr))

		if err = server.Start(); err != nil {
			log.Fatal("chaincode server failed", zap.Error(err))
		}
		return
	}

	if err = shim.Start(cc); err != nil {
		log.Fatal("chaincode failed", zap.Error(err))
	}
}
