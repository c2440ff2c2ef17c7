package main

import (
	"hackerform/config"
	"hackerform/contract"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/hyperledger/fabric/common/flogging"
)

var logger = flogging.MustGetLogger("hackerform.main")

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Error loading configuration: " + err.Error())
	}
	flogging.ActivateSpec(cfg.LogSpec)

	cc, err := contractapi.NewChaincode(&contract.HackerFormContract{})
	if err != nil {
		panic("Error creating HackerFormContract: " + err.Error())
	}
	cc.Info.Title = "hackerform"
	cc.Info.Version = "1.0.0"

	if !cfg.ServerMode() {
		if err := cc.Start(); err != nil {
			panic("Error starting chaincode: " + err.Error())
		}
		return
	}

	tlsProps, err := cfg.TLSProperties()
	if err != nil {
		panic("Error loading chaincode TLS material: " + err.Error())
	}
	server := &shim.ChaincodeServer{
		CCID:     cfg.CCID,
		Address:  cfg.Address,
		CC:       cc,
		TLSProps: tlsProps,
	}
	logger.Infof("Starting chaincode server '%s' on %s (TLS disabled: %t)", cfg.CCID, cfg.Address, cfg.TLSDisabled)
	if err := server.Start(); err != nil {
		panic("Error starting chaincode server: " + err.Error())
	}
}
