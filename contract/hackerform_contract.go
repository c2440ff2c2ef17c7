package contract

import (
	"hackerform/model"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/hyperledger/fabric/common/flogging"
)

var logger = flogging.MustGetLogger("hackerform.contract")

// HackerFormContract collects hacker profile submissions from whitelisted identities.
// @contract:HackerFormContract
type HackerFormContract struct {
	contractapi.Contract
}

// InitLedger makes the invoker the registry admin. It can only run once.
func (s *HackerFormContract) InitLedger(ctx contractapi.TransactionContextInterface) error {
	logger.Infof("Chaincode Call: InitLedger by '%s'", MustGetCallerFullID(ctx))
	return NewRegistry(ctx).Init()
}

// AddHackerInfo stores the caller's profile under their slot. Resubmitting overwrites.
func (s *HackerFormContract) AddHackerInfo(ctx contractapi.TransactionContextInterface, info model.HackerInfo) (bool, error) {
	logger.Infof("Chaincode Call: AddHackerInfo by '%s'", MustGetCallerFullID(ctx))
	return NewRegistry(ctx).SubmitRecord(info)
}

// AddToWhitelist is admin only and fails if the account is already whitelisted.
func (s *HackerFormContract) AddToWhitelist(ctx contractapi.TransactionContextInterface, account string) error {
	logger.Infof("Chaincode Call: AddToWhitelist '%s'", account)
	return NewRegistry(ctx).AddIdentity(account)
}

// AddVecToWhitelist is admin only; already whitelisted accounts are skipped.
func (s *HackerFormContract) AddVecToWhitelist(ctx contractapi.TransactionContextInterface, accounts []string) error {
	logger.Infof("Chaincode Call: AddVecToWhitelist with %d accounts", len(accounts))
	return NewRegistry(ctx).AddIdentities(accounts)
}

func (s *HackerFormContract) GetAllHackerInfo(ctx contractapi.TransactionContextInterface) ([]model.HackerInfo, error) {
	logger.Debug("Chaincode Call: GetAllHackerInfo")
	return NewRegistry(ctx).ListRecords()
}

// HackerCount returns the next slot to be assigned, not the number of submissions.
func (s *HackerFormContract) HackerCount(ctx contractapi.TransactionContextInterface) (uint64, error) {
	logger.Debug("Chaincode Call: HackerCount")
	return NewRegistry(ctx).Count()
}

func (s *HackerFormContract) GetMyHackerID(ctx contractapi.TransactionContextInterface) (uint64, error) {
	logger.Debugf("Chaincode Call: GetMyHackerID by '%s'", MustGetCallerFullID(ctx))
	return NewRegistry(ctx).CallerSlot()
}
