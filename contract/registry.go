package contract

import (
	"fmt"
	"slices"

	"hackerform/model"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/hyperledger/fabric/common/flogging"
)

var regLogger = flogging.MustGetLogger("hackerform.registry")

// Registry owns the whitelist, the slot counter and the per-slot hacker records.
// It is bound to a single transaction; the peer's MVCC validation serializes
// concurrent writers of the whitelist and counter keys.
type Registry struct {
	Ctx contractapi.TransactionContextInterface
}

// NewRegistry creates a Registry for the given transaction context.
func NewRegistry(ctx contractapi.TransactionContextInterface) *Registry {
	return &Registry{Ctx: ctx}
}

// Init fixes the caller as administrator and seeds the whitelist with the zero identity.
func (r *Registry) Init() error {
	initialized, err := r.isInitialized()
	if err != nil {
		return err
	}
	if initialized {
		return ErrAlreadyInitialized
	}
	callerFullID, err := GetCurrentIdentityFullID(r.Ctx)
	if err != nil {
		return fmt.Errorf("failed to get caller identity for Init: %w", err)
	}
	priv, err := deriveSigningKey()
	if err != nil {
		return err
	}

	if err := r.putWhitelist([]string{zeroIdentity}); err != nil {
		return err
	}
	if err := r.Ctx.GetStub().PutState(adminKey, []byte(callerFullID)); err != nil {
		return fmt.Errorf("failed to save admin identity: %w", err)
	}
	if err := r.putNextSlot(1); err != nil {
		return err
	}
	if err := r.putSigningKey(newSigningKeyRecord(priv)); err != nil {
		return err
	}

	r.emitRegistryEvent(eventRegistryInitialized, callerFullID, nil)
	regLogger.Infof("Registry initialized. Admin is '%s'.", callerFullID)
	return nil
}

// requireAdmin returns the caller's ID, or ErrNoPermissions if the caller is not the administrator.
func (r *Registry) requireAdmin() (string, error) {
	callerFullID, err := GetCurrentIdentityFullID(r.Ctx)
	if err != nil {
		return "", err
	}
	admin, err := r.getAdmin()
	if err != nil {
		return "", err
	}
	if admin == "" || callerFullID != admin {
		regLogger.Warningf("Caller '%s' is not the registry admin.", callerFullID)
		return "", ErrNoPermissions
	}
	return callerFullID, nil
}

// SubmitRecord stores info under the caller's slot, replacing any earlier submission.
func (r *Registry) SubmitRecord(info model.HackerInfo) (bool, error) {
	callerFullID, err := GetCurrentIdentityFullID(r.Ctx)
	if err != nil {
		return false, err
	}
	whitelist, err := r.getWhitelist()
	if err != nil {
		return false, err
	}
	if !slices.Contains(whitelist, callerFullID) {
		regLogger.Warningf("SubmitRecord: caller '%s' is not whitelisted.", callerFullID)
		return false, ErrNoPermissions
	}
	nextSlot, err := r.getNextSlot()
	if err != nil {
		return false, err
	}
	slot := resolveSlot(whitelist, nextSlot, callerFullID)
	if slot == 0 {
		regLogger.Errorf("SubmitRecord: whitelisted caller '%s' resolved to slot 0 (whitelist length %d, next slot %d).", callerFullID, len(whitelist), nextSlot)
		return false, ErrMissingHackerID
	}

	if err := r.putHackerInfo(slot, info); err != nil {
		return false, err
	}
	r.emitRegistryEvent(eventHackerInfoSubmitted, callerFullID, map[string]interface{}{"hackerId": slot})
	regLogger.Infof("Hacker info stored at slot %d for '%s'.", slot, callerFullID)
	return true, nil
}

// AddIdentity whitelists a single identity at the next slot.
func (r *Registry) AddIdentity(identity string) error {
	callerFullID, err := r.requireAdmin()
	if err != nil {
		return err
	}
	whitelist, err := r.getWhitelist()
	if err != nil {
		return err
	}
	if slices.Contains(whitelist, identity) {
		return ErrAccountAlreadyAdded
	}
	nextSlot, err := r.getNextSlot()
	if err != nil {
		return err
	}

	slot := nextSlot
	whitelist = append(whitelist, identity)
	if err := r.putWhitelist(whitelist); err != nil {
		return err
	}
	if err := r.putNextSlot(nextSlot + 1); err != nil {
		return err
	}
	r.emitRegistryEvent(eventWhitelistUpdated, callerFullID, map[string]interface{}{
		"added":       1,
		"hackerCount": nextSlot + 1,
	})
	regLogger.Infof("Identity '%s' whitelisted at slot %d by admin '%s'.", identity, slot, callerFullID)
	return nil
}

// AddIdentities whitelists each identity not already present, in order.
// Unlike AddIdentity, duplicates are skipped without error.
func (r *Registry) AddIdentities(identities []string) error {
	callerFullID, err := r.requireAdmin()
	if err != nil {
		return err
	}
	whitelist, err := r.getWhitelist()
	if err != nil {
		return err
	}
	nextSlot, err := r.getNextSlot()
	if err != nil {
		return err
	}

	added := 0
	for _, identity := range identities {
		if slices.Contains(whitelist, identity) {
			regLogger.Debugf("AddIdentities: '%s' already whitelisted. Skipping.", identity)
			continue
		}
		whitelist = append(whitelist, identity)
		nextSlot++
		added++
	}
	if added == 0 {
		regLogger.Infof("AddIdentities: no new identities among %d submitted by admin '%s'.", len(identities), callerFullID)
		return nil
	}

	if err := r.putWhitelist(whitelist); err != nil {
		return err
	}
	if err := r.putNextSlot(nextSlot); err != nil {
		return err
	}
	r.emitRegistryEvent(eventWhitelistUpdated, callerFullID, map[string]interface{}{
		"added":       added,
		"hackerCount": nextSlot,
	})
	regLogger.Infof("AddIdentities: %d of %d identities whitelisted by admin '%s'.", added, len(identities), callerFullID)
	return nil
}

// ListRecords returns every stored record in ascending slot order.
func (r *Registry) ListRecords() ([]model.HackerInfo, error) {
	callerFullID, err := r.requireAdmin()
	if err != nil {
		return nil, err
	}
	nextSlot, err := r.getNextSlot()
	if err != nil {
		return nil, err
	}

	records := []model.HackerInfo{}
	for slot := model.HackerID(0); slot < nextSlot; slot++ {
		info, err := r.getHackerInfo(slot)
		if err != nil {
			return nil, err
		}
		if info != nil {
			records = append(records, *info)
		}
	}
	if len(records) == 0 {
		return nil, ErrEmptyHackerInfo
	}
	regLogger.Debugf("Admin '%s' retrieved %d hacker records.", callerFullID, len(records))
	return records, nil
}

// Count returns the next slot to be assigned: 1 + identities ever whitelisted.
func (r *Registry) Count() (uint64, error) {
	return r.getNextSlot()
}

// CallerSlot returns the caller's slot, or 0 if the caller is not whitelisted.
func (r *Registry) CallerSlot() (model.HackerID, error) {
	callerFullID, err := GetCurrentIdentityFullID(r.Ctx)
	if err != nil {
		return 0, err
	}
	whitelist, err := r.getWhitelist()
	if err != nil {
		return 0, err
	}
	nextSlot, err := r.getNextSlot()
	if err != nil {
		return 0, err
	}
	return resolveSlot(whitelist, nextSlot, callerFullID), nil
}
