package contract

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"hackerform/model"
)

// World state keys.
const (
	adminKey      = "admin"
	whitelistKey  = "whitelist"
	nextSlotKey   = "next_slot"
	signingKeyKey = "signing_key"

	hackerInfoObjectType = "HackerInfo" // Composite key object type. Attribute: decimal slot.
	signingKeyObjectType = "SigningKey"
)

// zeroIdentity occupies slot 0 so that whitelist index and slot coincide.
const zeroIdentity = ""

func (r *Registry) getCurrentTxTimestamp() (time.Time, error) {
	ts, err := r.Ctx.GetStub().GetTxTimestamp()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get transaction timestamp: %w", err)
	}
	return ts.AsTime(), nil
}

func (r *Registry) createHackerInfoCompositeKey(slot model.HackerID) (string, error) {
	return r.Ctx.GetStub().CreateCompositeKey(hackerInfoObjectType, []string{strconv.FormatUint(slot, 10)})
}

func (r *Registry) isInitialized() (bool, error) {
	adminBytes, err := r.Ctx.GetStub().GetState(adminKey)
	if err != nil {
		return false, fmt.Errorf("failed to read admin identity: %w", err)
	}
	return adminBytes != nil, nil
}

// getAdmin returns "" when the registry has not been initialized.
func (r *Registry) getAdmin() (string, error) {
	adminBytes, err := r.Ctx.GetStub().GetState(adminKey)
	if err != nil {
		return "", fmt.Errorf("failed to read admin identity: %w", err)
	}
	return string(adminBytes), nil
}

func (r *Registry) getWhitelist() ([]string, error) {
	whitelistBytes, err := r.Ctx.GetStub().GetState(whitelistKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read whitelist: %w", err)
	}
	whitelist := []string{}
	if whitelistBytes == nil {
		return whitelist, nil
	}
	if err := json.Unmarshal(whitelistBytes, &whitelist); err != nil {
		return nil, fmt.Errorf("failed to unmarshal whitelist: %w", err)
	}
	return whitelist, nil
}

func (r *Registry) putWhitelist(whitelist []string) error {
	whitelistBytes, err := json.Marshal(whitelist)
	if err != nil {
		return fmt.Errorf("failed to marshal whitelist: %w", err)
	}
	if err := r.Ctx.GetStub().PutState(whitelistKey, whitelistBytes); err != nil {
		return fmt.Errorf("failed to save whitelist: %w", err)
	}
	return nil
}

// getNextSlot returns ErrNotInitialized when the counter has never been written.
func (r *Registry) getNextSlot() (model.HackerID, error) {
	slotBytes, err := r.Ctx.GetStub().GetState(nextSlotKey)
	if err != nil {
		return 0, fmt.Errorf("failed to read next slot: %w", err)
	}
	if slotBytes == nil {
		return 0, ErrNotInitialized
	}
	next, err := strconv.ParseUint(string(slotBytes), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse next slot '%s': %w", string(slotBytes), err)
	}
	return next, nil
}

func (r *Registry) putNextSlot(next model.HackerID) error {
	if err := r.Ctx.GetStub().PutState(nextSlotKey, []byte(strconv.FormatUint(next, 10))); err != nil {
		return fmt.Errorf("failed to save next slot %d: %w", next, err)
	}
	return nil
}

// getHackerInfo returns nil, nil when no record is stored at slot.
func (r *Registry) getHackerInfo(slot model.HackerID) (*model.HackerInfo, error) {
	key, err := r.createHackerInfoCompositeKey(slot)
	if err != nil {
		return nil, fmt.Errorf("failed to create hacker info key for slot %d: %w", slot, err)
	}
	infoBytes, err := r.Ctx.GetStub().GetState(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read hacker info for slot %d: %w", slot, err)
	}
	if infoBytes == nil {
		return nil, nil
	}
	var info model.HackerInfo
	if err := json.Unmarshal(infoBytes, &info); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hacker info for slot %d: %w", slot, err)
	}
	return &info, nil
}

func (r *Registry) putHackerInfo(slot model.HackerID, info model.HackerInfo) error {
	key, err := r.createHackerInfoCompositeKey(slot)
	if err != nil {
		return fmt.Errorf("failed to create hacker info key for slot %d: %w", slot, err)
	}
	infoBytes, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal hacker info for slot %d: %w", slot, err)
	}
	if err := r.Ctx.GetStub().PutState(key, infoBytes); err != nil {
		return fmt.Errorf("failed to save hacker info for slot %d: %w", slot, err)
	}
	return nil
}

func (r *Registry) getSigningKey() (*model.SigningKey, error) {
	keyBytes, err := r.Ctx.GetStub().GetState(signingKeyKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read signing key: %w", err)
	}
	if keyBytes == nil {
		return nil, ErrNotInitialized
	}
	var key model.SigningKey
	if err := json.Unmarshal(keyBytes, &key); err != nil {
		return nil, fmt.Errorf("failed to unmarshal signing key: %w", err)
	}
	return &key, nil
}

func (r *Registry) putSigningKey(key model.SigningKey) error {
	keyBytes, err := json.Marshal(key)
	if err != nil {
		return fmt.Errorf("failed to marshal signing key: %w", err)
	}
	if err := r.Ctx.GetStub().PutState(signingKeyKey, keyBytes); err != nil {
		return fmt.Errorf("failed to save signing key: %w", err)
	}
	return nil
}

// resolveSlot scans every slot below nextSlot. The last matching position wins; 0 means no match.
func resolveSlot(whitelist []string, nextSlot model.HackerID, identity string) model.HackerID {
	var slot model.HackerID
	for id := model.HackerID(0); id < nextSlot && id < model.HackerID(len(whitelist)); id++ {
		if whitelist[id] == identity {
			slot = id
		}
	}
	return slot
}
