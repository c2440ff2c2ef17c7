package contract

import (
	"encoding/json"
	"time"
)

const (
	eventRegistryInitialized = "RegistryInitialized"
	eventWhitelistUpdated    = "WhitelistUpdated"
	eventHackerInfoSubmitted = "HackerInfoSubmitted"
)

// emitRegistryEvent sends a chaincode event. Failures are logged and never fail the transaction.
// Payloads carry slots and counts only, never submitted profile data.
func (r *Registry) emitRegistryEvent(eventName, actorID string, additionalPayload map[string]interface{}) {
	payload := map[string]interface{}{
		"actorFullId": actorID,
	}
	if now, err := r.getCurrentTxTimestamp(); err == nil {
		payload["transactionTimestamp"] = now.Format(time.RFC3339)
	} else {
		regLogger.Warningf("emitRegistryEvent: %v. Event '%s' sent without timestamp.", err, eventName)
	}
	for k, v := range additionalPayload {
		payload[k] = v
	}
	eventBytes, err := json.Marshal(payload)
	if err != nil {
		regLogger.Warningf("emitRegistryEvent: Failed to marshal event payload for event '%s': %v", eventName, err)
		return
	}
	if errSet := r.Ctx.GetStub().SetEvent(eventName, eventBytes); errSet != nil {
		regLogger.Warningf("emitRegistryEvent: Failed to set event '%s': %v", eventName, errSet)
	}
}
