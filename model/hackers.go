// File: model/hackers.go
package model

// HackerID is the 1-based slot assigned to a whitelisted identity. Slot 0 means "no assignment".
type HackerID = uint64

// HackerInfo is the profile record a whitelisted identity submits.
type HackerInfo struct {
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	StreetAddress1      string `json:"streetAddress1"`
	StreetAddress2      string `json:"streetAddress2,omitempty" metadata:",optional"` // Empty when not provided
	City                string `json:"city"`
	StateRegionProvince string `json:"stateRegionProvince"`
	Country             string `json:"country"`
	POBox               string `json:"poBox,omitempty" metadata:",optional"` // Empty when not provided
	Email               string `json:"email"`
	Discord             string `json:"discord"`
	Twitter             string `json:"twitter"`
}

// SigningKey holds the public half of the registry's auxiliary key pair.
type SigningKey struct {
	ObjectType string `json:"objectType"` // Always "SigningKey"
	Algorithm  string `json:"algorithm"`
	PublicKey  string `json:"publicKey"` // Hex encoded
}
