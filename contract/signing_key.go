package contract

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"hackerform/model"

	"golang.org/x/crypto/hkdf"
)

// signingKeySeed is the fixed seed the auxiliary key pair is derived from.
// The private half is never persisted; it can be re-derived from the seed.
const (
	signingKeySeed      = "a spoon of salt"
	signingKeyInfo      = "hackerform/signing-key/v1"
	signingKeyAlgorithm = "ed25519"
)

func deriveSigningKey() (ed25519.PrivateKey, error) {
	kdf := hkdf.New(sha256.New, []byte(signingKeySeed), nil, []byte(signingKeyInfo))
	seed := make([]byte, ed25519.SeedSize)
	if _, err := io.ReadFull(kdf, seed); err != nil {
		return nil, fmt.Errorf("failed to derive signing key seed: %w", err)
	}
	return ed25519.NewKeyFromSeed(seed), nil
}

func newSigningKeyRecord(priv ed25519.PrivateKey) model.SigningKey {
	pub := priv.Public().(ed25519.PublicKey)
	return model.SigningKey{
		ObjectType: signingKeyObjectType,
		Algorithm:  signingKeyAlgorithm,
		PublicKey:  hex.EncodeToString(pub),
	}
}
