package contract

import (
	"crypto/ed25519"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveSigningKey(t *testing.T) {
	first, err := deriveSigningKey()
	require.NoError(t, err)
	second, err := deriveSigningKey()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	record := newSigningKeyRecord(first)
	assert.Equal(t, signingKeyObjectType, record.ObjectType)
	assert.Equal(t, signingKeyAlgorithm, record.Algorithm)

	pub, err := hex.DecodeString(record.PublicKey)
	require.NoError(t, err)
	require.Len(t, pub, ed25519.PublicKeySize)

	msg := []byte("hi, how are ya?")
	assert.True(t, ed25519.Verify(pub, msg, ed25519.Sign(first, msg)))
}
