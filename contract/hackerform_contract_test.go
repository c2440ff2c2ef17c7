package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHackerFormContractBeforeInit(t *testing.T) {
	stub := newMockStub()
	cc := new(HackerFormContract)

	_, err := cc.HackerCount(txAs(stub, adminID))
	assert.ErrorIs(t, err, ErrNotInitialized)

	err = cc.AddToWhitelist(txAs(stub, adminID), johnID)
	assert.ErrorIs(t, err, ErrNoPermissions)

	_, err = cc.AddHackerInfo(txAs(stub, johnID), hackerInfo("John", "john"))
	assert.ErrorIs(t, err, ErrNoPermissions)

	_, err = cc.GetAllHackerInfo(txAs(stub, adminID))
	assert.ErrorIs(t, err, ErrNoPermissions)
}

func TestHackerFormContractFlow(t *testing.T) {
	stub := newMockStub()
	cc := new(HackerFormContract)

	require.NoError(t, cc.InitLedger(txAs(stub, adminID)))
	assert.Equal(t, []string{eventRegistryInitialized}, drainEvents(stub))

	count, err := cc.HackerCount(txAs(stub, eveID))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	require.NoError(t, cc.AddVecToWhitelist(txAs(stub, adminID), []string{aliceID, johnID, janeID}))
	require.ErrorIs(t, cc.AddToWhitelist(txAs(stub, adminID), aliceID), ErrAccountAlreadyAdded)

	id, err := cc.GetMyHackerID(txAs(stub, janeID))
	require.NoError(t, err)
	assert.Equal(t, uint64(3), id)

	for _, caller := range []struct{ id, name string }{{aliceID, "alice"}, {johnID, "john"}, {janeID, "jane"}} {
		ok, err := cc.AddHackerInfo(txAs(stub, caller.id), hackerInfo(caller.name, caller.name))
		require.NoError(t, err)
		assert.True(t, ok)
	}

	all, err := cc.GetAllHackerInfo(txAs(stub, adminID))
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = cc.GetAllHackerInfo(txAs(stub, janeID))
	assert.ErrorIs(t, err, ErrNoPermissions)
	assert.EqualError(t, err, "NoPermissions")
}

func TestGetMyHackerIDNotWhitelisted(t *testing.T) {
	stub := newMockStub()
	cc := new(HackerFormContract)
	require.NoError(t, cc.InitLedger(txAs(stub, adminID)))

	id, err := cc.GetMyHackerID(txAs(stub, eveID))
	require.NoError(t, err)
	assert.Zero(t, id)
}
