package contract

import (
	"crypto/x509"

	"hackerform/model"

	"github.com/google/uuid"
	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

const (
	adminID = "x509::CN=admin,OU=admin,O=Org1::CN=ca.org1.example.com,O=org1.example.com"
	aliceID = "x509::CN=alice,OU=client,O=Org1::CN=ca.org1.example.com,O=org1.example.com"
	johnID  = "x509::CN=john,OU=client,O=Org1::CN=ca.org1.example.com,O=org1.example.com"
	janeID  = "x509::CN=jane,OU=client,O=Org1::CN=ca.org1.example.com,O=org1.example.com"
	eveID   = "x509::CN=eve,OU=client,O=Org1::CN=ca.org1.example.com,O=org1.example.com"
)

// fakeClientIdentity satisfies cid.ClientIdentity.
type fakeClientIdentity struct {
	id    string
	mspID string
	err   error
}

func (f *fakeClientIdentity) GetID() (string, error) { return f.id, f.err }
func (f *fakeClientIdentity) GetMSPID() (string, error) { return f.mspID, f.err }
func (f *fakeClientIdentity) GetAttributeValue(string) (string, bool, error) {
	return "", false, nil
}
func (f *fakeClientIdentity) AssertAttributeValue(string, string) error { return nil }
func (f *fakeClientIdentity) GetX509Certificate() (*x509.Certificate, error) {
	return nil, nil
}

func newMockStub() *shimtest.MockStub {
	return shimtest.NewMockStub("hackerform", nil)
}

// txAs starts a fresh mock transaction invoked by callerID.
func txAs(stub *shimtest.MockStub, callerID string) *contractapi.TransactionContext {
	stub.MockTransactionStart(uuid.NewString())
	ctx := new(contractapi.TransactionContext)
	ctx.SetStub(stub)
	ctx.SetClientIdentity(&fakeClientIdentity{id: callerID, mspID: "Org1MSP"})
	return ctx
}

// drainEvents returns the names of events emitted since the last drain.
func drainEvents(stub *shimtest.MockStub) []string {
	names := []string{}
	for {
		select {
		case ev := <-stub.ChaincodeEventsChannel:
			names = append(names, ev.EventName)
		default:
			return names
		}
	}
}

func hackerInfo(first, handle string) model.HackerInfo {
	return model.HackerInfo{
		FirstName:           first,
		LastName:            "Doe",
		StreetAddress1:      "1111 Brickhouse Dr.",
		City:                "City",
		StateRegionProvince: "State/Region/Province",
		Country:             "Country",
		Email:               handle + "@example.com",
		Discord:             handle,
		Twitter:             handle,
	}
}
