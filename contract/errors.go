package contract

import "errors"

// Registry errors. These are returned unwrapped so the message reaches the client as-is;
// compare with errors.Is.
var (
	ErrNoPermissions       = errors.New("NoPermissions")
	ErrAccountAlreadyAdded = errors.New("AccountAlreadyAdded")
	ErrMissingHackerID     = errors.New("MissingHackerId")
	ErrEmptyHackerInfo     = errors.New("EmptyHackerInfo")

	ErrAlreadyInitialized = errors.New("AlreadyInitialized")
	ErrNotInitialized     = errors.New("NotInitialized")
)
