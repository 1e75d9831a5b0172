package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when Begin or WithTx is called on a handle that
	// is already bound to a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback outside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicate is wrapped into errors caused by a unique constraint, such as
	// a second account with the same email.
	ErrDuplicate = errors.New("duplicate key")
)
