// Package storage defines the core storage interfaces that the application relies on.
// It abstracts persistence operations and transaction management so that different
// backends (e.g. PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is every storage capability the services need: accounts, the
// SGLGB reference data, assessments with their responses, MOVs and feedback,
// and the job queue.
type AllStorage interface {
	UserStorage
	LookupStorage
	AssessmentStorage
	ResponseStorage
	MOVStorage
	FeedbackStorage
	JobStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. It exposes the same domain-specific capabilities as AllStorage,
// and additionally allows committing or rolling back the ongoing transaction.
// Implementations should become unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage is the pooled handle created at startup. It is also what the health
// endpoint pings.
type Storage interface {
	AllStorage

	// Ping checks connectivity with the backend.
	Ping(ctx context.Context) error
	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction, committing when cb returns nil and rolling
	// back otherwise. Workflow transitions use it so that the status change, the
	// response flags and the jobs they enqueue land together or not at all.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
