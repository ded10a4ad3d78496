package kv

import "context"

// DB is a pluggable key value storage engine
type DB interface {
	// Tx executes the given function against a new transaction.
	// If the function returns an error, all changes are rolled back, otherwise they are committed.
	Tx(ctx context.Context, isUpdate bool, fn func(tx Tx) error) error
	// NewTx returns a new transaction. The caller is responsible for committing/rolling back.
	NewTx(isUpdate bool) (Tx, error)
	// DropPrefix drops all keys sharing any of the given prefixes.
	// Dropping a prefix with no matching keys is a no-op.
	DropPrefix(ctx context.Context, prefix ...[]byte) error
	// Close closes the database
	Close(ctx context.Context) error
}

// IterOpts are options when creating an iterator
type IterOpts struct {
	Prefix     []byte `json:"prefix"`
	Seek       []byte `json:"seek"`
	UpperBound []byte `json:"upperBound"`
	Reverse    bool   `json:"reverse"`
}

// Tx is a transaction against a DB. Get returns nil bytes (and a nil error) when the key does not exist.
type Tx interface {
	Get(ctx context.Context, key []byte) ([]byte, error)
	Set(ctx context.Context, key, value []byte) error
	Delete(ctx context.Context, key []byte) error
	NewIterator(opts IterOpts) (Iterator, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context)
	Close(ctx context.Context)
}

// Iterator iterates over a keyspace
type Iterator interface {
	Seek(key []byte)
	Valid() bool
	Key() []byte
	Value() ([]byte, error)
	Next() error
	Close()
}
