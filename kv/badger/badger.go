package badger

import (
	"context"

	"github.com/dgraph-io/badger/v3"
	"github.com/spf13/cast"

	"github.com/oneviews/prisma/kv"
	"github.com/oneviews/prisma/kv/registry"
)

func init() {
	registry.Register("badger", func(params map[string]interface{}) (kv.DB, error) {
		return Open(cast.ToString(params["storage_path"]))
	})
}

type badgerKV struct {
	db *badger.DB
}

// Open opens a badger-backed kv.DB at the given storage path.
// An empty path opens an in-memory database.
func Open(storagePath string) (kv.DB, error) {
	opts := badger.DefaultOptions(storagePath)
	if storagePath == "" {
		opts.InMemory = true
		opts.Dir = ""
		opts.ValueDir = ""
	}
	opts = opts.WithLoggingLevel(badger.ERROR)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &badgerKV{db: db}, nil
}

func (b *badgerKV) Tx(ctx context.Context, isUpdate bool, fn func(tx kv.Tx) error) error {
	tx, err := b.NewTx(isUpdate)
	if err != nil {
		return err
	}
	defer tx.Close(ctx)
	if err := fn(tx); err != nil {
		tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

func (b *badgerKV) NewTx(isUpdate bool) (kv.Tx, error) {
	return &badgerTx{txn: b.db.NewTransaction(isUpdate)}, nil
}

func (b *badgerKV) DropPrefix(ctx context.Context, prefix ...[]byte) error {
	return b.db.DropPrefix(prefix...)
}

func (b *badgerKV) Close(ctx context.Context) error {
	return b.db.Close()
}
