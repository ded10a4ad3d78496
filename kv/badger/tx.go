package badger

import (
	"context"

	"github.com/dgraph-io/badger/v3"

	"github.com/oneviews/prisma/kv"
)

type badgerTx struct {
	txn *badger.Txn
}

func (t *badgerTx) Get(ctx context.Context, key []byte) ([]byte, error) {
	item, err := t.txn.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}
	return item.ValueCopy(nil)
}

func (t *badgerTx) Set(ctx context.Context, key, value []byte) error {
	return t.txn.Set(key, value)
}

func (t *badgerTx) Delete(ctx context.Context, key []byte) error {
	return t.txn.Delete(key)
}

func (t *badgerTx) NewIterator(kopts kv.IterOpts) (kv.Iterator, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = kopts.Prefix
	opts.Reverse = kopts.Reverse
	iter := t.txn.NewIterator(opts)
	if kopts.Seek != nil {
		iter.Seek(kopts.Seek)
	} else {
		iter.Rewind()
	}
	return &badgerIterator{iter: iter, opts: kopts}, nil
}

func (t *badgerTx) Commit(ctx context.Context) error {
	return t.txn.Commit()
}

func (t *badgerTx) Rollback(ctx context.Context) {
	t.txn.Discard()
}

func (t *badgerTx) Close(ctx context.Context) {
	// Discard is a no-op on a committed transaction
	t.txn.Discard()
}
