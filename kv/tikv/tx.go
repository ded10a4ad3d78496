package tikv

import (
	"context"

	tikvErr "github.com/tikv/client-go/v2/error"
	"github.com/tikv/client-go/v2/txnkv/transaction"

	"github.com/oneviews/prisma/errors"
	"github.com/oneviews/prisma/kv"
	"github.com/oneviews/prisma/kv/kvutil"
)

type tikvTx struct {
	txn      *transaction.KVTxn
	readOnly bool
}

func (t *tikvTx) Get(ctx context.Context, key []byte) ([]byte, error) {
	val, err := t.txn.Get(ctx, key)
	if err != nil {
		if tikvErr.IsErrNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return val, nil
}

func (t *tikvTx) Set(ctx context.Context, key, value []byte) error {
	if t.readOnly {
		return errors.New(errors.Forbidden, "writes forbidden in read-only transaction")
	}
	return t.txn.Set(key, value)
}

func (t *tikvTx) Delete(ctx context.Context, key []byte) error {
	if t.readOnly {
		return errors.New(errors.Forbidden, "writes forbidden in read-only transaction")
	}
	return t.txn.Delete(key)
}

func (t *tikvTx) NewIterator(kopts kv.IterOpts) (kv.Iterator, error) {
	if kopts.Reverse {
		seek := kopts.Seek
		if seek == nil {
			seek = kopts.UpperBound
		}
		iter, err := t.txn.IterReverse(kvutil.NextPrefix(seek))
		if err != nil {
			return nil, err
		}
		return &tikvIterator{iter: iter, opts: kopts}, nil
	}
	start := kopts.Seek
	if start == nil {
		start = kopts.Prefix
	}
	iter, err := t.txn.Iter(start, kvutil.NextPrefix(kopts.Prefix))
	if err != nil {
		return nil, err
	}
	return &tikvIterator{iter: iter, opts: kopts}, nil
}

func (t *tikvTx) Commit(ctx context.Context) error {
	return t.txn.Commit(ctx)
}

func (t *tikvTx) Rollback(ctx context.Context) {
	t.txn.Rollback()
}

func (t *tikvTx) Close(ctx context.Context) {}
