package tikv

import (
	"context"
	"time"

	"github.com/spf13/cast"
	"github.com/tikv/client-go/v2/tikv"
	"github.com/tikv/client-go/v2/txnkv"

	"github.com/oneviews/prisma/errors"
	"github.com/oneviews/prisma/kv"
	"github.com/oneviews/prisma/kv/kvutil"
	"github.com/oneviews/prisma/kv/registry"
)

func init() {
	registry.Register("tikv", func(params map[string]interface{}) (kv.DB, error) {
		if params["pd_addr"] == nil {
			return nil, errors.New(errors.Validation, "'pd_addr' is a required parameter")
		}
		return Open(cast.ToString(params["pd_addr"]))
	})
}

type tikvKV struct {
	db *txnkv.Client
}

// Open opens a tikv-backed kv.DB against the given placement driver address
func Open(pdAddr string) (kv.DB, error) {
	if pdAddr == "" {
		return nil, errors.New(errors.Validation, "empty pd address")
	}
	client, err := txnkv.NewClient([]string{pdAddr})
	if err != nil {
		return nil, err
	}
	return &tikvKV{db: client}, nil
}

func (b *tikvKV) Tx(ctx context.Context, isUpdate bool, fn func(tx kv.Tx) error) error {
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

func (b *tikvKV) NewTx(isUpdate bool) (kv.Tx, error) {
	if !isUpdate {
		txn, err := b.db.Begin(tikv.WithStartTS(uint64(time.Now().Unix()) + 2))
		if err != nil {
			return nil, err
		}
		return &tikvTx{txn: txn, readOnly: true}, nil
	}
	txn, err := b.db.Begin()
	if err != nil {
		return nil, err
	}
	return &tikvTx{txn: txn}, nil
}

func (b *tikvKV) DropPrefix(ctx context.Context, prefix ...[]byte) error {
	for _, p := range prefix {
		if _, err := b.db.DeleteRange(ctx, p, kvutil.NextPrefix(p), 1); err != nil {
			return err
		}
	}
	return nil
}

func (b *tikvKV) Close(ctx context.Context) error {
	return b.db.Close()
}
