package badger

import (
	"bytes"

	"github.com/dgraph-io/badger/v3"

	"github.com/oneviews/prisma/kv"
)

type badgerIterator struct {
	iter *badger.Iterator
	opts kv.IterOpts
}

func (b *badgerIterator) Seek(key []byte) {
	b.iter.Seek(key)
}

func (b *badgerIterator) Valid() bool {
	if !b.iter.Valid() {
		return false
	}
	if b.opts.UpperBound != nil && bytes.Compare(b.Key(), b.opts.UpperBound) > 0 {
		return false
	}
	if b.opts.Prefix != nil {
		return b.iter.ValidForPrefix(b.opts.Prefix)
	}
	return true
}

func (b *badgerIterator) Key() []byte {
	return b.iter.Item().KeyCopy(nil)
}

func (b *badgerIterator) Value() ([]byte, error) {
	return b.iter.Item().ValueCopy(nil)
}

func (b *badgerIterator) Next() error {
	b.iter.Next()
	return nil
}

func (b *badgerIterator) Close() {
	b.iter.Close()
}
