package prisma

import (
	"context"

	"github.com/oneviews/prisma/errors"
	"github.com/oneviews/prisma/kv"
	"github.com/oneviews/prisma/kv/kvutil"
	"github.com/oneviews/prisma/kv/registry"
)

// Store persists a project's documents in a kv.DB.
// Every model and relation is backed by its own collection: a key prefix in a flat keyspace.
type Store struct {
	project *Project
	config  Config
	logger  Logger
	db      kv.DB
}

// Open opens a Store against a registered kv provider (see kv/registry)
func Open(ctx context.Context, provider string, params map[string]any, project *Project, cfg Config) (*Store, error) {
	db, err := registry.Open(provider, params)
	if err != nil {
		return nil, errors.Wrap(err, errors.Internal, "failed to open kv provider %s", provider)
	}
	return NewStore(ctx, project, cfg, db)
}

// NewStore creates a Store over an already-open kv.DB
func NewStore(ctx context.Context, project *Project, cfg Config, db kv.DB) (*Store, error) {
	if project == nil {
		return nil, errors.New(errors.Validation, "store: missing project descriptor")
	}
	s := &Store{
		project: project,
		config:  cfg,
		logger:  cfg.Logger,
		db:      db,
	}
	if s.logger == nil {
		level := "info"
		if cfg.Debug {
			level = "debug"
		}
		lgger, err := NewLogger(level, map[string]any{
			"project": project.Name,
		})
		if err != nil {
			return nil, err
		}
		s.logger = lgger
	}
	return s, nil
}

// Project returns the project descriptor the store was opened with
func (s *Store) Project() *Project {
	return s.project
}

// Config returns the store's config
func (s *Store) Config() Config {
	return s.config
}

// Logger returns the store's logger
func (s *Store) Logger() Logger {
	return s.logger
}

// Txn exposes the store's document operations scoped to a single kv transaction.
// Actions run their reads and writes through a Txn so a mutaction's
// check-then-act sequence commits (or rolls back) atomically.
type Txn struct {
	store *Store
	tx    kv.Tx
}

// View runs fn against a read-only transaction
func (s *Store) View(ctx context.Context, fn func(tx *Txn) error) error {
	return s.db.Tx(ctx, false, func(tx kv.Tx) error {
		return fn(&Txn{store: s, tx: tx})
	})
}

// Update runs fn against a read-write transaction.
// If fn returns an error, all changes are rolled back.
func (s *Store) Update(ctx context.Context, fn func(tx *Txn) error) error {
	return s.db.Tx(ctx, true, func(tx kv.Tx) error {
		return fn(&Txn{store: s, tx: tx})
	})
}

// GetDocument returns the document with the given id from the named collection
func (t *Txn) GetDocument(ctx context.Context, collection, id string) (*Document, error) {
	bits, err := t.tx.Get(ctx, kvutil.DocumentKey(collection, id))
	if err != nil {
		return nil, errors.Wrap(err, errors.Internal, "store: failed to get document %s/%s", collection, id)
	}
	if bits == nil {
		return nil, errors.New(errors.NotFound, "store: document %s/%s does not exist", collection, id)
	}
	return NewDocumentFromBytes(bits)
}

// HasDocument returns true if a document with the given id exists in the named collection
func (t *Txn) HasDocument(ctx context.Context, collection, id string) (bool, error) {
	bits, err := t.tx.Get(ctx, kvutil.DocumentKey(collection, id))
	if err != nil {
		return false, errors.Wrap(err, errors.Internal, "store: failed to get document %s/%s", collection, id)
	}
	return bits != nil, nil
}

// SetDocument writes the document to the named collection under the given id.
// Documents written to a model collection are validated against the model's json schema.
func (t *Txn) SetDocument(ctx context.Context, collection, id string, doc *Document) error {
	if doc == nil || !doc.Valid() {
		return errors.New(errors.Validation, "store: invalid document for %s/%s", collection, id)
	}
	if m, ok := t.store.project.Model(collection); ok {
		if err := m.ValidateDocument(doc); err != nil {
			return err
		}
	}
	if err := t.tx.Set(ctx, kvutil.DocumentKey(collection, id), doc.Bytes()); err != nil {
		return errors.Wrap(err, errors.Internal, "store: failed to set document %s/%s", collection, id)
	}
	t.store.logger.Debug(ctx, "set document", map[string]any{
		"collection": collection,
		"document":   id,
	})
	return nil
}

// DeleteDocument removes the document with the given id from the named collection
func (t *Txn) DeleteDocument(ctx context.Context, collection, id string) error {
	bits, err := t.tx.Get(ctx, kvutil.DocumentKey(collection, id))
	if err != nil {
		return errors.Wrap(err, errors.Internal, "store: failed to get document %s/%s", collection, id)
	}
	if bits == nil {
		return errors.New(errors.NotFound, "store: document %s/%s does not exist", collection, id)
	}
	if err := t.tx.Delete(ctx, kvutil.DocumentKey(collection, id)); err != nil {
		return errors.Wrap(err, errors.Internal, "store: failed to delete document %s/%s", collection, id)
	}
	t.store.logger.Debug(ctx, "deleted document", map[string]any{
		"collection": collection,
		"document":   id,
	})
	return nil
}

// GetDocument returns the document with the given id from the named collection
func (s *Store) GetDocument(ctx context.Context, collection, id string) (*Document, error) {
	var doc *Document
	err := s.View(ctx, func(tx *Txn) error {
		var err error
		doc, err = tx.GetDocument(ctx, collection, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// HasDocument returns true if a document with the given id exists in the named collection
func (s *Store) HasDocument(ctx context.Context, collection, id string) (bool, error) {
	var has bool
	err := s.View(ctx, func(tx *Txn) error {
		var err error
		has, err = tx.HasDocument(ctx, collection, id)
		return err
	})
	return has, err
}

// SetDocument writes the document to the named collection under the given id
func (s *Store) SetDocument(ctx context.Context, collection, id string, doc *Document) error {
	return s.Update(ctx, func(tx *Txn) error {
		return tx.SetDocument(ctx, collection, id, doc)
	})
}

// DeleteDocument removes the document with the given id from the named collection
func (s *Store) DeleteDocument(ctx context.Context, collection, id string) error {
	return s.Update(ctx, func(tx *Txn) error {
		return tx.DeleteDocument(ctx, collection, id)
	})
}

// DropCollection removes every document in the named collection.
// Dropping a collection that does not exist is a no-op success.
func (s *Store) DropCollection(ctx context.Context, collection string) error {
	if err := s.db.DropPrefix(ctx, kvutil.CollectionPrefix(collection)); err != nil {
		return errors.Wrap(err, errors.Internal, "store: failed to drop collection %s", collection)
	}
	s.logger.Info(ctx, "dropped collection", map[string]any{
		"collection": collection,
	})
	return nil
}

// Close closes the underlying kv.DB
func (s *Store) Close(ctx context.Context) error {
	return s.db.Close(ctx)
}
