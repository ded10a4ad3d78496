package prisma

import (
	"context"

	"github.com/nqd/flat"
	"github.com/segmentio/ksuid"
	"github.com/spf13/cast"

	"github.com/oneviews/prisma/errors"
)

// primaryKey is the document field holding a node's id
const primaryKey = "_id"

// Action is a deferred unit of work produced by an interpreter.
// Building an action performs no writes; executing it does.
type Action func(ctx context.Context) (Result, error)

// Run executes the action, yielding exactly one result or an error
func (a Action) Run(ctx context.Context) (Result, error) {
	return a(ctx)
}

// Interpreter translates a top-level mutaction into an executable action
// bound to the builder's store.
type Interpreter interface {
	Interpret(b *ActionBuilder) (Action, error)
}

// NestedInterpreter translates a mutaction that attaches to an
// already-identified parent node.
type NestedInterpreter interface {
	InterpretNested(b *ActionBuilder, parent ParentLink) (Action, error)
}

// ActionBuilder binds interpreters to a store. It must stay open for the
// lifetime of the actions it produces.
type ActionBuilder struct {
	store *Store
}

// NewActionBuilder creates an ActionBuilder over the given store
func NewActionBuilder(store *Store) *ActionBuilder {
	return &ActionBuilder{store: store}
}

// Store returns the store actions execute against
func (b *ActionBuilder) Store() *Store {
	return b.store
}

// createDocument persists a new document within the given transaction,
// generating a primary key when the document carries none.
func createDocument(ctx context.Context, tx *Txn, model string, document *Document) (NodeResult, error) {
	doc := document.Clone()
	id := cast.ToString(doc.Get(primaryKey))
	if id == "" {
		id = ksuid.New().String()
		if err := doc.Set(primaryKey, id); err != nil {
			return NodeResult{}, err
		}
	}
	has, err := tx.HasDocument(ctx, model, id)
	if err != nil {
		return NodeResult{}, err
	}
	if has {
		return NodeResult{}, errors.New(errors.Validation, "create: document %s/%s already exists", model, id)
	}
	if err := tx.SetDocument(ctx, model, id, doc); err != nil {
		return NodeResult{}, err
	}
	return NodeResult{ID: id, Document: doc}, nil
}

// Interpret translates the create into an action that persists the document,
// generating a primary key when the document carries none. The existence
// check and the write share one transaction.
func (m CreateNode) Interpret(b *ActionBuilder) (Action, error) {
	if _, ok := b.store.Project().Model(m.Model); !ok {
		return nil, errors.New(errors.Validation, "create: unknown model %s", m.Model)
	}
	if m.Document == nil || !m.Document.Valid() {
		return nil, errors.New(errors.Validation, "create: invalid document for model %s", m.Model)
	}
	return func(ctx context.Context) (Result, error) {
		var node NodeResult
		err := b.store.Update(ctx, func(tx *Txn) error {
			var err error
			node, err = createDocument(ctx, tx, m.Model, m.Document)
			return err
		})
		if err != nil {
			return nil, err
		}
		return node, nil
	}, nil
}

// Interpret translates the update into an action that merges the patch into
// the stored document within one transaction. The patch is flattened so
// nested fields merge instead of replacing entire sub-documents.
func (m UpdateNode) Interpret(b *ActionBuilder) (Action, error) {
	if _, ok := b.store.Project().Model(m.Model); !ok {
		return nil, errors.New(errors.Validation, "update: unknown model %s", m.Model)
	}
	if m.ID == "" {
		return nil, errors.New(errors.Validation, "update: empty document id for model %s", m.Model)
	}
	if m.Patch == nil || !m.Patch.Valid() {
		return nil, errors.New(errors.Validation, "update: invalid patch for %s/%s", m.Model, m.ID)
	}
	if m.Patch.Exists(primaryKey) && m.Patch.GetString(primaryKey) != m.ID {
		return nil, errors.New(errors.Validation, "update: primary key is immutable")
	}
	return func(ctx context.Context) (Result, error) {
		var after *Document
		err := b.store.Update(ctx, func(tx *Txn) error {
			before, err := tx.GetDocument(ctx, m.Model, m.ID)
			if err != nil {
				return err
			}
			after = before.Clone()
			flattened, err := flat.Flatten(m.Patch.Value(), nil)
			if err != nil {
				return errors.Wrap(err, errors.Internal, "update: failed to flatten patch for %s/%s", m.Model, m.ID)
			}
			if err := after.SetAll(flattened); err != nil {
				return err
			}
			return tx.SetDocument(ctx, m.Model, m.ID, after)
		})
		if err != nil {
			return nil, err
		}
		return NodeResult{ID: m.ID, Document: after}, nil
	}, nil
}

// Interpret translates the delete into an action that removes the stored
// document within one transaction and returns it.
func (m DeleteNode) Interpret(b *ActionBuilder) (Action, error) {
	if _, ok := b.store.Project().Model(m.Model); !ok {
		return nil, errors.New(errors.Validation, "delete: unknown model %s", m.Model)
	}
	if m.ID == "" {
		return nil, errors.New(errors.Validation, "delete: empty document id for model %s", m.Model)
	}
	return func(ctx context.Context) (Result, error) {
		var doc *Document
		err := b.store.Update(ctx, func(tx *Txn) error {
			var err error
			doc, err = tx.GetDocument(ctx, m.Model, m.ID)
			if err != nil {
				return err
			}
			return tx.DeleteDocument(ctx, m.Model, m.ID)
		})
		if err != nil {
			return nil, err
		}
		return NodeResult{ID: m.ID, Document: doc}, nil
	}, nil
}

// InterpretNested translates the nested create into an action that verifies
// the parent exists, persists the child document and writes a link document
// into the relation's collection - all within one transaction, so a failed
// link write rolls back the child.
func (m NestedCreateNode) InterpretNested(b *ActionBuilder, parent ParentLink) (Action, error) {
	project := b.store.Project()
	if _, ok := project.Model(m.Model); !ok {
		return nil, errors.New(errors.Validation, "nested create: unknown model %s", m.Model)
	}
	if _, ok := project.Relation(m.Relation); !ok {
		return nil, errors.New(errors.Validation, "nested create: unknown relation %s", m.Relation)
	}
	if _, ok := project.Model(parent.Model); !ok {
		return nil, errors.New(errors.Validation, "nested create: unknown parent model %s", parent.Model)
	}
	if parent.ID == "" {
		return nil, errors.New(errors.Validation, "nested create: empty parent id")
	}
	if m.Document == nil || !m.Document.Valid() {
		return nil, errors.New(errors.Validation, "nested create: invalid document for model %s", m.Model)
	}
	return func(ctx context.Context) (Result, error) {
		var child NodeResult
		err := b.store.Update(ctx, func(tx *Txn) error {
			has, err := tx.HasDocument(ctx, parent.Model, parent.ID)
			if err != nil {
				return err
			}
			if !has {
				return errors.New(errors.NotFound, "nested create: parent %s/%s does not exist", parent.Model, parent.ID)
			}
			child, err = createDocument(ctx, tx, m.Model, m.Document)
			if err != nil {
				return err
			}
			linkID := ksuid.New().String()
			link, err := NewDocumentFrom(map[string]any{
				primaryKey:    linkID,
				"parentModel": parent.Model,
				"parentId":    parent.ID,
				"childModel":  m.Model,
				"childId":     child.ID,
			})
			if err != nil {
				return err
			}
			return tx.SetDocument(ctx, m.Relation, linkID, link)
		})
		if err != nil {
			return nil, err
		}
		return child, nil
	}, nil
}
