package prisma_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oneviews/prisma"
	"github.com/oneviews/prisma/errors"
	"github.com/oneviews/prisma/testutil"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	err := testutil.OpenTestStore(ctx, testutil.NewBlogProject(), prisma.Config{}, func(store *prisma.Store) {
		doc := testutil.NewUserDoc()
		id := doc.GetString("_id")

		t.Run("set then get", func(t *testing.T) {
			assert.Nil(t, store.SetDocument(ctx, "user", id, doc))
			got, err := store.GetDocument(ctx, "user", id)
			assert.Nil(t, err)
			assert.Equal(t, doc.GetString("contact.email"), got.GetString("contact.email"))
		})
		t.Run("has", func(t *testing.T) {
			has, err := store.HasDocument(ctx, "user", id)
			assert.Nil(t, err)
			assert.True(t, has)
			has, err = store.HasDocument(ctx, "user", "missing")
			assert.Nil(t, err)
			assert.False(t, has)
		})
		t.Run("get missing is not found", func(t *testing.T) {
			_, err := store.GetDocument(ctx, "user", "missing")
			assert.True(t, errors.HasCode(err, errors.NotFound))
		})
		t.Run("collections are isolated", func(t *testing.T) {
			_, err := store.GetDocument(ctx, "post", id)
			assert.True(t, errors.HasCode(err, errors.NotFound))
		})
		t.Run("set invalid document", func(t *testing.T) {
			err := store.SetDocument(ctx, "user", "x", nil)
			assert.True(t, errors.HasCode(err, errors.Validation))
		})
		t.Run("delete", func(t *testing.T) {
			assert.Nil(t, store.DeleteDocument(ctx, "user", id))
			_, err := store.GetDocument(ctx, "user", id)
			assert.True(t, errors.HasCode(err, errors.NotFound))
		})
		t.Run("delete missing is not found", func(t *testing.T) {
			err := store.DeleteDocument(ctx, "user", id)
			assert.True(t, errors.HasCode(err, errors.NotFound))
		})
		t.Run("drop collection", func(t *testing.T) {
			for i := 0; i < 5; i++ {
				u := testutil.NewUserDoc()
				assert.Nil(t, store.SetDocument(ctx, "user", u.GetString("_id"), u))
			}
			assert.Nil(t, store.DropCollection(ctx, "user"))
			has, err := store.HasDocument(ctx, "user", id)
			assert.Nil(t, err)
			assert.False(t, has)
		})
		t.Run("drop missing collection is a no-op", func(t *testing.T) {
			assert.Nil(t, store.DropCollection(ctx, "never-written"))
		})
		t.Run("failed update rolls back all writes", func(t *testing.T) {
			u := testutil.NewUserDoc()
			err := store.Update(ctx, func(tx *prisma.Txn) error {
				if err := tx.SetDocument(ctx, "user", u.GetString("_id"), u); err != nil {
					return err
				}
				return fmt.Errorf("abort")
			})
			assert.NotNil(t, err)
			has, err := store.HasDocument(ctx, "user", u.GetString("_id"))
			assert.Nil(t, err)
			assert.False(t, has)
		})
	})
	assert.Nil(t, err)
}

func TestStoreSchemaValidation(t *testing.T) {
	ctx := context.Background()
	project, err := prisma.NewProject("strict", []prisma.Model{
		{
			Name: "user",
			Schema: `{
				"type": "object",
				"required": ["_id", "name"],
				"properties": {
					"_id": {"type": "string"},
					"name": {"type": "string"}
				}
			}`,
		},
	}, nil)
	assert.Nil(t, err)
	err = testutil.OpenTestStore(ctx, project, prisma.Config{}, func(store *prisma.Store) {
		t.Run("schema rejects invalid document", func(t *testing.T) {
			doc, _ := prisma.NewDocumentFrom(map[string]any{"_id": "1"})
			err := store.SetDocument(ctx, "user", "1", doc)
			assert.True(t, errors.HasCode(err, errors.Validation))
		})
		t.Run("schema accepts valid document", func(t *testing.T) {
			doc, _ := prisma.NewDocumentFrom(map[string]any{"_id": "1", "name": "alice"})
			assert.Nil(t, store.SetDocument(ctx, "user", "1", doc))
		})
	})
	assert.Nil(t, err)
}

func TestStoreRequiresProject(t *testing.T) {
	_, err := prisma.NewStore(context.Background(), nil, prisma.Config{}, nil)
	assert.True(t, errors.HasCode(err, errors.Validation))
}
