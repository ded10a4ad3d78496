package prisma_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"

	"github.com/oneviews/prisma"
	"github.com/oneviews/prisma/testutil"
)

func TestDocument(t *testing.T) {
	t.Run("from map", func(t *testing.T) {
		doc := testutil.NewUserDoc()
		assert.True(t, doc.Valid())
		assert.NotEmpty(t, doc.GetString("_id"))
		assert.NotEmpty(t, doc.GetString("contact.email"))
	})
	t.Run("from bytes", func(t *testing.T) {
		doc, err := prisma.NewDocumentFromBytes([]byte(`{"name": "alice"}`))
		assert.Nil(t, err)
		assert.Equal(t, "alice", doc.GetString("name"))
	})
	t.Run("invalid json", func(t *testing.T) {
		_, err := prisma.NewDocumentFromBytes([]byte(`{"name":`))
		assert.NotNil(t, err)
	})
	t.Run("array is not a document", func(t *testing.T) {
		_, err := prisma.NewDocumentFromBytes([]byte(`[1,2,3]`))
		assert.NotNil(t, err)
	})
	t.Run("set nested field", func(t *testing.T) {
		doc := prisma.NewDocument()
		email := gofakeit.Email()
		assert.Nil(t, doc.Set("contact.email", email))
		assert.Equal(t, email, doc.GetString("contact.email"))
		assert.True(t, doc.Exists("contact.email"))
	})
	t.Run("set all", func(t *testing.T) {
		doc := prisma.NewDocument()
		assert.Nil(t, doc.SetAll(map[string]any{
			"name": "alice",
			"age":  30,
		}))
		assert.Equal(t, "alice", doc.GetString("name"))
		assert.EqualValues(t, 30, doc.Get("age"))
	})
	t.Run("del field", func(t *testing.T) {
		doc := testutil.NewUserDoc()
		assert.Nil(t, doc.Del("name"))
		assert.False(t, doc.Exists("name"))
	})
	t.Run("clone does not share state", func(t *testing.T) {
		doc := testutil.NewUserDoc()
		clone := doc.Clone()
		assert.Nil(t, clone.Set("name", "changed"))
		assert.NotEqual(t, doc.GetString("name"), clone.GetString("name"))
	})
	t.Run("json round trip", func(t *testing.T) {
		doc := testutil.NewUserDoc()
		bits, err := doc.MarshalJSON()
		assert.Nil(t, err)
		var decoded prisma.Document
		assert.Nil(t, decoded.UnmarshalJSON(bits))
		assert.Equal(t, doc.GetString("_id"), decoded.GetString("_id"))
	})
}
