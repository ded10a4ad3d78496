package prisma_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oneviews/prisma"
	"github.com/oneviews/prisma/testutil"
)

func TestExecutor(t *testing.T) {
	ctx := context.Background()
	err := testutil.OpenTestStore(ctx, testutil.NewBlogProject(), prisma.Config{}, func(store *prisma.Store) {
		b := prisma.NewActionBuilder(store)
		executor := prisma.NewExecutor()

		t.Run("runs independent actions concurrently", func(t *testing.T) {
			var actions []prisma.Action
			var ids []string
			for i := 0; i < 10; i++ {
				doc := testutil.NewUserDoc()
				ids = append(ids, doc.GetString("_id"))
				action, err := prisma.CreateNode{Model: "user", Document: doc}.Interpret(b)
				assert.Nil(t, err)
				actions = append(actions, action)
			}
			results, err := executor.Execute(ctx, actions...)
			assert.Nil(t, err)
			assert.Len(t, results, len(actions))
			// results come back in input order
			for i, result := range results {
				node := result.(prisma.NodeResult)
				assert.Equal(t, ids[i], node.ID)
				has, err := store.HasDocument(ctx, "user", node.ID)
				assert.Nil(t, err)
				assert.True(t, has)
			}
		})
		t.Run("first failure fails the batch", func(t *testing.T) {
			ok, err := prisma.CreateNode{Model: "user", Document: testutil.NewUserDoc()}.Interpret(b)
			assert.Nil(t, err)
			failing := prisma.Action(func(ctx context.Context) (prisma.Result, error) {
				return nil, fmt.Errorf("boom")
			})
			results, err := executor.Execute(ctx, ok, failing)
			assert.NotNil(t, err)
			assert.Nil(t, results)
		})
		t.Run("no actions settle immediately", func(t *testing.T) {
			results, err := executor.Execute(ctx)
			assert.Nil(t, err)
			assert.Empty(t, results)
		})
	})
	assert.Nil(t, err)
}
