package testutil

import (
	"context"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/oneviews/prisma"
	"github.com/oneviews/prisma/kv/badger"
)

// NewBlogProject returns a small project with user/post models and a relation between them
func NewBlogProject() *prisma.Project {
	project, err := prisma.NewProject("blog",
		[]prisma.Model{
			{Name: "user"},
			{Name: "post"},
		},
		[]prisma.Relation{
			{Name: "user_posts"},
		},
	)
	if err != nil {
		panic(err)
	}
	return project
}

// OpenTestStore opens an in-memory store for the given project and runs fn against it
func OpenTestStore(ctx context.Context, project *prisma.Project, cfg prisma.Config, fn func(store *prisma.Store)) error {
	db, err := badger.Open("")
	if err != nil {
		return err
	}
	store, err := prisma.NewStore(ctx, project, cfg, db)
	if err != nil {
		return err
	}
	defer store.Close(ctx)
	fn(store)
	return nil
}

// NewUserDoc returns a fake user document with a populated primary key
func NewUserDoc() *prisma.Document {
	doc, err := prisma.NewDocumentFrom(map[string]any{
		"_id":  gofakeit.UUID(),
		"name": gofakeit.Name(),
		"contact": map[string]any{
			"email": gofakeit.Email(),
		},
		"language": gofakeit.Language(),
		"age":      gofakeit.IntRange(18, 100),
	})
	if err != nil {
		panic(err)
	}
	return doc
}

// NewPostDoc returns a fake post document without a primary key
func NewPostDoc() *prisma.Document {
	doc, err := prisma.NewDocumentFrom(map[string]any{
		"title": gofakeit.Sentence(5),
		"body":  gofakeit.Paragraph(1, 3, 10, " "),
	})
	if err != nil {
		panic(err)
	}
	return doc
}
