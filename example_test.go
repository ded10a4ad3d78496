package prisma_test

import (
	"context"
	"fmt"

	"github.com/oneviews/prisma"
	_ "github.com/oneviews/prisma/kv/badger"
)

func ExampleResetData() {
	ctx := context.Background()
	project, err := prisma.NewProject("blog",
		[]prisma.Model{{Name: "user"}, {Name: "post"}},
		[]prisma.Relation{{Name: "user_posts"}},
	)
	if err != nil {
		panic(err)
	}
	store, err := prisma.Open(ctx, "badger", map[string]any{
		"storage_path": "",
	}, project, prisma.Config{
		AllowDestructive: true,
	})
	if err != nil {
		panic(err)
	}
	defer store.Close(ctx)

	action, err := prisma.ResetData{}.Interpret(prisma.NewActionBuilder(store))
	if err != nil {
		panic(err)
	}
	if _, err := action.Run(ctx); err != nil {
		panic(err)
	}
	fmt.Println("project truncated")
	// Output: project truncated
}

func ExampleCreateNode() {
	ctx := context.Background()
	project, err := prisma.NewProject("blog", []prisma.Model{{Name: "user"}}, nil)
	if err != nil {
		panic(err)
	}
	store, err := prisma.Open(ctx, "badger", map[string]any{
		"storage_path": "",
	}, project, prisma.Config{})
	if err != nil {
		panic(err)
	}
	defer store.Close(ctx)

	doc, err := prisma.NewDocumentFrom(map[string]any{
		"_id":  "1",
		"name": "alice",
	})
	if err != nil {
		panic(err)
	}
	action, err := prisma.CreateNode{Model: "user", Document: doc}.Interpret(prisma.NewActionBuilder(store))
	if err != nil {
		panic(err)
	}
	result, err := action.Run(ctx)
	if err != nil {
		panic(err)
	}
	fmt.Println(result.(prisma.NodeResult).ID)
	// Output: 1
}
