package prisma

// A mutaction describes an intended data mutation independent of any backend.
// Interpreting a mutaction yields a deferred Action; executing the Action
// yields exactly one Result or an error. A mutaction holds no state and is
// consumed exactly once.

// Result is the typed outcome of executing a mutaction
type Result interface {
	isResult()
}

// UnitResult signals success with no payload
type UnitResult struct{}

func (UnitResult) isResult() {}

// NodeResult carries the node a mutaction created, updated or deleted
type NodeResult struct {
	ID       string    `json:"id"`
	Document *Document `json:"document"`
}

func (NodeResult) isResult() {}

// ParentLink identifies an already-persisted parent node a nested mutaction attaches to.
// Existence of the parent is checked when the action executes, not when it is built.
type ParentLink struct {
	Model string `json:"model"`
	ID    string `json:"id"`
}

// CreateNode creates a new document in a model's collection.
// When the document carries no primary key a sortable unique id is generated.
type CreateNode struct {
	Model    string    `json:"model"`
	Document *Document `json:"document"`
}

// UpdateNode merges a patch into an existing document
type UpdateNode struct {
	Model string    `json:"model"`
	ID    string    `json:"id"`
	Patch *Document `json:"patch"`
}

// DeleteNode removes an existing document
type DeleteNode struct {
	Model string `json:"model"`
	ID    string `json:"id"`
}

// NestedCreateNode creates a document attached to an existing parent through a relation.
// The child document is written to the model's collection and a link document
// recording the parent/child pair is written to the relation's collection.
type NestedCreateNode struct {
	Model    string    `json:"model"`
	Relation string    `json:"relation"`
	Document *Document `json:"document"`
}

// ResetData drops every collection belonging to the store's project.
// Destructive: scoped to test/reset workflows and gated by Config.AllowDestructive.
type ResetData struct{}
