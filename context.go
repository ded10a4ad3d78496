package prisma

import (
	"context"
	"encoding/json"
	"sync"
)

type ctxKey int

const metadataKey ctxKey = 0

// Metadata holds request-scoped key value pairs associated with a go Context.
// The logger surfaces metadata values as tags on every log line.
type Metadata struct {
	tags sync.Map
}

// NewMetadata creates metadata with the given tags
func NewMetadata(tags map[string]any) *Metadata {
	m := &Metadata{}
	m.SetAll(tags)
	return m
}

// String returns the metadata as a json string
func (m *Metadata) String() string {
	bits, _ := json.Marshal(m.Map())
	return string(bits)
}

// SetAll sets the key value fields on the metadata
func (m *Metadata) SetAll(data map[string]any) {
	for k, v := range data {
		m.tags.Store(k, v)
	}
}

// Set sets a key value pair on the metadata
func (m *Metadata) Set(key string, value any) {
	m.tags.Store(key, value)
}

// Get gets a key from the metadata if it exists
func (m *Metadata) Get(key string) (any, bool) {
	return m.tags.Load(key)
}

// Map returns the metadata key values as a map
func (m *Metadata) Map() map[string]any {
	data := map[string]any{}
	m.tags.Range(func(key, value any) bool {
		data[key.(string)] = value
		return true
	})
	return data
}

// ToContext adds the metadata to the given go context
func (m *Metadata) ToContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, metadataKey, m)
}

// GetMetadata gets metadata from the context if it exists
func GetMetadata(ctx context.Context) (*Metadata, bool) {
	m, ok := ctx.Value(metadataKey).(*Metadata)
	if ok {
		return m, true
	}
	return &Metadata{}, false
}
