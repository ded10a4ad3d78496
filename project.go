package prisma

import (
	"github.com/ghodss/yaml"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/xeipuuv/gojsonschema"

	"github.com/oneviews/prisma/errors"
)

var validate = validator.New()

// Model is a named document type persisted to its own collection.
// Schema optionally carries a json schema validating every document written to the collection.
type Model struct {
	Name   string `json:"name" validate:"required"`
	Schema string `json:"schema,omitempty"`

	loadedSchema *gojsonschema.Schema
}

// Relation links documents of two models and is persisted to its own collection
type Relation struct {
	Name string `json:"name" validate:"required"`
}

// Project is a read-only descriptor of a deployed datamodel: its models and relations
type Project struct {
	Name      string     `json:"name" validate:"required"`
	Models    []Model    `json:"models,omitempty" validate:"dive"`
	Relations []Relation `json:"relations,omitempty" validate:"dive"`
}

// NewProject creates a validated project from the given models and relations
func NewProject(name string, models []Model, relations []Relation) (*Project, error) {
	p := &Project{Name: name, Models: models, Relations: relations}
	if err := p.load(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewProjectFromYAML creates a validated project from a yaml datamodel descriptor
func NewProjectFromYAML(bits []byte) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(bits, &p); err != nil {
		return nil, errors.Wrap(err, errors.Validation, "failed to decode project yaml")
	}
	if err := p.load(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Project) load() error {
	if err := validate.Struct(p); err != nil {
		return errors.Wrap(err, errors.Validation, "invalid project descriptor")
	}
	for i, m := range p.Models {
		if m.Schema == "" {
			continue
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(m.Schema))
		if err != nil {
			return errors.Wrap(err, errors.Validation, "invalid json schema for model %s", m.Name)
		}
		p.Models[i].loadedSchema = schema
	}
	return nil
}

// ModelNames returns the collection names backing the project's models
func (p *Project) ModelNames() []string {
	return lo.Map(p.Models, func(m Model, _ int) string {
		return m.Name
	})
}

// RelationNames returns the collection names backing the project's relations
func (p *Project) RelationNames() []string {
	return lo.Map(p.Relations, func(r Relation, _ int) string {
		return r.Name
	})
}

// CollectionNames returns the de-duplicated union of model and relation collection names.
// Models and relations share a single flat collection namespace.
func (p *Project) CollectionNames() []string {
	return lo.Uniq(append(p.ModelNames(), p.RelationNames()...))
}

// Model returns the model with the given name (if it exists)
func (p *Project) Model(name string) (*Model, bool) {
	for i, m := range p.Models {
		if m.Name == name {
			return &p.Models[i], true
		}
	}
	return nil, false
}

// Relation returns the relation with the given name (if it exists)
func (p *Project) Relation(name string) (*Relation, bool) {
	for i, r := range p.Relations {
		if r.Name == name {
			return &p.Relations[i], true
		}
	}
	return nil, false
}

// ValidateDocument validates the document against the model's json schema (if one is configured)
func (m *Model) ValidateDocument(doc *Document) error {
	if m.loadedSchema == nil {
		return nil
	}
	result, err := m.loadedSchema.Validate(gojsonschema.NewBytesLoader(doc.Bytes()))
	if err != nil {
		return errors.Wrap(err, errors.Validation, "%s: failed to validate document", m.Name)
	}
	if !result.Valid() {
		var msgs []string
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return &errors.Error{Code: errors.Validation, Messages: msgs}
	}
	return nil
}
