package prisma

import (
	"encoding/json"

	"github.com/spf13/cast"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/oneviews/prisma/errors"
)

// Document is an immutable-by-default JSON document stored in a collection
type Document struct {
	result gjson.Result
}

// NewDocument creates a new empty json document
func NewDocument() *Document {
	return &Document{result: gjson.Parse("{}")}
}

// NewDocumentFromBytes creates a new document from the given json bytes
func NewDocumentFromBytes(bits []byte) (*Document, error) {
	if !gjson.ValidBytes(bits) {
		return nil, errors.New(errors.Validation, "invalid json: %s", string(bits))
	}
	d := &Document{result: gjson.ParseBytes(bits)}
	if !d.Valid() {
		return nil, errors.New(errors.Validation, "invalid document")
	}
	return d, nil
}

// NewDocumentFrom creates a new document from the given value - the value must be json compatible
func NewDocumentFrom(value any) (*Document, error) {
	bits, err := json.Marshal(value)
	if err != nil {
		return nil, errors.New(errors.Validation, "failed to json encode value: %#v", value)
	}
	return NewDocumentFromBytes(bits)
}

// UnmarshalJSON satisfies the json Unmarshaler interface
func (d *Document) UnmarshalJSON(bits []byte) error {
	doc, err := NewDocumentFromBytes(bits)
	if err != nil {
		return err
	}
	*d = *doc
	return nil
}

// MarshalJSON satisfies the json Marshaler interface
func (d *Document) MarshalJSON() ([]byte, error) {
	return d.Bytes(), nil
}

// Valid returns whether the document is valid json (arrays are not documents)
func (d *Document) Valid() bool {
	return gjson.ValidBytes(d.Bytes()) && !d.result.IsArray()
}

// String returns the document as a json string
func (d *Document) String() string {
	return d.result.Raw
}

// Bytes returns the document as json bytes
func (d *Document) Bytes() []byte {
	return []byte(d.result.Raw)
}

// Value returns the document as a map
func (d *Document) Value() map[string]any {
	return cast.ToStringMap(d.result.Value())
}

// Clone allocates a new document with identical values
func (d *Document) Clone() *Document {
	return &Document{result: gjson.Parse(d.result.Raw)}
}

// Get gets a field on the document. Dot notation is supported.
func (d *Document) Get(field string) any {
	return d.result.Get(field).Value()
}

// GetString gets a string field on the document
func (d *Document) GetString(field string) string {
	return cast.ToString(d.result.Get(field).Value())
}

// Exists returns true if the field exists on the document
func (d *Document) Exists(field string) bool {
	return d.result.Get(field).Exists()
}

// Set sets a field on the document. Dot notation is supported.
func (d *Document) Set(field string, val any) error {
	raw, err := sjson.Set(d.result.Raw, field, val)
	if err != nil {
		return errors.Wrap(err, errors.Validation, "failed to set field %s", field)
	}
	d.result = gjson.Parse(raw)
	return nil
}

// SetAll sets all the given fields on the document
func (d *Document) SetAll(values map[string]any) error {
	for field, val := range values {
		if err := d.Set(field, val); err != nil {
			return err
		}
	}
	return nil
}

// Del deletes a field from the document
func (d *Document) Del(field string) error {
	raw, err := sjson.Delete(d.result.Raw, field)
	if err != nil {
		return errors.Wrap(err, errors.Validation, "failed to delete field %s", field)
	}
	d.result = gjson.Parse(raw)
	return nil
}
