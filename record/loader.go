package record

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Decode reads a Document from YAML or JSON and validates it.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("record is empty")
		}
		return nil, errors.Wrap(err, "failed to parse record")
	}
	if err := Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadFile reads a Document from path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read record %s", path)
	}
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "record %s", path)
	}
	return doc, nil
}

// Validate checks struct constraints across the whole tree.
func Validate(doc *Document) error {
	v := validator.New()
	if err := v.Struct(doc); err != nil {
		return errors.Wrap(err, "invalid record")
	}
	return nil
}
