package record

import (
	"bytes"
	"encoding/gob"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// EncodeSnapshot encodes a Document using gob encoding.
// Snapshots skip YAML parsing and validation when the same record is exported
// repeatedly.
//
// Example:
//
//	doc, _ := record.LoadFile("resource.yml")
//	data, err := record.EncodeSnapshot(doc)
//	if err != nil {
//	    // handle error
//	}
//	os.WriteFile("/cache/resource.gob", data, 0644)
func EncodeSnapshot(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteSnapshot(doc, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeSnapshot decodes a Document produced by EncodeSnapshot.
func DecodeSnapshot(data []byte) (*Document, error) {
	return ReadSnapshot(bytes.NewReader(data))
}

// SaveSnapshotToFile writes a Document snapshot to path.
//
// Example:
//
//	if err := record.SaveSnapshotToFile(doc, "/cache/resource.gob"); err != nil {
//	    // handle error
//	}
func SaveSnapshotToFile(doc *Document, path string) error {
	data, err := EncodeSnapshot(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write snapshot %s", path)
	}
	return nil
}

// LoadSnapshotFromFile reads a Document snapshot from path.
//
// Example:
//
//	doc, err := record.LoadSnapshotFromFile("/cache/resource.gob")
//	if err != nil {
//	    // Cache miss or stale snapshot, parse the record again
//	    doc, _ = record.LoadFile("resource.yml")
//	}
func LoadSnapshotFromFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read snapshot %s", path)
	}
	return DecodeSnapshot(data)
}

// WriteSnapshot encodes a Document to w.
func WriteSnapshot(doc *Document, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(doc); err != nil {
		return errors.Wrap(err, "failed to encode record snapshot")
	}
	return nil
}

// ReadSnapshot decodes a Document from r.
func ReadSnapshot(r io.Reader) (*Document, error) {
	var doc Document
	if err := gob.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode record snapshot")
	}
	return &doc, nil
}
