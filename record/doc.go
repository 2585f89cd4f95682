// Package record defines the archival description handed to the exporter and
// a small file-backed implementation of it.
//
// The exporter only depends on the Node and Resource interfaces. Children are
// addressed by index and fetched one at a time, so an implementation backed by
// a database never has to load a whole tree.
//
// Document and Tree are the in-memory implementation used by the CLI and the
// tests. They load from YAML (or JSON, which YAML accepts) and can be cached
// as a gob snapshot:
//
//	doc, err := record.LoadFile("resource.yml")
//	if err != nil {
//	    // handle error
//	}
//	_ = record.SaveSnapshotToFile(doc, "/cache/resource.gob")
package record
