// Package vocab holds the fixed vocabularies of the export: MARC encoding
// analogs, extent labels, controlaccess buckets, note type allow-lists and
// the display labels attached to repository, title and identifier fields.
//
// Lookups never fail. A missing entry means "emit nothing" or "use the key".
package vocab
