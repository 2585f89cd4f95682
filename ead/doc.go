// Package ead defines the fixed vocabulary of the EAD 2002 output schema.
//
// EAD (Encoded Archival Description) is the XML schema for archival finding aids.
// This package holds:
//
//   - Namespace and schema-location constants written on the document root
//   - Tag: the closed, enumerated set of element names the exporter may emit
//   - ComponentTag: the flat (c) or numbered (c01..c12) component element for a depth
//
// Element names that arrive as runtime values (note types, controlaccess node
// names, index item types) must pass through Lookup; there is no way to emit an
// element that is not part of the enumeration.
package ead
