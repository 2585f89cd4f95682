// Package sanitize cleans free-text and mixed-content fields before they are
// placed in an EAD document.
//
// Stored content is a mix of plain text, pre-escaped entities and fragments of
// EAD inline markup. Prepare decides how each value can be emitted without
// double escaping and without breaking the document:
//
//	markup that parses   -> raw fragment
//	plain text           -> entities decoded, escaped once by the writer
//	anything else        -> CDATA block
//
// Every function here is pure.
package sanitize
