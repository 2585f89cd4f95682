// Package stream is the emission channel of the exporter.
//
// Output is produced in two phases:
//
//   - Recording: renderers append events (open, close, text, CDATA, raw fragment
//     reference, deferred token) to a Writer. Pre-escaped markup is registered
//     with a Fragments accumulator and referenced from the Writer, so it never
//     passes through text escaping.
//   - Materialization: a Stream walks the recorded events depth first and turns
//     them into bytes. A deferred token runs its RenderFunc against a fresh
//     Writer/Fragments pair only when the walk reaches it, emits the result in
//     place, and drops it.
//
// Deferral keeps memory proportional to the depth of the tree rather than its
// size: a resource with thousands of descendants is never held as one document.
//
// A Stream is single pass. Consuming it twice yields ErrConsumed.
package stream
