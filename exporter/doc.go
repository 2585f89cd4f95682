// Package exporter turns an archival resource into an EAD 2002 document.
//
// The exporter walks a record.Resource depth first and records elements on a
// stream.Writer. The eadheader and every component below dsc are deferred
// renders, so a resource with thousands of components is only fetched and
// rendered as the returned stream is read.
//
// # Usage
//
//	doc, _ := record.LoadFile("resource.yml")
//
//	opts := exporter.DefaultOptions()
//	opts.IncludeDigitalObjects = true
//	opts.Logger = logger
//
//	s := exporter.New(opts).Export(doc)
//	if _, err := s.WriteTo(out); err != nil {
//	    return err
//	}
//
// # Hooks
//
// Extra output can be attached to every node through a HookRegistry. Hooks
// run in registration order at two points: the end of did and the end of the
// descriptive body. A hook can only append; it cannot close elements it did
// not open.
//
// # Failures
//
// A component that fails, through an error or a panic, is replaced by a text
// block starting with "EXPORT ERROR" and the walk continues with its next
// sibling. Content the sanitizer had to repair is counted per warning type and
// logged once per export. The Report passed to Options.OnReport carries the
// totals.
//
// # Thread Safety
//
// An Exporter may be shared. Each call to Export creates its own state, and
// the returned stream must be read from a single goroutine.
package exporter
