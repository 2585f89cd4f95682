package exporter

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/hutchesonn/camh-ead-exporter/ead"
	"github.com/hutchesonn/camh-ead-exporter/record"
	"github.com/hutchesonn/camh-ead-exporter/stream"
)

func rootAttrs(d *record.Description) stream.Attrs {
	attrs := stream.Attrs{
		stream.A("xmlns", ead.Namespace),
		stream.A("xmlns:xsi", ead.XSINamespace),
		stream.A("xsi:schemaLocation", ead.SchemaLocation),
		stream.A("xmlns:xlink", ead.XLinkNamespace),
	}
	if d != nil && d.Unpublished() {
		attrs = attrs.With("audience", ead.AudienceInternal)
	}
	return attrs
}

// writeRoot records the ead element. A failure anywhere in the resource walk
// leaves the element holding only the diagnostic block.
func (x *export) writeRoot(w *stream.Writer, f *stream.Fragments) {
	var d *record.Description
	err := contain(func() error {
		d = x.res.Description()
		if d == nil {
			return errors.New("resource has no description")
		}
		w.OpenAttrs(ead.EAD, rootAttrs(d))
		return x.writeResource(d, w, f)
	})
	if err == nil {
		w.Close()
		return
	}

	x.report.Failed++
	x.warnings.Add(WarningNodeFailed, x.resourceID())
	x.log.Error("resource export failed", zap.String("resource", x.resourceID()), zap.Error(err))
	w.Reset()
	f.Reset()
	w.OpenAttrs(ead.EAD, rootAttrs(d))
	w.Text(diagnostic("YOUR RESOURCE", err, x.opts.TraceDepth))
	w.Close()
}

func (x *export) writeResource(d *record.Description, w *stream.Writer, f *stream.Fragments) error {
	x.report.Nodes++
	s := &scope{x: x, w: w, f: f, ref: d.RefID}

	w.Buffer(x.renderHeader)

	w.OpenAttrs(ead.ArchDesc, stream.Attrs{}.With("level", d.Level).With("otherlevel", d.OtherLevel))

	w.Open(ead.DID)
	s.language()
	s.repository()
	s.unitTitle(d, true)
	s.unitIDs(d, true)
	s.originations(d)
	s.extents(d, true)
	s.dates(d)
	s.didNotes(d)
	s.containers(d)
	if err := s.runHooks(x.res, HookDid); err != nil {
		return errors.Wrap(err, "did hook")
	}
	w.Close()

	if err := s.body(x.res, d); err != nil {
		return err
	}

	w.Open(ead.DSC)
	x.bufferChildren(x.res, 1, w)
	w.Close()

	w.Close()
	return nil
}

// body records everything after did, hooks at archdesc included.
func (s *scope) body(node record.Node, d *record.Description) error {
	s.digitalObjects(d)
	s.notes(d)
	s.bibliographies(d)
	s.indexes(d)
	s.controlAccess(d)
	if err := s.runHooks(node, HookArchdesc); err != nil {
		return errors.Wrap(err, "archdesc hook")
	}
	return nil
}

// bufferChildren defers every child of parent. Each child is fetched only
// when the stream reaches it.
func (x *export) bufferChildren(parent record.Node, depth int, w *stream.Writer) {
	n := parent.ChildCount()
	for i := 0; i < n; i++ {
		w.Buffer(func(cw *stream.Writer, cf *stream.Fragments) {
			x.renderComponent(parent, i, depth, cw, cf)
		})
	}
}

// renderComponent is the containment boundary of one child walk.
func (x *export) renderComponent(parent record.Node, i, depth int, w *stream.Writer, f *stream.Fragments) {
	ref := ""
	err := contain(func() error {
		node, err := parent.Child(i)
		if err != nil {
			return errors.Wrapf(err, "fetch child %d", i)
		}
		d := node.Description()
		if d == nil {
			return errors.Newf("child %d has no description", i)
		}
		ref = d.RefID
		return x.writeComponent(node, d, depth, w, f)
	})
	if err == nil {
		return
	}

	x.report.Failed++
	x.warnings.Add(WarningNodeFailed, ref)
	x.log.Error("component export failed",
		zap.String("resource", x.resourceID()),
		zap.String("ref_id", ref),
		zap.Int("depth", depth),
		zap.Int("index", i),
		zap.Error(err),
	)
	w.Reset()
	f.Reset()
	w.Text(diagnostic("ARCHIVAL OBJECTS", err, x.opts.TraceDepth))
}

func (x *export) writeComponent(node record.Node, d *record.Description, depth int, w *stream.Writer, f *stream.Fragments) error {
	if record.Unpublished(d.Publish) && !x.opts.IncludeUnpublished {
		x.report.Skipped++
		return nil
	}
	if d.Suppressed {
		x.report.Skipped++
		return nil
	}

	tag, err := ead.ComponentTag(depth, x.opts.NumberedComponentTags)
	if err != nil {
		return err
	}
	x.report.Nodes++
	s := &scope{x: x, w: w, f: f, ref: d.RefID, depth: depth}

	attrs := stream.Attrs{}.
		With("level", d.Level).
		With("otherlevel", d.OtherLevel).
		With("id", x.prefixID(d.RefID)).
		Merge(audience(d.Publish))
	w.OpenAttrs(tag, attrs)

	w.Open(ead.DID)
	s.unitTitle(d, false)
	s.unitIDs(d, false)
	s.originations(d)
	s.extents(d, false)
	s.dates(d)
	s.didNotes(d)
	s.containers(d)
	if err := s.runHooks(node, HookDid); err != nil {
		return errors.Wrap(err, "did hook")
	}
	w.Close()

	if err := s.body(node, d); err != nil {
		return err
	}

	x.bufferChildren(node, depth+1, w)
	w.Close()
	return nil
}
