package exporter

import (
	"github.com/hutchesonn/camh-ead-exporter/ead"
	"github.com/hutchesonn/camh-ead-exporter/record"
)

const (
	defaultActuate = "onRequest"
	defaultShow    = "new"
)

// digitalObjects links the node's digital objects. The resource always
// carries its own; components only with IncludeDigitalObjects.
func (s *scope) digitalObjects(d *record.Description) {
	if s.depth > 0 && !s.x.opts.IncludeDigitalObjects {
		return
	}
	for i := range d.Instances {
		if do := d.Instances[i].DigitalObject; do != nil {
			s.digitalObject(do)
		}
	}
}

// daoDescription is the title followed by the first date.
func daoDescription(do *record.DigitalObject) string {
	content := do.Title
	if len(do.Dates) == 0 {
		return content
	}
	if date := do.Dates[0].Display(); date != "" {
		content += ": " + date
	}
	return content
}

// fileAudience marks a file version internal only when it is explicitly
// unpublished and unpublished content was requested.
func (s *scope) fileAudience(fv *record.FileVersion) string {
	if fv.FileURI != "" && fv.Publish.IsFalse() && s.x.opts.IncludeUnpublished {
		return ead.AudienceInternal
	}
	return ead.AudienceExternal
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func (s *scope) digitalObject(do *record.DigitalObject) {
	if !s.x.visible(do.Publish) || do.Suppressed {
		return
	}

	versions := make([]*record.FileVersion, 0, len(do.FileVersions))
	for i := range do.FileVersions {
		fv := &do.FileVersions[i]
		if fv.Publish.IsTrue() || s.x.opts.IncludeUnpublished {
			versions = append(versions, fv)
		}
	}

	base := audience(do.Publish).With("xlink:title", do.Title)
	desc := daoDescription(do)

	switch len(versions) {
	case 0:
		attrs := base.
			With("xlink:type", "simple").
			With("xlink:href", do.DigitalObjectID).
			With("xlink:actuate", defaultActuate).
			With("xlink:show", defaultShow)
		s.w.OpenAttrs(ead.DAO, attrs)
		s.daoDesc(desc)
		s.w.Close()

	case 1:
		fv := versions[0]
		attrs := base.
			With("xlink:type", "simple").
			With("xlink:actuate", orDefault(fv.XlinkActuate, defaultActuate)).
			With("xlink:show", orDefault(fv.XlinkShow, defaultShow)).
			With("xlink:role", fv.UseStatement).
			With("xlink:href", fv.FileURI).
			With("xlink:audience", s.fileAudience(fv))
		s.w.OpenAttrs(ead.DAO, attrs)
		s.daoDesc(desc)
		s.w.Close()

	default:
		s.w.OpenAttrs(ead.DAOGrp, base.With("xlink:type", "extended"))
		s.daoDesc(desc)
		for _, fv := range versions {
			attrs := base.
				With("xlink:type", "locator").
				With("xlink:href", fv.FileURI).
				With("xlink:actuate", orDefault(fv.XlinkActuate, defaultActuate)).
				With("xlink:show", orDefault(fv.XlinkShow, defaultShow)).
				With("xlink:role", fv.UseStatement).
				With("xlink:title", fv.Caption).
				With("xlink:audience", s.fileAudience(fv))
			s.w.EmptyAttrs(ead.DAOLoc, attrs)
		}
		s.w.Close()
	}
}

func (s *scope) daoDesc(content string) {
	if content == "" {
		return
	}
	s.element(ead.DAODesc, nil, content, true)
}
