package exporter

import (
	"strings"

	"go.uber.org/zap"

	"github.com/hutchesonn/camh-ead-exporter/ead"
	"github.com/hutchesonn/camh-ead-exporter/stream"
	"github.com/hutchesonn/camh-ead-exporter/vocab"
)

const creationTimeLayout = "2006-01-02 15:04:05 -0700"

// renderHeader is the deferred eadheader render. It has its own containment
// so a broken header does not take the description down with it.
func (x *export) renderHeader(w *stream.Writer, f *stream.Fragments) {
	err := contain(func() error {
		x.writeHeader(&scope{x: x, w: w, f: f, ref: x.resourceID()})
		return nil
	})
	if err == nil {
		return
	}
	x.report.Failed++
	x.warnings.Add(WarningNodeFailed, x.resourceID())
	x.log.Error("eadheader export failed", zap.String("resource", x.resourceID()), zap.Error(err))
	w.Reset()
	f.Reset()
	w.Text(diagnostic("YOUR RESOURCE HEADER", err, x.opts.TraceDepth))
}

func (x *export) writeHeader(s *scope) {
	h := x.hdr
	fa := &h.FindingAid
	repo := &h.Repository
	w := s.w

	w.OpenAttrs(ead.EADHeader, stream.Attrs{}.
		With("findaidstatus", nonNull(fa.Status)).
		With("repositoryencoding", vocab.RepositoryEncoding).
		With("countryencoding", vocab.CountryEncoding).
		With("dateencoding", vocab.DateEncoding).
		With("langencoding", vocab.LangEncoding))

	w.Leaf(ead.EADID, h.EADID, stream.Attrs{}.
		With("countrycode", orDefault(nonNull(repo.Country), x.opts.CountryCode)).
		With("url", nonNull(h.EADLocation)).
		With("mainagencycode", orDefault(nonNull(repo.Code), x.opts.RepositoryCode)).
		With("encodinganalog", vocab.EADIDAnalog)...)

	w.Open(ead.FileDesc)
	x.titleStmt(s)
	if fa.EditionStatement != "" {
		s.element(ead.EditionStmt, nil, fa.EditionStatement, true)
	}
	x.publicationStmt(s)
	if fa.SeriesStatement != "" {
		s.element(ead.SeriesStmt, nil, fa.SeriesStatement, true)
	}
	if fa.Note != "" {
		w.Open(ead.NoteStmt)
		s.element(ead.Note, nil, fa.Note, true)
		w.Close()
	}
	w.Close()

	w.Open(ead.ProfileDesc)
	creation := "This finding aid was produced using " + x.opts.CreationAgent +
		" on <date>" + x.opts.Now().Format(creationTimeLayout) + "</date>."
	s.element(ead.Creation, nil, creation, false)
	if fa.Language != "" {
		s.element(ead.LangUsage, nil, fa.Language, false)
	}
	if fa.DescRules != "" {
		s.element(ead.DescRules, nil, fa.DescRules, false)
	}
	w.Close()

	if len(h.RevisionStatements) > 0 {
		w.Open(ead.RevisionDesc)
		for _, rs := range h.RevisionStatements {
			if strings.HasPrefix(strings.TrimSpace(rs.Description), "<") {
				s.mixed(rs.Description, false)
				continue
			}
			w.Open(ead.Change)
			s.element(ead.Date, nil, rs.Date, false)
			if rs.Description != "" {
				s.element(ead.Item, nil, rs.Description, false)
			}
			w.Close()
		}
		w.Close()
	}

	w.Close()
}

func (x *export) titleStmt(s *scope) {
	fa := &x.hdr.FindingAid
	title := strings.TrimSpace(fa.Title)
	if title == "" {
		if d := x.res.Description(); d != nil {
			title = d.Title
		}
	}

	s.w.Open(ead.TitleStmt)
	if fa.FilingTitle != "" {
		s.element(ead.TitleProper, stream.Attrs{stream.A("type", "filing")}, fa.FilingTitle, false)
	}
	s.element(ead.TitleProper, nil, title, false)
	if fa.Subtitle != "" {
		s.element(ead.Subtitle, nil, fa.Subtitle, false)
	}
	if fa.Author != "" {
		s.element(ead.Author, nil, fa.Author, false)
	}
	if fa.Sponsor != "" {
		s.element(ead.Sponsor, nil, fa.Sponsor, false)
	}
	s.w.Close()
}

func (x *export) publicationStmt(s *scope) {
	repo := &x.hdr.Repository
	fa := &x.hdr.FindingAid
	w := s.w

	w.Open(ead.PublicationStmt)
	s.element(ead.Publisher, nil, repo.Name, false)

	if repo.ImageURL != "" {
		w.Open(ead.P, stream.A("id", "logostmt"))
		w.Empty(ead.ExtRef,
			stream.A("xlink:href", repo.ImageURL),
			stream.A("xlink:actuate", "onLoad"),
			stream.A("xlink:show", "embed"),
			stream.A("xlink:type", "simple"))
		w.Close()
	}
	if fa.Date != "" {
		w.Open(ead.P)
		s.element(ead.Date, nil, fa.Date, false)
		w.Close()
	}
	if len(repo.AddressLines) > 0 {
		w.Open(ead.Address)
		for _, line := range repo.AddressLines {
			s.element(ead.AddressLine, nil, line, false)
		}
		if repo.URL != "" {
			w.Open(ead.AddressLine)
			w.Text("URL: ")
			w.Empty(ead.ExtPtr,
				stream.A("xlink:href", repo.URL),
				stream.A("xlink:title", repo.URL),
				stream.A("xlink:type", "simple"),
				stream.A("xlink:show", "new"))
			w.Close()
		}
		w.Close()
	}
	w.Close()
}

func nonNull(v string) string {
	if v == "null" {
		return ""
	}
	return v
}
