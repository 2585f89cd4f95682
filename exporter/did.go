package exporter

import (
	"strings"

	"github.com/hutchesonn/camh-ead-exporter/ead"
	"github.com/hutchesonn/camh-ead-exporter/record"
	"github.com/hutchesonn/camh-ead-exporter/stream"
	"github.com/hutchesonn/camh-ead-exporter/vocab"
)

func (s *scope) language() {
	code := s.x.hdr.Language
	if code == "" {
		return
	}
	s.w.Open(ead.LangMaterial)
	s.w.Leaf(ead.Language, s.x.opts.Translator.Translate(vocab.LanguageKey(code), code), stream.A("langcode", code))
	s.w.Close()
}

func (s *scope) repository() {
	name := s.x.hdr.Repository.Name
	if name == "" {
		return
	}
	s.w.Open(ead.Repository,
		stream.A("label", vocab.RepositoryLabel),
		stream.A("encodinganalog", vocab.RepositoryAnalog))
	s.element(ead.CorpName, nil, name, false)
	s.w.Close()
}

func (s *scope) unitTitle(d *record.Description, root bool) {
	if d.Title == "" {
		return
	}
	var attrs stream.Attrs
	if root {
		attrs = stream.Attrs{
			stream.A("label", vocab.TitleLabel),
			stream.A("encodinganalog", vocab.TitleAnalog),
		}
	}
	s.element(ead.UnitTitle, attrs, d.Title, false)
}

func (s *scope) unitIDs(d *record.Description, root bool) {
	if root {
		if id := d.UnitID(); id != "" {
			s.w.Leaf(ead.UnitID, id, stream.Attrs{}.
				With("countrycode", s.x.opts.CountryCode).
				With("repositorycode", s.x.opts.RepositoryCode).
				With("encodinganalog", vocab.IdentifierAnalog).
				With("label", vocab.IdentifierLabel)...)
		}
	} else if d.ComponentID != "" {
		s.w.Leaf(ead.UnitID, d.ComponentID)
	}

	if !s.x.opts.IncludeUnpublished {
		return
	}
	for _, exid := range d.ExternalIDs {
		s.w.Leaf(ead.UnitID, exid.ExternalID, stream.Attrs{}.
			With("audience", ead.AudienceInternal).
			With("type", exid.Source).
			With("identifier", exid.ExternalID)...)
	}
}

func (s *scope) originations(d *record.Description) {
	for _, o := range d.Originations {
		node, ok := vocab.AgentNodeName(o.Agent.AgentType)
		if !ok {
			s.x.warnings.Add(WarningUnknownAgentType, s.ref)
			continue
		}
		tag, err := ead.Lookup(node)
		if err != nil {
			s.x.warnings.Add(WarningUnknownAgentType, s.ref)
			continue
		}
		name := o.Agent.DisplayName
		attrs := stream.Attrs{}.
			With("role", o.Relator).
			With("source", name.Source).
			With("rules", name.Rules).
			With("authfilenumber", name.AuthorityID).
			With("encodinganalog", vocab.OriginationEncodingAnalog(node))

		s.w.OpenAttrs(ead.Origination, stream.Attrs{}.With("label", vocab.FormatRole(o.Role)))
		s.element(tag, attrs, name.SortName, false)
		s.w.Close()
	}
}

// extentStatement is "<number> <label>" plus " (<summary>; <details>; <dimensions>)".
func extentStatement(e *record.Extent) string {
	var b strings.Builder
	b.WriteString(e.Number)
	b.WriteByte(' ')
	b.WriteString(vocab.ExtentLabel(e.Quantity(), e.ExtentType))

	details := make([]string, 0, 3)
	for _, v := range []string{e.ContainerSummary, e.PhysicalDetails, e.Dimensions} {
		if v != "" {
			details = append(details, v)
		}
	}
	if len(details) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(details, "; "))
		b.WriteByte(')')
	}
	return b.String()
}

// extents writes one physdesc per statement at the resource, where zero
// quantities are dropped, and one combined physdesc on components.
func (s *scope) extents(d *record.Description, root bool) {
	statements := make([]string, 0, len(d.Extents))
	for i := range d.Extents {
		e := &d.Extents[i]
		if !s.x.visible(e.Publish) {
			continue
		}
		if root && e.Quantity() == 0 {
			continue
		}
		statements = append(statements, extentStatement(e))
	}
	if len(statements) == 0 {
		return
	}

	attrs := stream.Attrs{
		stream.A("label", vocab.ExtentLabelText),
		stream.A("encodinganalog", vocab.ExtentAnalog),
	}
	if !root {
		statements = []string{strings.Join(statements, ", ")}
	}
	for _, st := range statements {
		s.w.OpenAttrs(ead.PhysDesc, attrs)
		s.element(ead.Extent, nil, st, false)
		s.w.Close()
	}
}

func (s *scope) dates(d *record.Description) {
	visible := make([]*record.Date, 0, len(d.Dates))
	for i := range d.Dates {
		if s.x.visible(d.Dates[i].Publish) {
			visible = append(visible, &d.Dates[i])
		}
	}
	for i, dt := range visible {
		attrs := stream.Attrs{}.
			With("type", dt.Type).
			With("normal", dt.Normal).
			With("era", dt.Era).
			With("calendar", dt.Calendar).
			With("datechar", dt.DateChar).
			Merge(audience(dt.Publish)).
			With("encodinganalog", vocab.DateEncodingAnalog(dt.Type))
		content := dt.Display()
		if i < len(visible)-1 {
			content += ", "
		}
		s.element(ead.UnitDate, attrs, content, false)
	}
}

func (s *scope) didNotes(d *record.Description) {
	for i := range d.Notes {
		n := &d.Notes[i]
		if !s.x.visible(n.Publish) {
			continue
		}
		if _, ok := s.x.didTypes[n.Type]; !ok {
			continue
		}
		tag, err := ead.Lookup(n.Type)
		if err != nil {
			s.x.warnings.Add(WarningUnknownNoteType, s.ref)
			continue
		}

		var attrs stream.Attrs
		if analog, ok := vocab.NoteEncodingAnalog(n.Type); ok {
			attrs = attrs.With("encodinganalog", analog)
		}
		content := n.Text(s.x.opts.IncludeUnpublished)
		allowP := vocab.IncludeParagraphs(n.Type)

		switch tag {
		case ead.Dimensions, ead.PhysFacet:
			s.w.OpenAttrs(ead.PhysDesc, audience(n.Publish))
			s.element(tag, attrs, content, allowP)
			s.w.Close()
		default:
			s.element(tag, attrs.Merge(audience(n.Publish)), content, allowP)
		}
	}
}

// containers writes the container chain of every instance placed in one.
func (s *scope) containers(d *record.Description) {
	for i := range d.Instances {
		inst := &d.Instances[i]
		if inst.SubContainer == nil {
			continue
		}
		s.containerChain(inst)
	}
}

func (s *scope) containerChain(inst *record.Instance) {
	sub := inst.SubContainer
	top := &sub.TopContainer
	parent := ""

	if top.Type != "" && top.Indicator != "" {
		id := s.x.containerID()
		text := top.Indicator
		if top.Barcode != "" {
			text += " [" + top.Barcode + "]"
		}
		attrs := stream.Attrs{}.
			With("id", id).
			With("type", top.Type).
			With("label", s.x.opts.Translator.Translate(vocab.InstanceTypeKey(inst.InstanceType), inst.InstanceType))
		if p := top.Profile; p != nil {
			if p.URL != "" {
				attrs = attrs.With("altrender", p.URL)
			} else {
				attrs = attrs.With("altrender", p.Name)
			}
		}
		s.element(ead.Container, attrs, text, false)
		parent = id
	} else {
		s.x.warnings.Add(WarningIncompleteContainer, s.ref)
	}

	levels := [][2]string{{sub.Type2, sub.Indicator2}, {sub.Type3, sub.Indicator3}}
	for _, lv := range levels {
		typ, indicator := lv[0], lv[1]
		if typ == "" && indicator == "" {
			continue
		}
		if typ == "" || indicator == "" {
			s.x.warnings.Add(WarningIncompleteContainer, s.ref)
			continue
		}
		id := s.x.containerID()
		attrs := stream.Attrs{}.With("id", id).With("parent", parent).With("type", typ)
		s.element(ead.Container, attrs, indicator, false)
		parent = id
	}
}
