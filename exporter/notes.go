package exporter

import (
	"regexp"
	"strings"

	"github.com/hutchesonn/camh-ead-exporter/ead"
	"github.com/hutchesonn/camh-ead-exporter/record"
	"github.com/hutchesonn/camh-ead-exporter/stream"
	"github.com/hutchesonn/camh-ead-exporter/vocab"
)

var headPattern = regexp.MustCompile(`<head( [^<>]+)?>(.+?)</head>`)

// extractHead lifts the first <head> out of content. When there is none the
// content is returned as is together with backup.
func extractHead(content, backup string) (string, string) {
	m := headPattern.FindStringSubmatchIndex(strings.TrimSpace(content))
	if m == nil {
		return content, backup
	}
	trimmed := strings.TrimSpace(content)
	whole := trimmed[m[0]:m[1]]
	head := trimmed[m[4]:m[5]]
	return strings.Replace(content, whole, "", 1), head
}

func (s *scope) noteHeading(label, noteType string) string {
	if label != "" {
		return label
	}
	return s.x.opts.Translator.Translate(vocab.NoteTypeKey(noteType), noteType)
}

// notes writes the descriptive notes that live outside did.
func (s *scope) notes(d *record.Description) {
	for i := range d.Notes {
		n := &d.Notes[i]
		if !s.x.visible(n.Publish) || n.Internal || n.Type == "" {
			continue
		}
		if _, ok := s.x.archdescTypes[n.Type]; !ok {
			continue
		}
		tag, err := ead.Lookup(n.Type)
		if err != nil {
			s.x.warnings.Add(WarningUnknownNoteType, s.ref)
			continue
		}
		if tag == ead.LegalStatus {
			s.w.OpenAttrs(ead.AccessRestrict, audience(n.Publish))
			s.noteContent(tag, n)
			s.w.Close()
			continue
		}
		s.noteContent(tag, n)
	}
}

func (s *scope) noteContent(tag ead.Tag, n *record.Note) {
	var attrs stream.Attrs
	if analog, ok := vocab.NoteEncodingAnalog(n.Type); ok {
		attrs = attrs.With("encodinganalog", analog)
	}
	attrs = attrs.Merge(audience(n.Publish))

	content, head := extractHead(n.Body(), s.noteHeading(n.Label, n.Type))
	allowP := vocab.IncludeParagraphs(n.Type)

	s.w.OpenAttrs(tag, attrs)
	if !vocab.HeadlessNote(n.Type, content) && head != "" {
		s.element(ead.Head, nil, head, false)
	}
	if strings.TrimSpace(content) != "" {
		s.mixed(content, allowP)
	}
	s.subnotes(n.Subnotes, allowP)
	s.w.Close()
}

func (s *scope) subnotes(subnotes []record.Note, allowP bool) {
	for i := range subnotes {
		sn := &subnotes[i]
		if !s.x.visible(sn.Publish) {
			continue
		}
		aud := audience(sn.Publish)

		switch sn.Kind {
		case record.NoteText:
			s.mixed(sn.Body(), allowP)

		case record.NoteChronology:
			s.w.OpenAttrs(ead.ChronList, aud)
			s.optionalHead(sn.Title)
			for _, item := range sn.ChronItems {
				s.w.Open(ead.ChronItem)
				if item.EventDate != "" {
					s.element(ead.Date, nil, item.EventDate, false)
				}
				if len(item.Events) > 0 {
					s.w.Open(ead.EventGrp)
					for _, ev := range item.Events {
						s.element(ead.Event, nil, ev, false)
					}
					s.w.Close()
				}
				s.w.Close()
			}
			s.w.Close()

		case record.NoteOrderedList:
			attrs := stream.Attrs{stream.A("type", "ordered")}
			if sn.Enumeration != "null" {
				attrs = attrs.With("numeration", sn.Enumeration)
			}
			s.w.OpenAttrs(ead.List, attrs.Merge(aud))
			s.optionalHead(sn.Title)
			for _, item := range sn.Items {
				s.element(ead.Item, nil, item, false)
			}
			s.w.Close()

		case record.NoteDefinedList:
			s.w.OpenAttrs(ead.List, stream.Attrs{stream.A("type", "deflist")}.Merge(aud))
			s.optionalHead(sn.Title)
			for _, item := range sn.DefItems {
				s.w.Open(ead.DefItem)
				if item.Label != "" {
					s.element(ead.Label, nil, item.Label, false)
				}
				if item.Value != "" {
					s.element(ead.Item, nil, item.Value, false)
				}
				s.w.Close()
			}
			s.w.Close()
		}
	}
}

func (s *scope) optionalHead(title string) {
	if title != "" {
		s.element(ead.Head, nil, title, false)
	}
}

func (s *scope) bibliographies(d *record.Description) {
	for i := range d.Bibliographies {
		b := &d.Bibliographies[i]
		if !s.x.visible(b.Publish) {
			continue
		}
		noteType := b.Type
		if noteType == "" {
			noteType = "bibliography"
		}

		s.w.OpenAttrs(ead.Bibliography, audience(b.Publish))
		s.element(ead.Head, nil, s.noteHeading(b.Label, noteType), false)
		if content := strings.Join(b.Content, "\n\n"); strings.TrimSpace(content) != "" {
			s.mixed(content, true)
		}
		for _, item := range b.Items {
			if item != "" {
				s.element(ead.BibRef, nil, item, false)
			}
		}
		s.w.Close()
	}
}

func (s *scope) indexes(d *record.Description) {
	for i := range d.Indexes {
		idx := &d.Indexes[i]
		if !s.x.visible(idx.Publish) {
			continue
		}
		head := idx.Label
		if head == "" && idx.Type != "" {
			head = s.noteHeading("", idx.Type)
		}
		content, head := extractHead(strings.Join(idx.Content, "\n\n"), head)

		s.w.OpenAttrs(ead.Index, audience(idx.Publish))
		if head != "" {
			s.element(ead.Head, nil, head, false)
		}
		if strings.TrimSpace(content) != "" {
			s.mixed(content, true)
		}
		for _, item := range idx.Items {
			s.indexEntry(item)
		}
		s.w.Close()
	}
}

func (s *scope) indexEntry(item record.IndexItem) {
	node, ok := s.x.indexTypes[item.Type]
	if !ok {
		s.x.warnings.Add(WarningUnknownIndexType, s.ref)
		return
	}
	tag, err := ead.Lookup(node)
	if err != nil {
		s.x.warnings.Add(WarningUnknownIndexType, s.ref)
		return
	}
	s.w.Open(ead.IndexEntry)
	if item.Value != "" {
		s.element(tag, nil, item.Value, false)
	}
	if item.ReferenceText != "" {
		s.element(ead.Ref, stream.Attrs{}.With("target", s.x.prefixID(item.Reference)), item.ReferenceText, false)
	}
	s.w.Close()
}
