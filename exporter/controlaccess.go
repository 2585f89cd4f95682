package exporter

import (
	"regexp"
	"sort"

	"github.com/hutchesonn/camh-ead-exporter/ead"
	"github.com/hutchesonn/camh-ead-exporter/record"
	"github.com/hutchesonn/camh-ead-exporter/stream"
	"github.com/hutchesonn/camh-ead-exporter/vocab"
)

var attrName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9._:-]*$`)

// controlAccess groups terms under the index term headings. Only headings
// with at least one term are written.
func (s *scope) controlAccess(d *record.Description) {
	if len(d.Terms) == 0 {
		return
	}
	buckets := make([][]*record.Term, len(vocab.Buckets))
	total := 0
	for i := range d.Terms {
		t := &d.Terms[i]
		b, ok := vocab.BucketFor(t.NodeName)
		if !ok {
			s.x.warnings.Add(WarningUnknownTerm, s.ref)
			continue
		}
		buckets[b] = append(buckets[b], t)
		total++
	}
	if total == 0 {
		return
	}

	s.w.Open(ead.ControlAccess)
	s.w.Leaf(ead.Head, vocab.IndexTermsHeading)
	for i, terms := range buckets {
		if len(terms) == 0 {
			continue
		}
		if s.x.opts.SortControlaccess {
			sort.SliceStable(terms, func(a, b int) bool { return terms[a].Content < terms[b].Content })
		}
		bucket := vocab.Buckets[i]
		tag, err := ead.Lookup(bucket.NodeName)
		if err != nil {
			s.x.warnings.Add(WarningUnknownTerm, s.ref)
			continue
		}

		s.w.Open(ead.ControlAccess)
		s.w.Leaf(ead.Head, bucket.Heading)
		for _, t := range terms {
			attrs := make(stream.Attrs, 0, len(t.Attrs)+1)
			for _, a := range t.Attrs {
				if attrName.MatchString(a.Name) {
					attrs = attrs.With(a.Name, a.Value)
				}
			}
			attrs = attrs.With("encodinganalog", bucket.EncodingAnalog)
			s.element(tag, attrs, t.Content, vocab.IncludeParagraphs(t.NodeName))
		}
		s.w.Close()
	}
	s.w.Close()
}
