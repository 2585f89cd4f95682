package exporter

import (
	"strings"

	"go.uber.org/zap"

	"github.com/hutchesonn/camh-ead-exporter/ead"
	"github.com/hutchesonn/camh-ead-exporter/record"
	"github.com/hutchesonn/camh-ead-exporter/sanitize"
	"github.com/hutchesonn/camh-ead-exporter/stream"
	"github.com/hutchesonn/camh-ead-exporter/vocab"
)

// Exporter turns resources into EAD documents. It holds no per-export state
// and may be reused.
type Exporter struct {
	opts Options
}

// New creates an exporter.
func New(opts Options) *Exporter {
	return &Exporter{opts: opts.withDefaults()}
}

// Options returns the effective options.
func (e *Exporter) Options() Options { return e.opts }

// Export records the document frame for res and returns a stream that
// renders the header and every component lazily as it is read.
func (e *Exporter) Export(res record.Resource) *stream.Stream {
	x := newExport(e.opts, res)
	w, f := stream.NewWriter(), stream.NewFragments()
	x.writeRoot(w, f)

	opts := []stream.Option{stream.WithChunkSize(e.opts.ChunkSize), stream.OnDone(x.finish)}
	if e.opts.Declaration {
		opts = append(opts, stream.WithDeclaration())
	}
	return stream.New(w, f, opts...)
}

// Report summarizes a finished export.
type Report struct {
	Nodes    int
	Skipped  int
	Failed   int
	Warnings int
	Bytes    int64
	Complete bool
}

// export is the state of one run: id generator, warnings and counters.
type export struct {
	opts  Options
	res   record.Resource
	hdr   *record.Header
	log   *zap.Logger
	hooks []Hook

	warnings *WarningAggregator
	report   Report

	didTypes      map[string]struct{}
	archdescTypes map[string]struct{}
	indexTypes    map[string]string

	onReport func(Report)
}

func newExport(opts Options, res record.Resource) *export {
	hdr := res.Header()
	if hdr == nil {
		hdr = &record.Header{}
	}
	x := &export{
		opts:     opts,
		res:      res,
		hdr:      hdr,
		log:      opts.Logger,
		hooks:    opts.Hooks.snapshot(),
		warnings: NewWarningAggregator(),
		onReport: opts.OnReport,
	}
	x.didTypes = typeSet(hdr.DidNoteTypes, vocab.DidNoteTypes)
	x.archdescTypes = typeSet(hdr.ArchdescNoteTypes, vocab.ArchdescNoteTypes)
	x.indexTypes = hdr.IndexItemTypes
	if len(x.indexTypes) == 0 {
		x.indexTypes = vocab.DefaultIndexItemTypes
	}
	return x
}

func typeSet(configured, defaults []string) map[string]struct{} {
	src := configured
	if len(src) == 0 {
		src = defaults
	}
	m := make(map[string]struct{}, len(src))
	for _, t := range src {
		m[t] = struct{}{}
	}
	return m
}

func (x *export) resourceID() string {
	if x.hdr.EADID != "" {
		return x.hdr.EADID
	}
	if d := x.res.Description(); d != nil {
		return d.RefID
	}
	return ""
}

func (x *export) finish(st stream.Stats) {
	x.report.Warnings = x.warnings.Total()
	x.report.Bytes = st.Bytes
	x.report.Complete = st.Complete
	x.warnings.LogAll(x.log, x.resourceID())
	x.log.Debug("export finished",
		zap.String("resource", x.resourceID()),
		zap.Int("nodes", x.report.Nodes),
		zap.Int("skipped", x.report.Skipped),
		zap.Int("failed", x.report.Failed),
		zap.Int("deferred", st.Deferred),
		zap.Int64("bytes", st.Bytes),
		zap.Bool("complete", st.Complete),
	)
	if x.onReport != nil {
		x.onReport(x.report)
	}
}

func (x *export) visible(publish record.Flag) bool {
	return x.opts.IncludeUnpublished || !record.Unpublished(publish)
}

// prefixID applies the id prefix. Empty and "null" ids yield "".
func (x *export) prefixID(id string) string {
	if !x.opts.ComponentIDs || id == "" || id == "null" {
		return ""
	}
	if x.opts.IDPrefix != "" && strings.HasPrefix(id, x.opts.IDPrefix) {
		return id
	}
	return x.opts.IDPrefix + id
}

func (x *export) containerID() string {
	return x.opts.IDPrefix + x.opts.NewID()
}

// scope is the output target of one node.
type scope struct {
	x     *export
	w     *stream.Writer
	f     *stream.Fragments
	ref   string
	depth int
}

func audience(publish record.Flag) stream.Attrs {
	if record.Unpublished(publish) {
		return stream.Attrs{stream.A("audience", ead.AudienceInternal)}
	}
	return nil
}

// mixed emits stored content through the sanitizer.
func (s *scope) mixed(content string, allowParagraphs bool) {
	p := sanitize.Prepare(content, allowParagraphs)
	for _, fb := range p.Fallbacks {
		s.x.warnings.Add(fallbackWarning(fb), s.ref)
	}
	switch p.Mode {
	case sanitize.ModeMarkup:
		s.w.Raw(s.f.Append(p.Content))
	case sanitize.ModeCDATA:
		s.w.CDATA(p.Content)
	default:
		s.w.Text(p.Content)
	}
}

// element wraps mixed content in tag.
func (s *scope) element(tag ead.Tag, attrs stream.Attrs, content string, allowParagraphs bool) {
	s.w.OpenAttrs(tag, attrs)
	s.mixed(content, allowParagraphs)
	s.w.Close()
}

func fallbackWarning(fb sanitize.Fallback) string {
	switch fb {
	case sanitize.FallbackUnwrapped:
		return WarningParagraphsReverted
	case sanitize.FallbackAmpersands:
		return WarningAmpersandsEscaped
	case sanitize.FallbackMalformed:
		return WarningMalformedMarkup
	case sanitize.FallbackInvalidChars:
		return WarningInvalidCharacters
	}
	return string(fb)
}

// runHooks calls every hook at point.
func (s *scope) runHooks(node record.Node, point HookPoint) error {
	for _, h := range s.x.hooks {
		if err := s.runHook(h, node, point); err != nil {
			return err
		}
	}
	return nil
}

// runHook gives h a fenced writer and fragment set. A Reset from the hook
// drops only its own output.
func (s *scope) runHook(h Hook, node record.Node, point HookPoint) error {
	defer s.w.Fence()()
	defer s.f.Fence()()
	return h.Serialize(node, s.w, s.f, point)
}
