package stream

import (
	"bytes"
	"fmt"
	"io"
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/hutchesonn/camh-ead-exporter/ead"
)

// DefaultChunkSize is the flush threshold when none is configured.
const DefaultChunkSize = 64 * 1024

const xmlDeclaration = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

var (
	// ErrConsumed is yielded when a Stream is read a second time.
	ErrConsumed = errors.New("stream already consumed")
	// ErrRender wraps a panic raised by a deferred render.
	ErrRender = errors.New("deferred render failed")
)

// Stream materializes a recorded Writer into bytes.
type Stream struct {
	root        *Writer
	frags       *Fragments
	chunkSize   int
	declaration bool
	onDone      func(Stats)
	consumed    bool
}

// Stats describes a finished materialization.
type Stats struct {
	Bytes    int64
	Chunks   int
	Deferred int
	Complete bool
}

// Option configures a Stream.
type Option func(*Stream)

// WithChunkSize sets the flush threshold in bytes.
func WithChunkSize(n int) Option {
	return func(s *Stream) {
		if n > 0 {
			s.chunkSize = n
		}
	}
}

// WithDeclaration prefixes the output with an XML declaration.
func WithDeclaration() Option {
	return func(s *Stream) { s.declaration = true }
}

// OnDone registers fn to run once when the stream finishes or the consumer
// stops pulling.
func OnDone(fn func(Stats)) Option {
	return func(s *Stream) { s.onDone = fn }
}

// New wraps a recorded root writer and its fragments.
func New(root *Writer, frags *Fragments, opts ...Option) *Stream {
	if frags == nil {
		frags = NewFragments()
	}
	s := &Stream{root: root, frags: frags, chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Chunks yields the document in pieces of roughly the configured size.
// Breaking out of the loop cancels the deferred renders not yet reached.
func (s *Stream) Chunks() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		if s.consumed {
			yield(nil, ErrConsumed)
			return
		}
		s.consumed = true

		e := &emitter{size: s.chunkSize, yield: yield}
		e.buf.Grow(s.chunkSize)
		defer func() {
			s.root, s.frags = nil, nil
			if s.onDone != nil {
				s.onDone(e.stats)
			}
		}()

		if s.declaration {
			e.buf.WriteString(xmlDeclaration)
		}
		if !e.emit(s.root, s.frags) {
			return
		}
		if e.flush() {
			e.stats.Complete = true
		}
	}
}

// WriteTo drains the stream into w.
func (s *Stream) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for chunk, err := range s.Chunks() {
		if err != nil {
			return n, err
		}
		m, err := w.Write(chunk)
		n += int64(m)
		if err != nil {
			return n, errors.Wrap(err, "write chunk")
		}
	}
	return n, nil
}

// Bytes drains the stream into memory.
func (s *Stream) Bytes() ([]byte, error) {
	var b bytes.Buffer
	if _, err := s.WriteTo(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

type emitter struct {
	buf     bytes.Buffer
	size    int
	yield   func([]byte, error) bool
	stopped bool
	stats   Stats
}

// flush hands the buffered bytes to the consumer. It reports false once the
// consumer has stopped.
func (e *emitter) flush() bool {
	if e.stopped {
		return false
	}
	if e.buf.Len() == 0 {
		return true
	}
	chunk := bytes.Clone(e.buf.Bytes())
	e.buf.Reset()
	e.stats.Bytes += int64(len(chunk))
	e.stats.Chunks++
	if !e.yield(chunk, nil) {
		e.stopped = true
		return false
	}
	return true
}

func (e *emitter) maybeFlush() bool {
	if e.buf.Len() < e.size {
		return !e.stopped
	}
	return e.flush()
}

func (e *emitter) fail(err error) {
	if e.stopped {
		return
	}
	e.stopped = true
	e.yield(nil, err)
}

func (e *emitter) emit(w *Writer, f *Fragments) bool {
	if w == nil {
		return true
	}
	events := w.events
	for i := 0; i < len(events); i++ {
		ev := &events[i]
		switch ev.kind {
		case kindOpen:
			e.startTag(ev.tag, ev.attrs)
			if i+1 < len(events) && events[i+1].kind == kindClose {
				e.buf.WriteString("/>")
				i++
			} else {
				e.buf.WriteByte('>')
			}
		case kindClose:
			e.endTag(ev.tag)
		case kindText:
			e.buf.WriteString(EscapeText(ev.text))
		case kindCDATA:
			e.buf.WriteString("<![CDATA[")
			e.buf.WriteString(SplitCDATA(ev.text))
			e.buf.WriteString("]]>")
		case kindRaw:
			raw, ok := f.Get(FragmentRef(ev.ref))
			if !ok {
				e.fail(errors.Newf("fragment %d not found", ev.ref))
				return false
			}
			e.buf.WriteString(raw)
		case kindDeferred:
			fn := w.deferred[ev.ref]
			w.deferred[ev.ref] = nil
			if fn == nil {
				continue
			}
			if !e.deferred(fn) {
				return false
			}
		}
		if !e.maybeFlush() {
			return false
		}
	}
	for j := len(w.open) - 1; j >= 0; j-- {
		e.endTag(w.open[j])
	}
	return !e.stopped
}

func (e *emitter) deferred(fn RenderFunc) (ok bool) {
	cw, cf := NewWriter(), NewFragments()
	if err := render(fn, cw, cf); err != nil {
		e.fail(err)
		return false
	}
	e.stats.Deferred++
	return e.emit(cw, cf)
}

func render(fn RenderFunc, w *Writer, f *Fragments) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(ErrRender, "%v", r)
		}
	}()
	fn(w, f)
	return nil
}

func (e *emitter) startTag(tag ead.Tag, attrs Attrs) {
	e.buf.WriteByte('<')
	e.buf.WriteString(tag.String())
	for _, a := range attrs {
		fmt.Fprintf(&e.buf, ` %s="%s"`, a.Name, EscapeAttr(a.Value))
	}
}

func (e *emitter) endTag(tag ead.Tag) {
	e.buf.WriteString("</")
	e.buf.WriteString(tag.String())
	e.buf.WriteByte('>')
}
