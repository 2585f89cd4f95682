package stream

import (
	"github.com/hutchesonn/camh-ead-exporter/ead"
)

type eventKind uint8

const (
	kindOpen eventKind = iota + 1
	kindClose
	kindText
	kindCDATA
	kindRaw
	kindDeferred
)

type event struct {
	kind  eventKind
	tag   ead.Tag
	attrs Attrs
	text  string
	ref   int
}

// FragmentRef points at a raw span held by a Fragments accumulator.
type FragmentRef int

// Token marks the position of a deferred render inside a Writer.
type Token int

// RenderFunc produces the events of a deferred subtree. It receives a fresh
// Writer and Fragments pair owned by that render alone.
type RenderFunc func(w *Writer, f *Fragments)

// Writer records output events in order. It is append-only: nothing already
// recorded can be changed. Reset discards everything, or only what was
// recorded since the innermost active fence.
type Writer struct {
	events   []event
	open     []ead.Tag
	floor    int
	deferred []RenderFunc
	fences   []writerMark
}

type writerMark struct {
	events   int
	open     int
	deferred int
	floor    int
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Open starts an element.
func (w *Writer) Open(tag ead.Tag, attrs ...Attr) {
	w.events = append(w.events, event{kind: kindOpen, tag: tag, attrs: attrs})
	w.open = append(w.open, tag)
}

// OpenAttrs is Open with a prepared attribute list.
func (w *Writer) OpenAttrs(tag ead.Tag, attrs Attrs) {
	w.Open(tag, attrs...)
}

// Close ends the innermost open element. Elements opened before the current
// fence are out of reach and Close on them is ignored.
func (w *Writer) Close() {
	if len(w.open) <= w.floor {
		return
	}
	tag := w.open[len(w.open)-1]
	w.open = w.open[:len(w.open)-1]
	w.events = append(w.events, event{kind: kindClose, tag: tag})
}

// Element records tag around whatever body records.
func (w *Writer) Element(tag ead.Tag, attrs Attrs, body func()) {
	depth := len(w.open)
	w.Open(tag, attrs...)
	if body != nil {
		body()
	}
	for len(w.open) > depth && len(w.open) > w.floor {
		w.Close()
	}
}

// Leaf records an element holding only escaped text.
func (w *Writer) Leaf(tag ead.Tag, text string, attrs ...Attr) {
	w.Open(tag, attrs...)
	w.Text(text)
	w.Close()
}

// Empty records an element with no content.
func (w *Writer) Empty(tag ead.Tag, attrs ...Attr) {
	w.Open(tag, attrs...)
	w.Close()
}

// EmptyAttrs is Empty with a prepared attribute list.
func (w *Writer) EmptyAttrs(tag ead.Tag, attrs Attrs) {
	w.Empty(tag, attrs...)
}

// Text records character data, escaped on output.
func (w *Writer) Text(s string) {
	if s == "" {
		return
	}
	w.events = append(w.events, event{kind: kindText, text: s})
}

// CDATA records a literal block. A "]]>" inside s is split on output.
func (w *Writer) CDATA(s string) {
	w.events = append(w.events, event{kind: kindCDATA, text: s})
}

// Raw inserts a fragment by reference. The fragment is copied verbatim.
func (w *Writer) Raw(ref FragmentRef) {
	w.events = append(w.events, event{kind: kindRaw, ref: int(ref)})
}

// Buffer registers a deferred render at the current position.
func (w *Writer) Buffer(fn RenderFunc) Token {
	tok := Token(len(w.deferred))
	w.deferred = append(w.deferred, fn)
	w.events = append(w.events, event{kind: kindDeferred, ref: int(tok)})
	return tok
}

// Fence stops Close from reaching the elements open right now and limits
// Reset to events recorded after this call. The returned release closes
// anything opened after the fence and lifts it, along with any fence set
// after it.
func (w *Writer) Fence() (release func()) {
	idx := len(w.fences)
	m := writerMark{
		events:   len(w.events),
		open:     len(w.open),
		deferred: len(w.deferred),
		floor:    w.floor,
	}
	w.fences = append(w.fences, m)
	w.floor = m.open
	return func() {
		if len(w.fences) <= idx {
			return
		}
		w.floor = m.open
		for len(w.open) > m.open {
			w.Close()
		}
		w.floor = m.floor
		w.fences = w.fences[:idx]
	}
}

// Depth is the number of currently open elements.
func (w *Writer) Depth() int { return len(w.open) }

// Len is the number of recorded events.
func (w *Writer) Len() int { return len(w.events) }

// Reset discards recorded events and deferred renders. Under a fence only
// the ones recorded since the fence are dropped.
func (w *Writer) Reset() {
	if n := len(w.fences); n > 0 {
		m := w.fences[n-1]
		w.events = w.events[:m.events]
		w.open = w.open[:m.open]
		w.deferred = w.deferred[:m.deferred]
		w.floor = m.open
		return
	}
	w.events = w.events[:0]
	w.open = w.open[:0]
	w.deferred = w.deferred[:0]
	w.floor = 0
}
