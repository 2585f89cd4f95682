package stream

import "strings"

// Fragments holds raw, already well-formed spans that bypass escaping.
type Fragments struct {
	spans  []string
	size   int
	fences []int
}

// NewFragments returns an empty accumulator.
func NewFragments() *Fragments {
	return &Fragments{}
}

// Append stores raw and returns its reference.
func (f *Fragments) Append(raw string) FragmentRef {
	f.spans = append(f.spans, raw)
	f.size += len(raw)
	return FragmentRef(len(f.spans) - 1)
}

// Get returns the span for ref.
func (f *Fragments) Get(ref FragmentRef) (string, bool) {
	if ref < 0 || int(ref) >= len(f.spans) {
		return "", false
	}
	return f.spans[ref], true
}

// Len is the number of stored spans.
func (f *Fragments) Len() int { return len(f.spans) }

// Size is the total byte length of stored spans.
func (f *Fragments) Size() int { return f.size }

// String concatenates every span in order.
func (f *Fragments) String() string {
	var b strings.Builder
	b.Grow(f.size)
	for _, s := range f.spans {
		b.WriteString(s)
	}
	return b.String()
}

// Fence limits Reset to spans appended after this call until release.
func (f *Fragments) Fence() (release func()) {
	idx := len(f.fences)
	f.fences = append(f.fences, len(f.spans))
	return func() {
		if len(f.fences) > idx {
			f.fences = f.fences[:idx]
		}
	}
}

// Reset drops every span, or under a fence the spans appended since it.
func (f *Fragments) Reset() {
	keep := 0
	if n := len(f.fences); n > 0 {
		keep = f.fences[n-1]
	}
	for _, s := range f.spans[keep:] {
		f.size -= len(s)
	}
	clear(f.spans[keep:])
	f.spans = f.spans[:keep]
}
