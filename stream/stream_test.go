package stream

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hutchesonn/camh-ead-exporter/ead"
)

func drain(t *testing.T, s *Stream) string {
	t.Helper()
	out, err := s.Bytes()
	require.NoError(t, err)
	return string(out)
}

// TestWriter_BasicElements verifies escaping, attributes and self-closing output.
func TestWriter_BasicElements(t *testing.T) {
	w := NewWriter()
	w.Open(ead.DID, A("id", `a"b`))
	w.Leaf(ead.UnitTitle, "Fish & <Chips>")
	w.Empty(ead.Container, A("type", "Box"))
	w.Close()

	got := drain(t, New(w, nil))
	assert.Equal(t, `<did id="a&quot;b"><unittitle>Fish &amp; &lt;Chips&gt;</unittitle><container type="Box"/></did>`, got)
}

// TestWriter_RawFragmentNotEscaped verifies fragments are copied verbatim.
func TestWriter_RawFragmentNotEscaped(t *testing.T) {
	w, f := NewWriter(), NewFragments()
	w.Element(ead.P, nil, func() {
		w.Raw(f.Append("<emph render=\"bold\">a &amp; b</emph>"))
	})

	got := drain(t, New(w, f))
	assert.Equal(t, `<p><emph render="bold">a &amp; b</emph></p>`, got)
}

func TestWriter_CDATASplit(t *testing.T) {
	w := NewWriter()
	w.Element(ead.P, nil, func() { w.CDATA("x]]>y") })
	got := drain(t, New(w, nil))
	assert.Equal(t, `<p><![CDATA[x]]]]><![CDATA[>y]]></p>`, got)
	require.NoError(t, xml.Unmarshal([]byte(got), new(struct{})))
}

// TestWriter_AutoCloseOpenElements verifies a render that forgets to close
// still yields balanced output.
func TestWriter_AutoCloseOpenElements(t *testing.T) {
	w := NewWriter()
	w.Open(ead.ArchDesc)
	w.Buffer(func(cw *Writer, _ *Fragments) {
		cw.Open(ead.C)
		cw.Open(ead.DID)
		cw.Text("x")
	})

	got := drain(t, New(w, nil))
	assert.Equal(t, `<archdesc><c><did>x</did></c></archdesc>`, got)
}

func TestWriter_FenceProtectsParents(t *testing.T) {
	w := NewWriter()
	w.Open(ead.DID)
	release := w.Fence()
	w.Close() // out of reach
	w.Open(ead.Note)
	w.Text("hook")
	release()
	w.Leaf(ead.UnitID, "1")
	w.Close()

	got := drain(t, New(w, nil))
	assert.Equal(t, `<did><note>hook</note><unitid>1</unitid></did>`, got)
}

// TestWriter_ResetUnderFence verifies Reset inside a fence keeps everything
// recorded before it.
func TestWriter_ResetUnderFence(t *testing.T) {
	w := NewWriter()
	w.Open(ead.ArchDesc)
	w.Buffer(func(cw *Writer, _ *Fragments) { cw.Leaf(ead.Head, "kept") })
	w.Open(ead.DID)
	w.Leaf(ead.UnitTitle, "before")

	release := w.Fence()
	w.Leaf(ead.Note, "dropped")
	w.Buffer(func(cw *Writer, _ *Fragments) { cw.Leaf(ead.Note, "dropped too") })
	w.Reset()
	w.Leaf(ead.MaterialSpec, "after")
	release()

	w.Close()
	w.Close()
	got := drain(t, New(w, nil))
	assert.Equal(t, `<archdesc><head>kept</head><did><unittitle>before</unittitle><materialspec>after</materialspec></did></archdesc>`, got)
	t.Logf("✓ reset under fence kept %d bytes of prior output", len(got))
}

// TestWriter_ResetAfterRelease verifies a released fence no longer limits Reset.
func TestWriter_ResetAfterRelease(t *testing.T) {
	w := NewWriter()
	w.Open(ead.DID)
	release := w.Fence()
	w.Leaf(ead.Note, "x")
	release()
	release()
	w.Reset()
	assert.Zero(t, w.Len())
	assert.Zero(t, w.Depth())
}

func TestAttrs_With(t *testing.T) {
	base := Attrs{A("a", "1")}
	next := base.With("b", "2").With("a", "3").With("c", "")

	assert.Equal(t, Attrs{A("a", "1")}, base)
	assert.Equal(t, Attrs{A("a", "3"), A("b", "2")}, next)
	v, ok := next.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
}

// TestStream_DeferredRunsLazily verifies a deferred render runs only when the
// walk reaches it, and in document order.
func TestStream_DeferredRunsLazily(t *testing.T) {
	var order []string
	w := NewWriter()
	w.Open(ead.DSC)
	for i := 1; i <= 3; i++ {
		w.Buffer(func(cw *Writer, _ *Fragments) {
			order = append(order, fmt.Sprintf("c%d", i))
			cw.Leaf(ead.C, fmt.Sprint(i))
		})
	}
	w.Close()

	s := New(w, nil)
	assert.Empty(t, order, "recording must not run deferred renders")
	got := drain(t, s)
	assert.Equal(t, `<dsc><c>1</c><c>2</c><c>3</c></dsc>`, got)
	assert.Equal(t, []string{"c1", "c2", "c3"}, order)
}

func TestStream_NestedDeferred(t *testing.T) {
	w := NewWriter()
	w.Buffer(func(cw *Writer, _ *Fragments) {
		cw.Element(ead.C, nil, func() {
			cw.Buffer(func(gw *Writer, gf *Fragments) {
				gw.Element(ead.C, nil, func() { gw.Raw(gf.Append("<p>deep</p>")) })
			})
		})
	})
	assert.Equal(t, `<c><c><p>deep</p></c></c>`, drain(t, New(w, nil)))
}

func TestStream_SecondConsumptionFails(t *testing.T) {
	w := NewWriter()
	w.Leaf(ead.P, "x")
	s := New(w, nil)
	drain(t, s)

	_, err := s.Bytes()
	require.ErrorIs(t, err, ErrConsumed)
}

func TestStream_ChunkingAndDeclaration(t *testing.T) {
	w := NewWriter()
	w.Open(ead.DSC)
	for i := 0; i < 50; i++ {
		w.Buffer(func(cw *Writer, _ *Fragments) {
			cw.Leaf(ead.C, strings.Repeat("x", 40))
		})
	}
	w.Close()

	var stats Stats
	calls := 0
	s := New(w, nil, WithChunkSize(128), WithDeclaration(), OnDone(func(st Stats) {
		calls++
		stats = st
	}))

	var all bytes.Buffer
	chunks := 0
	for chunk, err := range s.Chunks() {
		require.NoError(t, err)
		chunks++
		all.Write(chunk)
	}

	assert.Greater(t, chunks, 1)
	assert.True(t, strings.HasPrefix(all.String(), `<?xml version="1.0" encoding="utf-8"?>`))
	assert.Equal(t, 1, calls)
	assert.True(t, stats.Complete)
	assert.Equal(t, 50, stats.Deferred)
	assert.Equal(t, int64(all.Len()), stats.Bytes)
}

// TestStream_StopPullingCancels verifies that breaking out of the loop skips
// the remaining deferred renders and still runs the done callback.
func TestStream_StopPullingCancels(t *testing.T) {
	ran := 0
	w := NewWriter()
	for i := 0; i < 10; i++ {
		w.Buffer(func(cw *Writer, _ *Fragments) {
			ran++
			cw.Leaf(ead.C, strings.Repeat("y", 64))
		})
	}

	done := false
	var stats Stats
	s := New(w, nil, WithChunkSize(32), OnDone(func(st Stats) { done, stats = true, st }))
	for range s.Chunks() {
		break
	}

	assert.Equal(t, 1, ran)
	assert.True(t, done)
	assert.False(t, stats.Complete)
}

func TestStream_RenderPanicBecomesError(t *testing.T) {
	w := NewWriter()
	w.Buffer(func(*Writer, *Fragments) { panic("boom") })

	_, err := New(w, nil).Bytes()
	require.ErrorIs(t, err, ErrRender)
	assert.Contains(t, err.Error(), "boom")
}

func TestFragments_Reset(t *testing.T) {
	f := NewFragments()
	f.Append("<a/>")
	f.Append("<b/>")
	assert.Equal(t, "<a/><b/>", f.String())
	assert.Equal(t, 8, f.Size())

	f.Reset()
	assert.Zero(t, f.Len())
	_, ok := f.Get(0)
	assert.False(t, ok)
}

func TestFragments_ResetUnderFence(t *testing.T) {
	f := NewFragments()
	f.Append("<a/>")
	release := f.Fence()
	f.Append("<b/>")
	f.Reset()
	assert.Equal(t, "<a/>", f.String())
	assert.Equal(t, 4, f.Size())

	ref := f.Append("<c/>")
	release()
	got, ok := f.Get(ref)
	require.True(t, ok)
	assert.Equal(t, "<c/>", got)

	f.Reset()
	assert.Zero(t, f.Len())
	assert.Zero(t, f.Size())
}
