package exporter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hutchesonn/camh-ead-exporter/ead"
	"github.com/hutchesonn/camh-ead-exporter/record"
	"github.com/hutchesonn/camh-ead-exporter/stream"
)

// TestHooks_OrderAndPoints verifies hooks run in registration order at both
// points and that their output lands in place.
func TestHooks_OrderAndPoints(t *testing.T) {
	var calls []string
	note := func(name string) Hook {
		return HookFunc(func(node record.Node, w *stream.Writer, _ *stream.Fragments, point HookPoint) error {
			calls = append(calls, name+"@"+string(point)+":"+node.Description().RefID)
			if point == HookDid {
				w.Leaf(ead.MaterialSpec, name)
			} else {
				w.Element(ead.ODD, nil, func() { w.Leaf(ead.P, name) })
			}
			return nil
		})
	}
	opts := testOptions()
	opts.Hooks = NewHookRegistry(note("first"), note("second"))

	doc := document(record.Description{Title: "Root", RefID: "r"}, tree("Child", "c1"))
	r := run(t, doc, opts)

	assert.Equal(t, []string{
		"first@did:r", "second@did:r",
		"first@archdesc:r", "second@archdesc:r",
		"first@did:c1", "second@did:c1",
		"first@archdesc:c1", "second@archdesc:c1",
	}, calls)

	did := r.root.at(t, "archdesc", "did")
	specs := did.all("materialspec")
	require.Len(t, specs, 2)
	assert.Equal(t, "first", specs[0].Text)
	assert.Equal(t, "second", specs[1].Text)

	assert.Equal(t, []string{"did", "odd", "odd", "dsc"}, r.root.at(t, "archdesc").names())
	assert.Equal(t, []string{"did", "odd", "odd"}, r.root.at(t, "archdesc", "dsc", "c").names())
}

// TestHooks_CannotCloseParents verifies a hook closing more than it opened
// leaves the surrounding elements intact.
func TestHooks_CannotCloseParents(t *testing.T) {
	greedy := HookFunc(func(_ record.Node, w *stream.Writer, _ *stream.Fragments, point HookPoint) error {
		if point != HookDid {
			return nil
		}
		w.Close()
		w.Close()
		w.Leaf(ead.Note, "still inside")
		w.Open(ead.List)
		return nil
	})
	opts := testOptions()
	opts.Hooks = NewHookRegistry(greedy)

	r := run(t, document(record.Description{Title: "Root"}), opts)
	did := r.root.at(t, "archdesc", "did")
	assert.Equal(t, []string{"unittitle", "note", "list"}, did.names())
	assert.Equal(t, "still inside", did.at(t, "note").Text)
	assert.Equal(t, []string{"did", "dsc"}, r.root.at(t, "archdesc").names())
}

func TestHooks_RawFragments(t *testing.T) {
	raw := HookFunc(func(_ record.Node, w *stream.Writer, f *stream.Fragments, point HookPoint) error {
		if point == HookArchdesc {
			w.Raw(f.Append(`<odd><p>from <emph>hook</emph></p></odd>`))
		}
		return nil
	})
	opts := testOptions()
	opts.Hooks = NewHookRegistry(raw)

	r := run(t, document(record.Description{Title: "Root"}), opts)
	assert.Equal(t, "hook", r.root.at(t, "archdesc", "odd", "p", "emph").Text)
}

// TestHooks_ResetKeepsPriorOutput verifies a hook that resets the writer and
// fragments only loses what it added itself.
func TestHooks_ResetKeepsPriorOutput(t *testing.T) {
	wiping := HookFunc(func(_ record.Node, w *stream.Writer, f *stream.Fragments, point HookPoint) error {
		w.Leaf(ead.Note, "discarded")
		w.Raw(f.Append("<note>discarded</note>"))
		w.Reset()
		f.Reset()
		if point == HookDid {
			w.Leaf(ead.MaterialSpec, "after reset")
		}
		return nil
	})
	opts := testOptions()
	opts.Hooks = NewHookRegistry(wiping)

	doc := document(record.Description{Title: "Root", RefID: "r"}, tree("Child", "c1"))
	r := run(t, doc, opts)

	assert.Equal(t, "ead", r.root.XMLName.Local)
	assert.Equal(t, []string{"eadheader", "archdesc"}, r.root.names())
	assert.NotContains(t, r.out, "discarded")

	did := r.root.at(t, "archdesc", "did")
	assert.Equal(t, "Root", did.at(t, "unittitle").Text)
	assert.Equal(t, "after reset", did.at(t, "materialspec").Text)
	assert.Equal(t, []string{"did", "dsc"}, r.root.at(t, "archdesc").names())

	child := r.root.at(t, "archdesc", "dsc", "c")
	assert.Equal(t, "Child", child.at(t, "did", "unittitle").Text)
	assert.Equal(t, "after reset", child.at(t, "did", "materialspec").Text)
	assert.Zero(t, r.report.Failed)
	t.Logf("✓ hook reset left the document intact")
}

func TestHookRegistry(t *testing.T) {
	r := NewHookRegistry(nil)
	assert.Equal(t, 0, r.Len())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Register(HookFunc(func(record.Node, *stream.Writer, *stream.Fragments, HookPoint) error { return nil }))
		}()
	}
	wg.Wait()
	assert.Equal(t, 8, r.Len())

	snap := r.snapshot()
	r.Register(HookFunc(func(record.Node, *stream.Writer, *stream.Fragments, HookPoint) error { return nil }))
	assert.Len(t, snap, 8, "snapshot is not affected by later registrations")
}
