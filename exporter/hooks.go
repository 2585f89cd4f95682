package exporter

import (
	"sync"

	"github.com/hutchesonn/camh-ead-exporter/record"
	"github.com/hutchesonn/camh-ead-exporter/stream"
)

// HookPoint is where a hook runs inside a node.
type HookPoint string

const (
	// HookDid runs as the last step inside did.
	HookDid HookPoint = "did"
	// HookArchdesc runs after the descriptive elements, before the children.
	HookArchdesc HookPoint = "archdesc"
)

// Hook appends extra elements to a node. It may only add output; elements
// open when it is called are out of its reach, and Reset on the writer or
// fragments discards only what the hook itself added. A returned error fails
// the node.
type Hook interface {
	Serialize(node record.Node, w *stream.Writer, f *stream.Fragments, point HookPoint) error
}

// HookFunc adapts a function to Hook.
type HookFunc func(node record.Node, w *stream.Writer, f *stream.Fragments, point HookPoint) error

// Serialize calls fn.
func (fn HookFunc) Serialize(node record.Node, w *stream.Writer, f *stream.Fragments, point HookPoint) error {
	return fn(node, w, f, point)
}

// HookRegistry holds hooks in registration order.
type HookRegistry struct {
	mu    sync.Mutex
	hooks []Hook
}

// NewHookRegistry returns an empty registry.
func NewHookRegistry(hooks ...Hook) *HookRegistry {
	r := &HookRegistry{}
	for _, h := range hooks {
		r.Register(h)
	}
	return r
}

// Register appends h.
func (r *HookRegistry) Register(h Hook) {
	if h == nil {
		return
	}
	r.mu.Lock()
	r.hooks = append(r.hooks, h)
	r.mu.Unlock()
}

// Len is the number of registered hooks.
func (r *HookRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.hooks)
}

func (r *HookRegistry) snapshot() []Hook {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Hook(nil), r.hooks...)
}
