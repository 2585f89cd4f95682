package record

import (
	"github.com/cockroachdb/errors"
)

// ErrChildIndex is returned by Child for an index outside [0, ChildCount).
var ErrChildIndex = errors.New("child index out of range")

// Tree is an in-memory Node.
type Tree struct {
	Desc     Description `yaml:",inline"`
	Children []*Tree     `yaml:"children,omitempty" validate:"dive"`
}

// Description implements Node.
func (t *Tree) Description() *Description { return &t.Desc }

// ChildCount implements Node.
func (t *Tree) ChildCount() int { return len(t.Children) }

// Child implements Node.
func (t *Tree) Child(i int) (Node, error) {
	if i < 0 || i >= len(t.Children) {
		return nil, errors.Wrapf(ErrChildIndex, "index %d of %d", i, len(t.Children))
	}
	c := t.Children[i]
	if c == nil {
		return nil, errors.Newf("child %d is empty", i)
	}
	return c, nil
}

// Count returns the number of nodes in the tree, t included.
func (t *Tree) Count() int {
	n := 1
	for _, c := range t.Children {
		if c != nil {
			n += c.Count()
		}
	}
	return n
}

// Document is an in-memory Resource.
type Document struct {
	Tree     `yaml:",inline"`
	Meta     Header         `yaml:"header"`
	Defaults ExportDefaults `yaml:"export,omitempty"`
}

// Header implements Resource.
func (d *Document) Header() *Header { return &d.Meta }

// ExportDefaults are export flags stored with a record. Unset fields defer to
// configuration.
type ExportDefaults struct {
	IncludeUnpublished    Flag `yaml:"include_unpublished,omitempty"`
	IncludeDigitalObjects Flag `yaml:"include_daos,omitempty"`
	NumberedComponentTags Flag `yaml:"numbered_c_tags,omitempty"`
}
