package stream

// Attr is one attribute of an element. Order is preserved on output.
type Attr struct {
	Name  string
	Value string
}

// A builds an Attr.
func A(name, value string) Attr { return Attr{Name: name, Value: value} }

// Attrs is an ordered attribute list.
type Attrs []Attr

// With returns a copy of a with name set to value. An existing attribute keeps
// its position; a new one is appended. Empty values are skipped.
func (a Attrs) With(name, value string) Attrs {
	if value == "" {
		return a
	}
	out := make(Attrs, len(a), len(a)+1)
	copy(out, a)
	for i := range out {
		if out[i].Name == name {
			out[i].Value = value
			return out
		}
	}
	return append(out, Attr{Name: name, Value: value})
}

// Merge applies With for every attribute of other, in order.
func (a Attrs) Merge(other Attrs) Attrs {
	out := a
	for _, at := range other {
		out = out.With(at.Name, at.Value)
	}
	return out
}

// Get returns the value of name.
func (a Attrs) Get(name string) (string, bool) {
	for _, at := range a {
		if at.Name == name {
			return at.Value, true
		}
	}
	return "", false
}
