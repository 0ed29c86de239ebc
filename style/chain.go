package style

// Chain is an ordered list of attribute values. Styles compose
// left-to-right: New(a, b, c) or New(a).And(b).And(c), with later
// attributes taking precedence on status ties.
type Chain struct {
	attrs []Attr
}

// New builds a Chain from an ordered list of attributes.
func New(attrs ...Attr) *Chain {
	return &Chain{attrs: append([]Attr{}, attrs...)}
}

// And appends another attribute, returning the same chain for further
// chaining.
func (c *Chain) And(a Attr) *Chain {
	c.attrs = append(c.attrs, a)
	return c
}

// Attrs returns the chain's attributes in provenance order. The returned
// slice must not be mutated by callers.
func (c *Chain) Attrs() []Attr {
	if c == nil {
		return nil
	}
	return c.attrs
}

// Clone deep-clones every attribute in the chain, making it safe to reuse
// a package-level default chain across many owners without sharing mutable
// state.
func (c *Chain) Clone() *Chain {
	if c == nil {
		return New()
	}
	out := make([]Attr, len(c.attrs))
	for i, a := range c.attrs {
		out[i] = a.Clone()
	}
	return &Chain{attrs: out}
}
