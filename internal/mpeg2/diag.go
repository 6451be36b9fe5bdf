package mpeg2

// Field is one decoded syntax element as reported to a Sink.
type Field struct {
	Name    string
	Value   uint32
	Coding  string
	RawBits string
	Meaning string
}

// Sink receives decoded syntax elements in the order they are read.
// Decoders never inspect a Sink, so decoding behaves the same whichever
// Sink is used.
type Sink interface {
	Field(f Field)
	Section(name string) Sink
}

// Discard is a Sink that drops everything.
var Discard Sink = discard{}

type discard struct{}

func (discard) Field(Field) {}

func (d discard) Section(string) Sink { return d }

// Node is an entry in a diagnostic parse tree. Section nodes such as
// "sequence_header()" have no coding and no raw bits.
type Node struct {
	Name     string  `json:"name"`
	Value    uint32  `json:"value"`
	Coding   string  `json:"coding,omitempty"`
	RawBits  string  `json:"rawBits,omitempty"`
	Meaning  string  `json:"meaning,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

func NewNode(name string) *Node {
	return &Node{Name: name}
}

func (n *Node) Field(f Field) {
	n.Children = append(n.Children, &Node{
		Name:    f.Name,
		Value:   f.Value,
		Coding:  f.Coding,
		RawBits: f.RawBits,
		Meaning: f.Meaning,
	})
}

func (n *Node) Section(name string) Sink {
	c := NewNode(name)
	n.Children = append(n.Children, c)
	return c
}

// Child returns the first direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Walk visits n and all its descendants depth-first in parse order.
func (n *Node) Walk(fn func(depth int, n *Node)) {
	n.walk(0, fn)
}

func (n *Node) walk(depth int, fn func(int, *Node)) {
	fn(depth, n)
	for _, c := range n.Children {
		c.walk(depth+1, fn)
	}
}

type tee []Sink

// Tee returns a Sink that forwards every field and section to all sinks.
func Tee(sinks ...Sink) Sink {
	return tee(sinks)
}

func (t tee) Field(f Field) {
	for _, s := range t {
		s.Field(f)
	}
}

func (t tee) Section(name string) Sink {
	out := make(tee, len(t))
	for i, s := range t {
		out[i] = s.Section(name)
	}
	return out
}
