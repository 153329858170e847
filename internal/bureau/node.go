// Package bureau parses raw credit-bureau XML reports and normalizes them
// into a uniform value tree that the report projector can walk.
package bureau

// Attr is a single element attribute. Attributes keep document order so
// normalization stays deterministic.
type Attr struct {
	Name  string
	Value string
}

// RawNode is one element of a parsed bureau report: a tag, its attributes,
// its child elements in document order, and any text that appeared before
// the first child. Sibling tags are not unique.
type RawNode struct {
	Tag      string
	Text     string
	Attrs    []Attr
	Children []*RawNode
}
