package bureau

import "strings"

// Normalize converts a parsed report node into its uniform value form.
//
// Attributes seed the object in document order, then each child is
// normalized and inserted under its tag; a repeated tag wraps the existing
// value into a list and appends. Non-blank text either becomes the whole
// value (when the node has no attributes or children) or is filed under the
// "text" key. Blank text is discarded.
//
// A child whose tag matches an attribute name collides with it under the
// same rule, so the attribute value ends up first in the resulting list.
// The source data never exercises this, but the behavior is kept rather
// than special-cased; see DESIGN.md.
func Normalize(n *RawNode) Value {
	obj := NewObject()

	for _, attr := range n.Attrs {
		obj.Set(attr.Name, Leaf(attr.Value))
	}

	for _, child := range n.Children {
		value := Normalize(child)
		existing, ok := obj.Get(child.Tag)
		switch {
		case !ok:
			obj.Set(child.Tag, value)
		case isList(existing):
			obj.Set(child.Tag, append(existing.(List), value))
		default:
			obj.Set(child.Tag, List{existing, value})
		}
	}

	if text := strings.TrimSpace(n.Text); text != "" {
		if obj.Len() == 0 {
			return Leaf(text)
		}
		obj.Set("text", Leaf(text))
	}

	return obj
}

func isList(v Value) bool {
	_, ok := v.(List)
	return ok
}
