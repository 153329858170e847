package bureau

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ErrEmptyDocument is returned when the input contains no root element.
var ErrEmptyDocument = errors.New("empty document")

// Parse reads a bureau report and returns its root node. Text is attached
// to an element only until its first child appears, matching how the
// upstream bureau format intermixes container and leaf elements.
func Parse(r io.Reader) (*RawNode, error) {
	decoder := xml.NewDecoder(r)

	var root *RawNode
	var stack []*RawNode

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse report: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			node := &RawNode{Tag: t.Name.Local}
			for _, attr := range t.Attr {
				node.Attrs = append(node.Attrs, Attr{Name: attr.Name.Local, Value: attr.Value})
			}
			if len(stack) == 0 {
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				current := stack[len(stack)-1]
				if len(current.Children) == 0 {
					current.Text += string(t)
				}
			}
		}
	}

	if root == nil {
		return nil, ErrEmptyDocument
	}

	return root, nil
}

// ParseFile parses a bureau report from disk.
func ParseFile(path string) (*RawNode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("Failed to close report file", "file", path, "error", closeErr)
		}
	}()

	return Parse(f)
}
