package bureau

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleDocument(t *testing.T) {
	const doc = `<?xml version="1.0"?>
<REPORT ID="42">
  <HEADER>
    <DATE-OF-ISSUE>15-07-2026</DATE-OF-ISSUE>
  </HEADER>
</REPORT>`

	root, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "REPORT", root.Tag)
	require.Len(t, root.Attrs, 1)
	assert.Equal(t, Attr{Name: "ID", Value: "42"}, root.Attrs[0])

	require.Len(t, root.Children, 1)
	header := root.Children[0]
	assert.Equal(t, "HEADER", header.Tag)
	require.Len(t, header.Children, 1)
	assert.Equal(t, "15-07-2026", header.Children[0].Text)
}

func TestParseTextStopsAtFirstChild(t *testing.T) {
	const doc = `<NOTE>leading<CODE>A1</CODE>trailing</NOTE>`

	root, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	// Only the text before the first child belongs to the element; the
	// tail after CODE is dropped, as the source format intends.
	assert.Equal(t, "leading", root.Text)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "A1", root.Children[0].Text)
}

func TestParseSiblingTagsRepeat(t *testing.T) {
	const doc = `<RESPONSES><RESPONSE>a</RESPONSE><RESPONSE>b</RESPONSE></RESPONSES>`

	root, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	require.Len(t, root.Children, 2)
	assert.Equal(t, "RESPONSE", root.Children[0].Tag)
	assert.Equal(t, "RESPONSE", root.Children[1].Tag)
	assert.Equal(t, "a", root.Children[0].Text)
	assert.Equal(t, "b", root.Children[1].Text)
}

func TestParseCorruptDocument(t *testing.T) {
	_, err := Parse(strings.NewReader("<REPORT><HEADER></REPORT>"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse report")
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	require.ErrorIs(t, err, ErrEmptyDocument)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile("/nonexistent/report.xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open report")
}
