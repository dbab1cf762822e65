package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paragraph(text string, marks ...Mark) *Node {
	return &Node{
		Type:     NodeParagraph,
		Children: []*Node{{Type: NodeText, Text: text, Marks: marks}},
	}
}

func TestEditorInsertAndRemove(t *testing.T) {
	e := NewEditor(nil)

	require.NoError(t, e.Apply(InsertNode{Index: 0, Node: paragraph("first")}))
	require.NoError(t, e.Apply(InsertNode{Index: 1, Node: paragraph("second")}))
	assert.Equal(t, "<p>first</p><p>second</p>", e.HTML())

	require.NoError(t, e.Apply(RemoveNode{Path: []int{0}}))
	assert.Equal(t, "<p>second</p>", e.HTML())
}

func TestEditorRejectsInlineAtTopLevel(t *testing.T) {
	e := NewEditor(nil)

	err := e.Apply(InsertNode{Index: 0, Node: &Node{Type: NodeText, Text: "bare"}})
	assert.ErrorIs(t, err, ErrInvalidNode)
	assert.Equal(t, "", e.HTML())
}

func TestEditorInvalidPath(t *testing.T) {
	e := NewEditor(nil)
	require.NoError(t, e.Apply(InsertNode{Index: 0, Node: paragraph("only")}))

	assert.ErrorIs(t, e.Apply(RemoveNode{Path: []int{3}}), ErrInvalidPath)
	assert.ErrorIs(t, e.Apply(SetText{Path: []int{0, 5}, Text: "x"}), ErrInvalidPath)
	assert.Equal(t, "<p>only</p>", e.HTML())
}

func TestToggleMark(t *testing.T) {
	e := NewEditor(nil)
	require.NoError(t, e.Apply(InsertNode{Index: 0, Node: paragraph("hello")}))

	require.NoError(t, e.Apply(ToggleMark{Path: []int{0, 0}, Mark: MarkBold}))
	assert.Equal(t, "<p><strong>hello</strong></p>", e.HTML())

	require.NoError(t, e.Apply(ToggleMark{Path: []int{0, 0}, Mark: MarkItalic}))
	assert.Equal(t, "<p><strong><em>hello</em></strong></p>", e.HTML())

	// Toggling again removes the mark.
	require.NoError(t, e.Apply(ToggleMark{Path: []int{0, 0}, Mark: MarkBold}))
	assert.Equal(t, "<p><em>hello</em></p>", e.HTML())

	assert.ErrorIs(t, e.Apply(ToggleMark{Path: []int{0, 0}, Mark: Mark("blink")}), ErrUnsupportedMark)
	assert.ErrorIs(t, e.Apply(ToggleMark{Path: []int{0}, Mark: MarkBold}), ErrNotTextNode)
}

func TestHeadingAndParagraph(t *testing.T) {
	e := NewEditor(nil)
	require.NoError(t, e.Apply(InsertNode{Index: 0, Node: paragraph("title")}))

	require.NoError(t, e.Apply(SetHeading{Path: []int{0}, Level: 2}))
	assert.Equal(t, "<h2>title</h2>", e.HTML())

	assert.ErrorIs(t, e.Apply(SetHeading{Path: []int{0}, Level: 7}), ErrInvalidHeading)
	assert.ErrorIs(t, e.Apply(SetHeading{Path: []int{0}, Level: 0}), ErrInvalidHeading)

	require.NoError(t, e.Apply(SetParagraph{Path: []int{0}}))
	assert.Equal(t, "<p>title</p>", e.HTML())
}

func TestLists(t *testing.T) {
	e := NewEditor(nil)
	list := &Node{
		Type: NodeBulletList,
		Children: []*Node{
			{Type: NodeListItem, Children: []*Node{{Type: NodeText, Text: "one"}}},
			{Type: NodeListItem, Children: []*Node{{Type: NodeText, Text: "two"}}},
		},
	}
	require.NoError(t, e.Apply(InsertNode{Index: 0, Node: list}))
	assert.Equal(t, "<ul><li>one</li><li>two</li></ul>", e.HTML())

	item := &Node{Type: NodeListItem, Children: []*Node{{Type: NodeText, Text: "three"}}}
	require.NoError(t, e.Apply(InsertNode{Path: []int{0}, Index: 2, Node: item}))
	assert.Equal(t, "<ul><li>one</li><li>two</li><li>three</li></ul>", e.HTML())

	require.NoError(t, e.Apply(RemoveNode{Path: []int{0, 1}}))
	assert.Equal(t, "<ul><li>one</li><li>three</li></ul>", e.HTML())
}

func TestLinks(t *testing.T) {
	e := NewEditor(nil)
	require.NoError(t, e.Apply(InsertNode{Index: 0, Node: paragraph("site")}))

	require.NoError(t, e.Apply(SetLink{Path: []int{0, 0}, Href: "https://example.com?a=1&b=2"}))
	assert.Equal(t, `<p><a href="https://example.com?a=1&amp;b=2">site</a></p>`, e.HTML())

	require.NoError(t, e.Apply(Unlink{Path: []int{0, 0}}))
	assert.Equal(t, "<p>site</p>", e.HTML())

	assert.ErrorIs(t, e.Apply(Unlink{Path: []int{0, 0}}), ErrNotTextNode)
}

func TestHTMLEscapesText(t *testing.T) {
	e := NewEditor(nil)
	require.NoError(t, e.Apply(InsertNode{Index: 0, Node: paragraph(`<script>alert("x")</script>`)}))

	assert.Equal(t, "<p>&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;</p>", e.HTML())
}

func TestUndoRedo(t *testing.T) {
	e := NewEditor(nil)

	assert.False(t, e.CanUndo())
	assert.ErrorIs(t, e.Undo(), ErrNothingToUndo)
	assert.ErrorIs(t, e.Redo(), ErrNothingToRedo)

	require.NoError(t, e.Apply(InsertNode{Index: 0, Node: paragraph("one")}))
	require.NoError(t, e.Apply(InsertNode{Index: 1, Node: paragraph("two")}))

	require.NoError(t, e.Undo())
	assert.Equal(t, "<p>one</p>", e.HTML())

	require.NoError(t, e.Redo())
	assert.Equal(t, "<p>one</p><p>two</p>", e.HTML())
	assert.False(t, e.CanRedo())
}

func TestApplyAfterUndoDropsRedoTail(t *testing.T) {
	e := NewEditor(nil)
	require.NoError(t, e.Apply(InsertNode{Index: 0, Node: paragraph("one")}))
	require.NoError(t, e.Apply(InsertNode{Index: 1, Node: paragraph("two")}))

	require.NoError(t, e.Undo())
	require.NoError(t, e.Apply(InsertNode{Index: 1, Node: paragraph("other")}))

	assert.False(t, e.CanRedo())
	assert.ErrorIs(t, e.Redo(), ErrNothingToRedo)
	assert.Equal(t, "<p>one</p><p>other</p>", e.HTML())
}

func TestFailedCommandLeavesHistoryAlone(t *testing.T) {
	e := NewEditor(nil)
	require.NoError(t, e.Apply(InsertNode{Index: 0, Node: paragraph("one")}))

	assert.Error(t, e.Apply(RemoveNode{Path: []int{9}}))
	assert.True(t, e.CanUndo())
	assert.False(t, e.CanRedo())
	assert.Equal(t, "<p>one</p>", e.HTML())
}

func TestSnapshotsAreIsolated(t *testing.T) {
	e := NewEditor(nil)
	require.NoError(t, e.Apply(InsertNode{Index: 0, Node: paragraph("one")}))

	// Mutating the returned document must not alter editor state.
	doc := e.Document()
	doc.Nodes[0].Children[0].Text = "mutated"
	assert.Equal(t, "<p>one</p>", e.HTML())

	// Mutating the inserted node after the fact must not either.
	n := paragraph("two")
	require.NoError(t, e.Apply(InsertNode{Index: 1, Node: n}))
	n.Children[0].Text = "mutated"
	assert.Equal(t, "<p>one</p><p>two</p>", e.HTML())
}

func TestPlainText(t *testing.T) {
	doc := &Document{Nodes: []*Node{
		{Type: NodeHeading, Level: 1, Children: []*Node{{Type: NodeText, Text: "Title"}}},
		paragraph("Body text"),
		{
			Type: NodeBulletList,
			Children: []*Node{
				{Type: NodeListItem, Children: []*Node{{Type: NodeText, Text: "a"}}},
				{Type: NodeListItem, Children: []*Node{{Type: NodeText, Text: "b"}}},
			},
		},
	}}

	assert.Equal(t, "Title\nBody text\na\nb", doc.PlainText())
}
