// Package richtext implements a document-model rich text editor: an explicit
// node tree edited through discrete commands, with a linear undo/redo history
// of document snapshots and deterministic HTML serialization.
package richtext

import (
	"errors"
	"html"
	"strconv"
	"strings"
)

type NodeType string

const (
	NodeParagraph   NodeType = "paragraph"
	NodeHeading     NodeType = "heading"
	NodeBulletList  NodeType = "bulletList"
	NodeOrderedList NodeType = "orderedList"
	NodeListItem    NodeType = "listItem"
	NodeText        NodeType = "text"
	NodeLink        NodeType = "link"
)

type Mark string

const (
	MarkBold      Mark = "bold"
	MarkItalic    Mark = "italic"
	MarkUnderline Mark = "underline"
)

var (
	ErrInvalidPath     = errors.New("path does not address a node in the document")
	ErrInvalidNode     = errors.New("node is not valid at this position")
	ErrNotTextNode     = errors.New("node does not carry text")
	ErrInvalidHeading  = errors.New("heading level must be between 1 and 6")
	ErrNothingToUndo   = errors.New("nothing to undo")
	ErrNothingToRedo   = errors.New("nothing to redo")
	ErrUnsupportedMark = errors.New("unsupported mark")
)

// Node is a single element of the document tree. Block nodes (paragraph,
// heading, lists) carry Children; text and link nodes carry Text, and link
// nodes additionally carry Href.
type Node struct {
	Type     NodeType `json:"type"`
	Text     string   `json:"text,omitempty"`
	Marks    []Mark   `json:"marks,omitempty"`
	Level    int      `json:"level,omitempty"`
	Href     string   `json:"href,omitempty"`
	Children []*Node  `json:"children,omitempty"`
}

func (n *Node) clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		Type:  n.Type,
		Text:  n.Text,
		Level: n.Level,
		Href:  n.Href,
	}
	if len(n.Marks) > 0 {
		c.Marks = append([]Mark(nil), n.Marks...)
	}
	for _, child := range n.Children {
		c.Children = append(c.Children, child.clone())
	}
	return c
}

func (n *Node) hasMark(m Mark) bool {
	for _, mark := range n.Marks {
		if mark == m {
			return true
		}
	}
	return false
}

func (n *Node) isInline() bool {
	return n.Type == NodeText || n.Type == NodeLink
}

// Document is an ordered list of block nodes.
type Document struct {
	Nodes []*Node `json:"nodes"`
}

func NewDocument() *Document {
	return &Document{}
}

func (d *Document) clone() *Document {
	c := &Document{}
	for _, n := range d.Nodes {
		c.Nodes = append(c.Nodes, n.clone())
	}
	return c
}

// nodeAt resolves a path of child indexes to a node. An empty path is not a
// node address.
func (d *Document) nodeAt(path []int) (*Node, error) {
	if len(path) == 0 {
		return nil, ErrInvalidPath
	}
	if path[0] < 0 || path[0] >= len(d.Nodes) {
		return nil, ErrInvalidPath
	}
	n := d.Nodes[path[0]]
	for _, i := range path[1:] {
		if i < 0 || i >= len(n.Children) {
			return nil, ErrInvalidPath
		}
		n = n.Children[i]
	}
	return n, nil
}

// HTML renders the document deterministically. All text and attribute values
// are escaped.
func (d *Document) HTML() string {
	var b strings.Builder
	for _, n := range d.Nodes {
		renderNode(&b, n)
	}
	return b.String()
}

func renderNode(b *strings.Builder, n *Node) {
	switch n.Type {
	case NodeParagraph:
		renderBlock(b, "p", n)
	case NodeHeading:
		level := n.Level
		if level < 1 {
			level = 1
		} else if level > 6 {
			level = 6
		}
		renderBlock(b, "h"+strconv.Itoa(level), n)
	case NodeBulletList:
		renderBlock(b, "ul", n)
	case NodeOrderedList:
		renderBlock(b, "ol", n)
	case NodeListItem:
		renderBlock(b, "li", n)
	case NodeText:
		renderText(b, n)
	case NodeLink:
		b.WriteString(`<a href="`)
		b.WriteString(html.EscapeString(n.Href))
		b.WriteString(`">`)
		renderText(b, n)
		b.WriteString("</a>")
	}
}

func renderBlock(b *strings.Builder, tag string, n *Node) {
	b.WriteString("<" + tag + ">")
	for _, child := range n.Children {
		renderNode(b, child)
	}
	b.WriteString("</" + tag + ">")
}

// renderText wraps the escaped text in mark tags in a fixed order so that the
// same document always serializes to the same bytes.
func renderText(b *strings.Builder, n *Node) {
	open, close := markTags(n)
	b.WriteString(open)
	b.WriteString(html.EscapeString(n.Text))
	b.WriteString(close)
}

func markTags(n *Node) (string, string) {
	var open, close string
	if n.hasMark(MarkBold) {
		open += "<strong>"
		close = "</strong>" + close
	}
	if n.hasMark(MarkItalic) {
		open += "<em>"
		close = "</em>" + close
	}
	if n.hasMark(MarkUnderline) {
		open += "<u>"
		close = "</u>" + close
	}
	return open, close
}

// PlainText flattens the document to text, one line per top-level block.
func (d *Document) PlainText() string {
	var lines []string
	for _, n := range d.Nodes {
		var b strings.Builder
		collectText(&b, n)
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func collectText(b *strings.Builder, n *Node) {
	if n.isInline() {
		b.WriteString(n.Text)
		return
	}
	for i, child := range n.Children {
		if i > 0 && !child.isInline() {
			b.WriteString("\n")
		}
		collectText(b, child)
	}
}
