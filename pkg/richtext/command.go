package richtext

// Command is a single discrete edit. Apply mutates the given document, which
// is always a fresh snapshot owned by the editor, never a shared tree.
type Command interface {
	Apply(doc *Document) error
}

// InsertNode inserts a block node at a top-level index, or a child node when
// Path addresses a parent block. Index values past the end append.
type InsertNode struct {
	Path  []int
	Index int
	Node  *Node
}

func (c InsertNode) Apply(doc *Document) error {
	if c.Node == nil {
		return ErrInvalidNode
	}
	node := c.Node.clone()
	if len(c.Path) == 0 {
		if node.isInline() {
			return ErrInvalidNode
		}
		doc.Nodes = insertAt(doc.Nodes, c.Index, node)
		return nil
	}
	parent, err := doc.nodeAt(c.Path)
	if err != nil {
		return err
	}
	if parent.isInline() {
		return ErrInvalidNode
	}
	parent.Children = insertAt(parent.Children, c.Index, node)
	return nil
}

// RemoveNode removes the node addressed by Path.
type RemoveNode struct {
	Path []int
}

func (c RemoveNode) Apply(doc *Document) error {
	if _, err := doc.nodeAt(c.Path); err != nil {
		return err
	}
	i := c.Path[len(c.Path)-1]
	if len(c.Path) == 1 {
		doc.Nodes = removeAt(doc.Nodes, i)
		return nil
	}
	parent, err := doc.nodeAt(c.Path[:len(c.Path)-1])
	if err != nil {
		return err
	}
	parent.Children = removeAt(parent.Children, i)
	return nil
}

// SetText replaces the text of a text or link node.
type SetText struct {
	Path []int
	Text string
}

func (c SetText) Apply(doc *Document) error {
	n, err := doc.nodeAt(c.Path)
	if err != nil {
		return err
	}
	if !n.isInline() {
		return ErrNotTextNode
	}
	n.Text = c.Text
	return nil
}

// ToggleMark adds the mark to a text or link node, or removes it when already
// present.
type ToggleMark struct {
	Path []int
	Mark Mark
}

func (c ToggleMark) Apply(doc *Document) error {
	switch c.Mark {
	case MarkBold, MarkItalic, MarkUnderline:
	default:
		return ErrUnsupportedMark
	}
	n, err := doc.nodeAt(c.Path)
	if err != nil {
		return err
	}
	if !n.isInline() {
		return ErrNotTextNode
	}
	for i, m := range n.Marks {
		if m == c.Mark {
			n.Marks = removeMarkAt(n.Marks, i)
			return nil
		}
	}
	n.Marks = append(n.Marks, c.Mark)
	return nil
}

// SetHeading turns the addressed block into a heading of the given level.
type SetHeading struct {
	Path  []int
	Level int
}

func (c SetHeading) Apply(doc *Document) error {
	if c.Level < 1 || c.Level > 6 {
		return ErrInvalidHeading
	}
	n, err := doc.nodeAt(c.Path)
	if err != nil {
		return err
	}
	if n.isInline() {
		return ErrInvalidNode
	}
	n.Type = NodeHeading
	n.Level = c.Level
	return nil
}

// SetParagraph turns the addressed block back into a paragraph.
type SetParagraph struct {
	Path []int
}

func (c SetParagraph) Apply(doc *Document) error {
	n, err := doc.nodeAt(c.Path)
	if err != nil {
		return err
	}
	if n.isInline() {
		return ErrInvalidNode
	}
	n.Type = NodeParagraph
	n.Level = 0
	return nil
}

// SetLink turns a text node into a link with the given target, or updates the
// target of an existing link.
type SetLink struct {
	Path []int
	Href string
}

func (c SetLink) Apply(doc *Document) error {
	n, err := doc.nodeAt(c.Path)
	if err != nil {
		return err
	}
	if !n.isInline() {
		return ErrNotTextNode
	}
	n.Type = NodeLink
	n.Href = c.Href
	return nil
}

// Unlink turns a link node back into a plain text node, keeping its marks.
type Unlink struct {
	Path []int
}

func (c Unlink) Apply(doc *Document) error {
	n, err := doc.nodeAt(c.Path)
	if err != nil {
		return err
	}
	if n.Type != NodeLink {
		return ErrNotTextNode
	}
	n.Type = NodeText
	n.Href = ""
	return nil
}

func insertAt(nodes []*Node, i int, n *Node) []*Node {
	if i < 0 {
		i = 0
	}
	if i >= len(nodes) {
		return append(nodes, n)
	}
	nodes = append(nodes, nil)
	copy(nodes[i+1:], nodes[i:])
	nodes[i] = n
	return nodes
}

func removeAt(nodes []*Node, i int) []*Node {
	return append(nodes[:i], nodes[i+1:]...)
}

func removeMarkAt(marks []Mark, i int) []Mark {
	return append(marks[:i], marks[i+1:]...)
}
