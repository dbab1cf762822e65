package richtext

// Editor applies commands to a document and keeps a linear history of
// snapshots for undo/redo. Applying a command after an undo discards the redo
// tail, so history always reads as a single line of edits.
type Editor struct {
	history []*Document
	index   int
}

// NewEditor starts an editor on the given document. A nil document starts an
// empty one. The editor owns its snapshots; the caller's document is copied.
func NewEditor(doc *Document) *Editor {
	if doc == nil {
		doc = NewDocument()
	}
	return &Editor{history: []*Document{doc.clone()}}
}

// Document returns a copy of the current document state.
func (e *Editor) Document() *Document {
	return e.history[e.index].clone()
}

// Apply runs the command against a snapshot of the current document. On
// success the snapshot becomes the new current state; on failure the document
// and history are unchanged.
func (e *Editor) Apply(cmd Command) error {
	next := e.history[e.index].clone()
	if err := cmd.Apply(next); err != nil {
		return err
	}
	e.history = append(e.history[:e.index+1], next)
	e.index++
	return nil
}

func (e *Editor) CanUndo() bool { return e.index > 0 }

func (e *Editor) CanRedo() bool { return e.index < len(e.history)-1 }

// Undo steps back to the previous snapshot.
func (e *Editor) Undo() error {
	if !e.CanUndo() {
		return ErrNothingToUndo
	}
	e.index--
	return nil
}

// Redo steps forward again after an undo.
func (e *Editor) Redo() error {
	if !e.CanRedo() {
		return ErrNothingToRedo
	}
	e.index++
	return nil
}

// HTML renders the current document.
func (e *Editor) HTML() string {
	return e.history[e.index].HTML()
}

// PlainText flattens the current document to text.
func (e *Editor) PlainText() string {
	return e.history[e.index].PlainText()
}
