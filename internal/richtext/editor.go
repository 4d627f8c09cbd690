package richtext

// ChangeFunc receives the serialized document after every mutation.
type ChangeFunc func(html string)

// Selection addresses a character range inside a single block. For list
// blocks, Item selects the list entry the range applies to. Start and End are
// rune offsets into the addressed inline sequence; a collapsed selection has
// Start == End.
type Selection struct {
	Block int
	Item  int
	Start int
	End   int
}

type snapshot struct {
	doc Document
	sel Selection
}

// Editor applies formatting and editing commands to a structured document.
// It holds no durable state: every change is reported synchronously through
// the change callback as serialized HTML, and the owner persists it.
type Editor struct {
	doc      Document
	sel      Selection
	history  []snapshot
	future   []snapshot
	onChange ChangeFunc
}

const historyLimit = 100

// EditorOption customises editor construction.
type EditorOption func(*Editor)

// WithDocument seeds the editor with an existing document.
func WithDocument(doc Document) EditorOption {
	return func(e *Editor) {
		if len(doc.Blocks) > 0 {
			e.doc = doc.Clone()
		}
	}
}

// WithChangeFunc registers the change callback.
func WithChangeFunc(fn ChangeFunc) EditorOption {
	return func(e *Editor) {
		e.onChange = fn
	}
}

// NewEditor constructs an editor over an empty paragraph.
func NewEditor(opts ...EditorOption) *Editor {
	e := &Editor{doc: NewDocument()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// LoadHTML replaces the document with the parsed markup and resets history.
// The change callback is not invoked; loading is not an edit.
func (e *Editor) LoadHTML(markup string) error {
	doc, err := ParseHTML(markup)
	if err != nil {
		return err
	}
	e.doc = doc
	e.sel = Selection{}
	e.history = nil
	e.future = nil
	return nil
}

// Document returns a copy of the current document.
func (e *Editor) Document() Document {
	return e.doc.Clone()
}

// HTML returns the serialized form of the current document.
func (e *Editor) HTML() string {
	return SerializeHTML(e.doc)
}

// Selection returns the current selection.
func (e *Editor) Selection() Selection {
	return e.sel
}

// Select moves the selection without recording history.
func (e *Editor) Select(sel Selection) error {
	normalized, err := e.normalize(sel)
	if err != nil {
		return err
	}
	e.sel = normalized
	return nil
}

// ToggleBold toggles bold over the selection.
func (e *Editor) ToggleBold() error {
	return e.toggleMark(func(m *Marks) *bool { return &m.Bold })
}

// ToggleItalic toggles italic over the selection.
func (e *Editor) ToggleItalic() error {
	return e.toggleMark(func(m *Marks) *bool { return &m.Italic })
}

// ToggleUnderline toggles underline over the selection.
func (e *Editor) ToggleUnderline() error {
	return e.toggleMark(func(m *Marks) *bool { return &m.Underline })
}

func (e *Editor) toggleMark(field func(*Marks) *bool) error {
	return e.mutate(func() error {
		inlines, err := e.selectedInlines()
		if err != nil {
			return err
		}
		before, inside, after := splitInlines(*inlines, e.sel.Start, e.sel.End)
		if len(inside) == 0 {
			return nil
		}
		all := true
		for _, run := range inside {
			marks := run.Marks
			if !*field(&marks) {
				all = false
				break
			}
		}
		for i := range inside {
			*field(&inside[i].Marks) = !all
		}
		*inlines = mergeInlines(concatInlines(before, inside, after))
		return nil
	})
}

// SetHeading converts the selected block to a heading at the given level.
// Level zero converts back to a paragraph.
func (e *Editor) SetHeading(level int) error {
	if level < 0 || level > 6 {
		return ErrHeadingLevelInvalid
	}
	return e.mutate(func() error {
		block, err := e.selectedBlock()
		if err != nil {
			return err
		}
		if block.Kind.IsList() {
			e.unwrapList(block)
			block = &e.doc.Blocks[e.sel.Block]
		}
		if level == 0 {
			block.Kind = BlockParagraph
			block.Level = 0
			return nil
		}
		block.Kind = BlockHeading
		block.Level = level
		return nil
	})
}

// ToggleBulletList toggles the selected block between a bullet list and
// plain paragraphs.
func (e *Editor) ToggleBulletList() error {
	return e.toggleList(BlockBulletList)
}

// ToggleOrderedList toggles the selected block between an ordered list and
// plain paragraphs.
func (e *Editor) ToggleOrderedList() error {
	return e.toggleList(BlockOrderedList)
}

func (e *Editor) toggleList(kind BlockKind) error {
	return e.mutate(func() error {
		block, err := e.selectedBlock()
		if err != nil {
			return err
		}
		switch {
		case block.Kind == kind:
			e.unwrapList(block)
		case block.Kind.IsList():
			block.Kind = kind
		default:
			e.doc.Blocks[e.sel.Block] = Block{
				Kind:      kind,
				Alignment: block.Alignment,
				Items:     []ListItem{{Inlines: block.Inlines}},
			}
			e.sel.Item = 0
		}
		return nil
	})
}

// unwrapList replaces a list block with one paragraph per item and keeps the
// selection on the paragraph that held the selected item.
func (e *Editor) unwrapList(block *Block) {
	items := block.Items
	if len(items) == 0 {
		items = []ListItem{{}}
	}
	replacement := make([]Block, len(items))
	for i, item := range items {
		replacement[i] = Block{
			Kind:      BlockParagraph,
			Alignment: block.Alignment,
			Inlines:   item.Inlines,
		}
	}
	idx := e.sel.Block
	blocks := append([]Block(nil), e.doc.Blocks[:idx]...)
	blocks = append(blocks, replacement...)
	blocks = append(blocks, e.doc.Blocks[idx+1:]...)
	e.doc.Blocks = blocks
	e.sel.Block = idx + min(e.sel.Item, len(items)-1)
	e.sel.Item = 0
}

// ToggleBlockquote toggles the selected block between a blockquote and a
// paragraph.
func (e *Editor) ToggleBlockquote() error {
	return e.mutate(func() error {
		block, err := e.selectedBlock()
		if err != nil {
			return err
		}
		switch {
		case block.Kind == BlockBlockquote:
			block.Kind = BlockParagraph
		case block.Kind.IsList():
			e.unwrapList(block)
			e.doc.Blocks[e.sel.Block].Kind = BlockBlockquote
		default:
			block.Kind = BlockBlockquote
			block.Level = 0
		}
		return nil
	})
}

// SetAlignment sets the horizontal alignment of the selected block.
func (e *Editor) SetAlignment(alignment Alignment) error {
	if !alignment.Valid() {
		return ErrAlignmentInvalid
	}
	return e.mutate(func() error {
		block, err := e.selectedBlock()
		if err != nil {
			return err
		}
		block.Alignment = alignment
		return nil
	})
}

// InsertLink applies a link target over the selection. An empty URL is
// ignored, no change is recorded or reported.
func (e *Editor) InsertLink(url string) error {
	if url == "" {
		return nil
	}
	return e.mutate(func() error {
		inlines, err := e.selectedInlines()
		if err != nil {
			return err
		}
		before, inside, after := splitInlines(*inlines, e.sel.Start, e.sel.End)
		if len(inside) == 0 {
			return nil
		}
		for i := range inside {
			inside[i].Href = url
		}
		*inlines = mergeInlines(concatInlines(before, inside, after))
		return nil
	})
}

// InsertText replaces the selection with the supplied text. The inserted run
// inherits the marks of the text immediately before the insertion point.
func (e *Editor) InsertText(text string) error {
	if text == "" {
		return nil
	}
	return e.mutate(func() error {
		return e.insertText(text)
	})
}

func (e *Editor) insertText(text string) error {
	inlines, err := e.selectedInlines()
	if err != nil {
		return err
	}
	before, inside, after := splitInlines(*inlines, e.sel.Start, e.sel.End)

	inserted := Inline{Text: text}
	if n := len(before); n > 0 {
		inserted.Marks = before[n-1].Marks
		inserted.Href = before[n-1].Href
	} else if len(inside) > 0 {
		inserted.Marks = inside[0].Marks
		inserted.Href = inside[0].Href
	}

	*inlines = mergeInlines(concatInlines(before, []Inline{inserted}, after))
	caret := e.sel.Start + len([]rune(text))
	e.sel.Start = caret
	e.sel.End = caret
	return nil
}

// Paste inserts external content as plain text. Any markup in the input is
// stripped before insertion so foreign formatting never enters the document.
func (e *Editor) Paste(content string) error {
	text := StripMarkup(content)
	if text == "" {
		return nil
	}
	return e.mutate(func() error {
		return e.insertText(text)
	})
}

// Undo restores the previous document state.
func (e *Editor) Undo() bool {
	n := len(e.history)
	if n == 0 {
		return false
	}
	e.future = append(e.future, snapshot{doc: e.doc, sel: e.sel})
	last := e.history[n-1]
	e.history = e.history[:n-1]
	e.doc = last.doc
	e.sel = last.sel
	e.notify()
	return true
}

// Redo reapplies the last undone change.
func (e *Editor) Redo() bool {
	n := len(e.future)
	if n == 0 {
		return false
	}
	e.history = append(e.history, snapshot{doc: e.doc, sel: e.sel})
	next := e.future[n-1]
	e.future = e.future[:n-1]
	e.doc = next.doc
	e.sel = next.sel
	e.notify()
	return true
}

// mutate runs a command against a recorded snapshot. Commands that leave the
// document unchanged do not enter history and do not notify.
func (e *Editor) mutate(fn func() error) error {
	prev := snapshot{doc: e.doc.Clone(), sel: e.sel}
	if err := fn(); err != nil {
		return err
	}
	if SerializeHTML(prev.doc) == SerializeHTML(e.doc) {
		return nil
	}
	e.history = append(e.history, prev)
	if len(e.history) > historyLimit {
		e.history = e.history[len(e.history)-historyLimit:]
	}
	e.future = nil
	e.notify()
	return nil
}

func (e *Editor) notify() {
	if e.onChange != nil {
		e.onChange(SerializeHTML(e.doc))
	}
}

func (e *Editor) selectedBlock() (*Block, error) {
	if e.sel.Block < 0 || e.sel.Block >= len(e.doc.Blocks) {
		return nil, ErrSelectionInvalid
	}
	return &e.doc.Blocks[e.sel.Block], nil
}

// selectedInlines resolves the inline sequence the selection addresses,
// returning a pointer so commands can rewrite it in place.
func (e *Editor) selectedInlines() (*[]Inline, error) {
	block, err := e.selectedBlock()
	if err != nil {
		return nil, err
	}
	if block.Kind.IsList() {
		if e.sel.Item < 0 || e.sel.Item >= len(block.Items) {
			return nil, ErrSelectionInvalid
		}
		return &block.Items[e.sel.Item].Inlines, nil
	}
	return &block.Inlines, nil
}

func (e *Editor) normalize(sel Selection) (Selection, error) {
	if sel.Block < 0 || sel.Block >= len(e.doc.Blocks) {
		return sel, ErrSelectionInvalid
	}
	block := e.doc.Blocks[sel.Block]
	var length int
	if block.Kind.IsList() {
		if len(block.Items) == 0 {
			return sel, ErrSelectionInvalid
		}
		if sel.Item < 0 || sel.Item >= len(block.Items) {
			return sel, ErrSelectionInvalid
		}
		length = inlineLength(block.Items[sel.Item].Inlines)
	} else {
		sel.Item = 0
		length = inlineLength(block.Inlines)
	}
	if sel.Start < 0 || sel.End < sel.Start || sel.End > length {
		return sel, ErrSelectionInvalid
	}
	return sel, nil
}
