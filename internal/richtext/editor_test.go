package richtext_test

import (
	"errors"
	"testing"

	"github.com/looprevenue/loop-cms/internal/richtext"
)

func newTextEditor(t *testing.T, text string, changes *[]string) *richtext.Editor {
	t.Helper()
	opts := []richtext.EditorOption{
		richtext.WithDocument(richtext.Document{
			Blocks: []richtext.Block{richtext.Paragraph(richtext.Text(text))},
		}),
	}
	if changes != nil {
		opts = append(opts, richtext.WithChangeFunc(func(html string) {
			*changes = append(*changes, html)
		}))
	}
	return richtext.NewEditor(opts...)
}

func mustSelect(t *testing.T, e *richtext.Editor, sel richtext.Selection) {
	t.Helper()
	if err := e.Select(sel); err != nil {
		t.Fatalf("select: %v", err)
	}
}

func TestToggleBoldOverRange(t *testing.T) {
	var changes []string
	e := newTextEditor(t, "hello world", &changes)
	mustSelect(t, e, richtext.Selection{Start: 0, End: 5})

	if err := e.ToggleBold(); err != nil {
		t.Fatalf("toggle bold: %v", err)
	}
	want := "<p><strong>hello</strong> world</p>"
	if got := e.HTML(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if len(changes) != 1 || changes[0] != want {
		t.Fatalf("expected one change notification with %q, got %v", want, changes)
	}

	// Toggling again over the same range removes the mark.
	if err := e.ToggleBold(); err != nil {
		t.Fatalf("toggle bold: %v", err)
	}
	if got := e.HTML(); got != "<p>hello world</p>" {
		t.Fatalf("expected mark removed, got %q", got)
	}
}

func TestToggleMarkMixedRangeAppliesEverywhere(t *testing.T) {
	e := newTextEditor(t, "hello world", nil)
	mustSelect(t, e, richtext.Selection{Start: 0, End: 5})
	if err := e.ToggleItalic(); err != nil {
		t.Fatalf("toggle italic: %v", err)
	}

	// Range covering both marked and unmarked text marks the whole range.
	mustSelect(t, e, richtext.Selection{Start: 0, End: 11})
	if err := e.ToggleItalic(); err != nil {
		t.Fatalf("toggle italic: %v", err)
	}
	if got := e.HTML(); got != "<p><em>hello world</em></p>" {
		t.Fatalf("got %q", got)
	}
}

func TestSetHeading(t *testing.T) {
	e := newTextEditor(t, "Title", nil)
	if err := e.SetHeading(2); err != nil {
		t.Fatalf("set heading: %v", err)
	}
	if got := e.HTML(); got != "<h2>Title</h2>" {
		t.Fatalf("got %q", got)
	}

	if err := e.SetHeading(0); err != nil {
		t.Fatalf("clear heading: %v", err)
	}
	if got := e.HTML(); got != "<p>Title</p>" {
		t.Fatalf("got %q", got)
	}

	if err := e.SetHeading(7); !errors.Is(err, richtext.ErrHeadingLevelInvalid) {
		t.Fatalf("expected ErrHeadingLevelInvalid got %v", err)
	}
}

func TestToggleBulletListWrapsAndUnwraps(t *testing.T) {
	e := newTextEditor(t, "first", nil)
	if err := e.ToggleBulletList(); err != nil {
		t.Fatalf("toggle list: %v", err)
	}
	if got := e.HTML(); got != "<ul><li>first</li></ul>" {
		t.Fatalf("got %q", got)
	}

	if err := e.ToggleOrderedList(); err != nil {
		t.Fatalf("switch list kind: %v", err)
	}
	if got := e.HTML(); got != "<ol><li>first</li></ol>" {
		t.Fatalf("got %q", got)
	}

	if err := e.ToggleOrderedList(); err != nil {
		t.Fatalf("unwrap list: %v", err)
	}
	if got := e.HTML(); got != "<p>first</p>" {
		t.Fatalf("got %q", got)
	}
}

func TestToggleBlockquote(t *testing.T) {
	e := newTextEditor(t, "quoted", nil)
	if err := e.ToggleBlockquote(); err != nil {
		t.Fatalf("toggle blockquote: %v", err)
	}
	if got := e.HTML(); got != "<blockquote>quoted</blockquote>" {
		t.Fatalf("got %q", got)
	}
	if err := e.ToggleBlockquote(); err != nil {
		t.Fatalf("toggle blockquote: %v", err)
	}
	if got := e.HTML(); got != "<p>quoted</p>" {
		t.Fatalf("got %q", got)
	}
}

func TestSetAlignment(t *testing.T) {
	e := newTextEditor(t, "centered", nil)
	if err := e.SetAlignment(richtext.AlignCenter); err != nil {
		t.Fatalf("set alignment: %v", err)
	}
	if got := e.HTML(); got != `<p style="text-align:center">centered</p>` {
		t.Fatalf("got %q", got)
	}
	if err := e.SetAlignment("justify"); !errors.Is(err, richtext.ErrAlignmentInvalid) {
		t.Fatalf("expected ErrAlignmentInvalid got %v", err)
	}
}

func TestInsertLinkIgnoresEmptyURL(t *testing.T) {
	var changes []string
	e := newTextEditor(t, "read this", &changes)
	mustSelect(t, e, richtext.Selection{Start: 5, End: 9})

	if err := e.InsertLink(""); err != nil {
		t.Fatalf("insert empty link: %v", err)
	}
	if len(changes) != 0 {
		t.Fatalf("empty URL must not produce a change, got %v", changes)
	}

	if err := e.InsertLink("https://example.com/guide"); err != nil {
		t.Fatalf("insert link: %v", err)
	}
	want := `<p>read <a href="https://example.com/guide">this</a></p>`
	if got := e.HTML(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestInsertTextInheritsMarks(t *testing.T) {
	e := newTextEditor(t, "bold", nil)
	mustSelect(t, e, richtext.Selection{Start: 0, End: 4})
	if err := e.ToggleBold(); err != nil {
		t.Fatalf("toggle bold: %v", err)
	}

	mustSelect(t, e, richtext.Selection{Start: 4, End: 4})
	if err := e.InsertText("er"); err != nil {
		t.Fatalf("insert text: %v", err)
	}
	if got := e.HTML(); got != "<p><strong>bolder</strong></p>" {
		t.Fatalf("got %q", got)
	}
	if sel := e.Selection(); sel.Start != 6 || sel.End != 6 {
		t.Fatalf("expected caret after insertion, got %+v", sel)
	}
}

func TestInsertTextReplacesSelection(t *testing.T) {
	e := newTextEditor(t, "hello world", nil)
	mustSelect(t, e, richtext.Selection{Start: 6, End: 11})
	if err := e.InsertText("there"); err != nil {
		t.Fatalf("insert text: %v", err)
	}
	if got := e.HTML(); got != "<p>hello there</p>" {
		t.Fatalf("got %q", got)
	}
}

func TestPasteStripsMarkup(t *testing.T) {
	e := newTextEditor(t, "", nil)
	if err := e.Paste(`<div class="foreign"><b>bold</b> text</div>`); err != nil {
		t.Fatalf("paste: %v", err)
	}
	if got := e.HTML(); got != "<p>bold text</p>" {
		t.Fatalf("expected markup stripped, got %q", got)
	}
}

func TestUndoRedo(t *testing.T) {
	var changes []string
	e := newTextEditor(t, "draft", &changes)
	mustSelect(t, e, richtext.Selection{Start: 0, End: 5})
	if err := e.ToggleBold(); err != nil {
		t.Fatalf("toggle bold: %v", err)
	}
	if err := e.SetHeading(1); err != nil {
		t.Fatalf("set heading: %v", err)
	}

	if !e.Undo() {
		t.Fatal("expected undo to apply")
	}
	if got := e.HTML(); got != "<p><strong>draft</strong></p>" {
		t.Fatalf("after undo got %q", got)
	}

	if !e.Redo() {
		t.Fatal("expected redo to apply")
	}
	if got := e.HTML(); got != "<h1><strong>draft</strong></h1>" {
		t.Fatalf("after redo got %q", got)
	}

	e.Undo()
	e.Undo()
	if got := e.HTML(); got != "<p>draft</p>" {
		t.Fatalf("after full undo got %q", got)
	}
	if e.Undo() {
		t.Fatal("expected empty history")
	}
}

func TestSelectRejectsOutOfRange(t *testing.T) {
	e := newTextEditor(t, "short", nil)
	if err := e.Select(richtext.Selection{Start: 0, End: 99}); !errors.Is(err, richtext.ErrSelectionInvalid) {
		t.Fatalf("expected ErrSelectionInvalid got %v", err)
	}
	if err := e.Select(richtext.Selection{Block: 3}); !errors.Is(err, richtext.ErrSelectionInvalid) {
		t.Fatalf("expected ErrSelectionInvalid got %v", err)
	}
}
