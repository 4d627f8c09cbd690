package richtext_test

import (
	"testing"

	"github.com/looprevenue/loop-cms/internal/richtext"
)

func TestSerializeMarkNestingOrder(t *testing.T) {
	doc := richtext.Document{
		Blocks: []richtext.Block{
			richtext.Paragraph(richtext.Inline{
				Text:  "link",
				Marks: richtext.Marks{Bold: true, Italic: true, Underline: true},
				Href:  "https://example.com",
			}),
		},
	}
	want := `<p><strong><em><u><a href="https://example.com">link</a></u></em></strong></p>`
	if got := richtext.SerializeHTML(doc); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestSerializeEscapesText(t *testing.T) {
	doc := richtext.Document{
		Blocks: []richtext.Block{
			richtext.Paragraph(richtext.Text("a < b & c")),
		},
	}
	want := "<p>a &lt; b &amp; c</p>"
	if got := richtext.SerializeHTML(doc); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestParseHTMLRoundTrip(t *testing.T) {
	markup := `<h2 style="text-align:center">Title</h2>` +
		`<p>hello <strong>bold</strong> and <em>italic</em></p>` +
		`<ul><li>one</li><li><u>two</u></li></ul>` +
		`<blockquote>quoted</blockquote>`

	doc, err := richtext.ParseHTML(markup)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := richtext.SerializeHTML(doc); got != markup {
		t.Fatalf("round trip mismatch:\n got %q\nwant %q", got, markup)
	}
}

func TestParseHTMLNormalizesLegacyTags(t *testing.T) {
	doc, err := richtext.ParseHTML("<p><b>bold</b> and <i>italic</i></p>")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := "<p><strong>bold</strong> and <em>italic</em></p>"
	if got := richtext.SerializeHTML(doc); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestParseHTMLBareTextBecomesParagraph(t *testing.T) {
	doc, err := richtext.ParseHTML("just text")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := richtext.SerializeHTML(doc); got != "<p>just text</p>" {
		t.Fatalf("got %q", got)
	}
}

func TestParseHTMLEmptyInputYieldsEmptyParagraph(t *testing.T) {
	doc, err := richtext.ParseHTML("")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := richtext.SerializeHTML(doc); got != "<p></p>" {
		t.Fatalf("got %q", got)
	}
}

func TestStripMarkup(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"<span style=\"color:red\">styled</span>", "styled"},
		{"<p>one</p><p>two</p>", "onetwo"},
		{"a &amp; b", "a & b"},
	}
	for _, tc := range cases {
		if got := richtext.StripMarkup(tc.in); got != tc.want {
			t.Fatalf("StripMarkup(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
