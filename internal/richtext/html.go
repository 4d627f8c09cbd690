package richtext

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// SerializeHTML renders the document to canonical HTML. The output is
// deterministic: marks always nest strong, em, u, a from the outside in, and
// alignment is written as an inline text-align style on the block tag.
func SerializeHTML(doc Document) string {
	var sb strings.Builder
	for _, block := range doc.Blocks {
		writeBlock(&sb, block)
	}
	return sb.String()
}

func writeBlock(sb *strings.Builder, block Block) {
	switch block.Kind {
	case BlockHeading:
		level := block.Level
		if level < 1 || level > 6 {
			level = 1
		}
		tag := fmt.Sprintf("h%d", level)
		openTag(sb, tag, block.Alignment)
		writeInlines(sb, block.Inlines)
		closeTag(sb, tag)
	case BlockBulletList, BlockOrderedList:
		tag := "ul"
		if block.Kind == BlockOrderedList {
			tag = "ol"
		}
		openTag(sb, tag, block.Alignment)
		for _, item := range block.Items {
			sb.WriteString("<li>")
			writeInlines(sb, item.Inlines)
			sb.WriteString("</li>")
		}
		closeTag(sb, tag)
	case BlockBlockquote:
		openTag(sb, "blockquote", block.Alignment)
		writeInlines(sb, block.Inlines)
		closeTag(sb, "blockquote")
	default:
		openTag(sb, "p", block.Alignment)
		writeInlines(sb, block.Inlines)
		closeTag(sb, "p")
	}
}

func openTag(sb *strings.Builder, tag string, alignment Alignment) {
	sb.WriteString("<")
	sb.WriteString(tag)
	if alignment != AlignDefault {
		sb.WriteString(` style="text-align:`)
		sb.WriteString(string(alignment))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
}

func closeTag(sb *strings.Builder, tag string) {
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteString(">")
}

func writeInlines(sb *strings.Builder, inlines []Inline) {
	for _, run := range inlines {
		writeInline(sb, run)
	}
}

func writeInline(sb *strings.Builder, run Inline) {
	var openers, closers []string
	if run.Marks.Bold {
		openers = append(openers, "<strong>")
		closers = append([]string{"</strong>"}, closers...)
	}
	if run.Marks.Italic {
		openers = append(openers, "<em>")
		closers = append([]string{"</em>"}, closers...)
	}
	if run.Marks.Underline {
		openers = append(openers, "<u>")
		closers = append([]string{"</u>"}, closers...)
	}
	if run.Href != "" {
		openers = append(openers, `<a href="`+html.EscapeString(run.Href)+`">`)
		closers = append([]string{"</a>"}, closers...)
	}
	for _, tag := range openers {
		sb.WriteString(tag)
	}
	sb.WriteString(html.EscapeString(run.Text))
	for _, tag := range closers {
		sb.WriteString(tag)
	}
}

// ParseHTML loads markup into a document. Recognized block tags map to their
// block kinds; unknown elements contribute their text content. An input with
// no block structure becomes a single paragraph.
func ParseHTML(markup string) (Document, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrDocumentInvalid, err)
	}

	body := findBody(root)
	if body == nil {
		return NewDocument(), nil
	}

	var doc Document
	var loose []Inline
	flushLoose := func() {
		if merged := mergeInlines(loose); merged != nil {
			doc.Blocks = append(doc.Blocks, Block{Kind: BlockParagraph, Inlines: merged})
		}
		loose = nil
	}

	for child := body.FirstChild; child != nil; child = child.NextSibling {
		if block, ok := parseBlock(child); ok {
			flushLoose()
			doc.Blocks = append(doc.Blocks, block...)
			continue
		}
		loose = append(loose, collectInlines(child, Marks{}, "")...)
	}
	flushLoose()

	if len(doc.Blocks) == 0 {
		return NewDocument(), nil
	}
	return doc, nil
}

// StripMarkup reduces markup to its text content. Plain input passes through
// unchanged apart from entity decoding.
func StripMarkup(content string) string {
	if !strings.ContainsAny(content, "<&") {
		return content
	}
	root, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return content
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return sb.String()
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if body := findBody(child); body != nil {
			return body
		}
	}
	return nil
}

func parseBlock(n *html.Node) ([]Block, bool) {
	if n.Type != html.ElementNode {
		return nil, false
	}
	alignment := parseAlignment(n)
	switch n.DataAtom {
	case atom.P:
		return []Block{{
			Kind:      BlockParagraph,
			Alignment: alignment,
			Inlines:   mergeInlines(childInlines(n)),
		}}, true
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return []Block{{
			Kind:      BlockHeading,
			Level:     int(n.Data[1] - '0'),
			Alignment: alignment,
			Inlines:   mergeInlines(childInlines(n)),
		}}, true
	case atom.Blockquote:
		return []Block{{
			Kind:      BlockBlockquote,
			Alignment: alignment,
			Inlines:   mergeInlines(childInlines(n)),
		}}, true
	case atom.Ul, atom.Ol:
		kind := BlockBulletList
		if n.DataAtom == atom.Ol {
			kind = BlockOrderedList
		}
		block := Block{Kind: kind, Alignment: alignment}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.ElementNode && child.DataAtom == atom.Li {
				block.Items = append(block.Items, ListItem{Inlines: mergeInlines(childInlines(child))})
			}
		}
		return []Block{block}, true
	case atom.Div, atom.Section, atom.Article:
		var blocks []Block
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if nested, ok := parseBlock(child); ok {
				blocks = append(blocks, nested...)
			} else if inlines := mergeInlines(collectInlines(child, Marks{}, "")); inlines != nil {
				blocks = append(blocks, Block{Kind: BlockParagraph, Alignment: alignment, Inlines: inlines})
			}
		}
		return blocks, true
	default:
		return nil, false
	}
}

func childInlines(n *html.Node) []Inline {
	var out []Inline
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		out = append(out, collectInlines(child, Marks{}, "")...)
	}
	return out
}

func collectInlines(n *html.Node, marks Marks, href string) []Inline {
	switch n.Type {
	case html.TextNode:
		text := n.Data
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return []Inline{{Text: text, Marks: marks, Href: href}}
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Strong, atom.B:
			marks.Bold = true
		case atom.Em, atom.I:
			marks.Italic = true
		case atom.U:
			marks.Underline = true
		case atom.A:
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					href = attr.Val
				}
			}
		case atom.Br:
			return []Inline{{Text: " ", Marks: marks, Href: href}}
		case atom.Script, atom.Style:
			return nil
		}
		var out []Inline
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			out = append(out, collectInlines(child, marks, href)...)
		}
		return out
	default:
		return nil
	}
}

func parseAlignment(n *html.Node) Alignment {
	for _, attr := range n.Attr {
		if attr.Key != "style" {
			continue
		}
		for _, decl := range strings.Split(attr.Val, ";") {
			key, value, ok := strings.Cut(decl, ":")
			if !ok || strings.TrimSpace(key) != "text-align" {
				continue
			}
			alignment := Alignment(strings.TrimSpace(value))
			if alignment.Valid() {
				return alignment
			}
		}
	}
	return AlignDefault
}
