package richtext

// BlockKind enumerates the block-level node types of a document.
type BlockKind string

const (
	BlockParagraph   BlockKind = "paragraph"
	BlockHeading     BlockKind = "heading"
	BlockBulletList  BlockKind = "bulletList"
	BlockOrderedList BlockKind = "orderedList"
	BlockBlockquote  BlockKind = "blockquote"
)

// Valid reports whether the kind is one of the supported block types.
func (k BlockKind) Valid() bool {
	switch k {
	case BlockParagraph, BlockHeading, BlockBulletList, BlockOrderedList, BlockBlockquote:
		return true
	default:
		return false
	}
}

// IsList reports whether the block kind carries list items.
func (k BlockKind) IsList() bool {
	return k == BlockBulletList || k == BlockOrderedList
}

// Alignment is the horizontal alignment of a block. The zero value means the
// default alignment and is omitted from serialized output.
type Alignment string

const (
	AlignDefault Alignment = ""
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
)

// Valid reports whether the alignment is a supported value.
func (a Alignment) Valid() bool {
	switch a {
	case AlignDefault, AlignLeft, AlignCenter, AlignRight:
		return true
	default:
		return false
	}
}

// Marks are the character-level formatting flags of an inline run.
type Marks struct {
	Bold      bool `json:"bold,omitempty"`
	Italic    bool `json:"italic,omitempty"`
	Underline bool `json:"underline,omitempty"`
}

// Inline is a run of text with uniform marks and an optional link target.
type Inline struct {
	Text  string `json:"text"`
	Marks Marks  `json:"marks,omitempty"`
	Href  string `json:"href,omitempty"`
}

// SameStyle reports whether two inlines can be merged into one run.
func (in Inline) SameStyle(other Inline) bool {
	return in.Marks == other.Marks && in.Href == other.Href
}

// ListItem is a single entry of a bullet or ordered list.
type ListItem struct {
	Inlines []Inline `json:"inlines"`
}

// Block is a block-level node. Paragraphs, headings, and blockquotes carry
// Inlines; list kinds carry Items. Level is meaningful for headings only.
type Block struct {
	Kind      BlockKind  `json:"kind"`
	Level     int        `json:"level,omitempty"`
	Alignment Alignment  `json:"alignment,omitempty"`
	Inlines   []Inline   `json:"inlines,omitempty"`
	Items     []ListItem `json:"items,omitempty"`
}

// Document is an ordered sequence of blocks.
type Document struct {
	Blocks []Block `json:"blocks"`
}

// Paragraph constructs a paragraph block from inline runs.
func Paragraph(inlines ...Inline) Block {
	return Block{Kind: BlockParagraph, Inlines: inlines}
}

// Heading constructs a heading block at the given level.
func Heading(level int, inlines ...Inline) Block {
	return Block{Kind: BlockHeading, Level: level, Inlines: inlines}
}

// Text constructs an unformatted inline run.
func Text(text string) Inline {
	return Inline{Text: text}
}

// NewDocument constructs a document with a single empty paragraph, the
// minimal editable state.
func NewDocument() Document {
	return Document{Blocks: []Block{{Kind: BlockParagraph}}}
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	if d.Blocks == nil {
		return Document{}
	}
	blocks := make([]Block, len(d.Blocks))
	for i, block := range d.Blocks {
		blocks[i] = block.Clone()
	}
	return Document{Blocks: blocks}
}

// Clone returns a deep copy of the block.
func (b Block) Clone() Block {
	copied := b
	copied.Inlines = cloneInlines(b.Inlines)
	if b.Items != nil {
		copied.Items = make([]ListItem, len(b.Items))
		for i, item := range b.Items {
			copied.Items[i] = ListItem{Inlines: cloneInlines(item.Inlines)}
		}
	}
	return copied
}

// PlainText flattens the block's text content without formatting.
func (b Block) PlainText() string {
	if b.Kind.IsList() {
		var out string
		for i, item := range b.Items {
			if i > 0 {
				out += "\n"
			}
			out += inlineText(item.Inlines)
		}
		return out
	}
	return inlineText(b.Inlines)
}

func inlineText(inlines []Inline) string {
	var out string
	for _, in := range inlines {
		out += in.Text
	}
	return out
}

func cloneInlines(src []Inline) []Inline {
	if src == nil {
		return nil
	}
	return append([]Inline(nil), src...)
}
