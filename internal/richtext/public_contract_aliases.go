package richtext

import publicrichtext "github.com/looprevenue/loop-cms/richtext"

type (
	BlockKind = publicrichtext.BlockKind
	Alignment = publicrichtext.Alignment
	Marks     = publicrichtext.Marks
	Inline    = publicrichtext.Inline
	ListItem  = publicrichtext.ListItem
	Block     = publicrichtext.Block
	Document  = publicrichtext.Document
)

const (
	BlockParagraph   = publicrichtext.BlockParagraph
	BlockHeading     = publicrichtext.BlockHeading
	BlockBulletList  = publicrichtext.BlockBulletList
	BlockOrderedList = publicrichtext.BlockOrderedList
	BlockBlockquote  = publicrichtext.BlockBlockquote

	AlignDefault = publicrichtext.AlignDefault
	AlignLeft    = publicrichtext.AlignLeft
	AlignCenter  = publicrichtext.AlignCenter
	AlignRight   = publicrichtext.AlignRight
)

var (
	NewDocument = publicrichtext.NewDocument
	Paragraph   = publicrichtext.Paragraph
	Heading     = publicrichtext.Heading
	Text        = publicrichtext.Text

	ErrSelectionInvalid    = publicrichtext.ErrSelectionInvalid
	ErrHeadingLevelInvalid = publicrichtext.ErrHeadingLevelInvalid
	ErrAlignmentInvalid    = publicrichtext.ErrAlignmentInvalid
	ErrDocumentInvalid     = publicrichtext.ErrDocumentInvalid
)
