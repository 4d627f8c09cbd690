package richtext

import "errors"

var (
	// ErrSelectionInvalid indicates the selection does not address the document.
	ErrSelectionInvalid = errors.New("richtext: selection out of range")

	// ErrHeadingLevelInvalid indicates a heading level outside 1..6.
	ErrHeadingLevelInvalid = errors.New("richtext: heading level must be between 1 and 6")

	// ErrAlignmentInvalid indicates an unsupported alignment value.
	ErrAlignmentInvalid = errors.New("richtext: invalid alignment")

	// ErrDocumentInvalid indicates HTML that could not be loaded into a document.
	ErrDocumentInvalid = errors.New("richtext: invalid document markup")
)
