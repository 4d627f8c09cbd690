package slots

import publicslots "github.com/looprevenue/loop-cms/slots"

type (
	SlotType          = publicslots.SlotType
	ContentSlot       = publicslots.ContentSlot
	SlotConfiguration = publicslots.SlotConfiguration
	SectionGroup      = publicslots.SectionGroup
	Registry          = publicslots.Registry
)

const (
	TypeText      = publicslots.TypeText
	TypeParagraph = publicslots.TypeParagraph
	TypeRichText  = publicslots.TypeRichText
	TypeList      = publicslots.TypeList
)

// GroupBySection re-exports the public grouping helper for internal callers.
func GroupBySection(list []ContentSlot) []SectionGroup {
	return publicslots.GroupBySection(list)
}
