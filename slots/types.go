package slots

// SlotType governs which editing control renders for a content slot.
type SlotType string

const (
	TypeText      SlotType = "text"
	TypeParagraph SlotType = "paragraph"
	TypeRichText  SlotType = "richText"
	TypeList      SlotType = "list"
)

// Valid reports whether the slot type is supported.
func (t SlotType) Valid() bool {
	switch t {
	case TypeText, TypeParagraph, TypeRichText, TypeList:
		return true
	default:
		return false
	}
}

// ContentSlot describes one editable region of a designed page.
type ContentSlot struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	Description  string   `json:"description,omitempty"`
	Type         SlotType `json:"type"`
	DefaultValue string   `json:"default_value"`
	// DefaultList is the default for list-typed slots; DefaultValue is ignored
	// when it is set.
	DefaultList []string `json:"default_list,omitempty"`
	Section     string   `json:"section"`
}

// SlotConfiguration is the ordered slot layout for one designed page slug.
// ComponentPath is informational only: it names the fixed presentation
// component that renders the page, it does not drive behaviour here.
type SlotConfiguration struct {
	ComponentPath string        `json:"component_path"`
	Slots         []ContentSlot `json:"slots"`
}

// Clone returns an independent copy of the configuration.
func (c *SlotConfiguration) Clone() *SlotConfiguration {
	if c == nil {
		return nil
	}
	copied := *c
	copied.Slots = make([]ContentSlot, len(c.Slots))
	for i, slot := range c.Slots {
		copied.Slots[i] = slot
		copied.Slots[i].DefaultList = append([]string(nil), slot.DefaultList...)
	}
	return &copied
}

// SectionGroup pairs a section label with the slots it contains, in order.
type SectionGroup struct {
	Section string        `json:"section"`
	Slots   []ContentSlot `json:"slots"`
}

// Registry resolves slot configurations by page slug. Absence of a
// configuration is a valid, expected outcome signalling "use the generic
// body editor".
type Registry interface {
	Config(slug string) (*SlotConfiguration, bool)
	Slugs() []string
}

// GroupBySection groups slots by their section label, preserving intra-section
// slot order and the order sections were first encountered. Grouping is stable
// under repeated calls with the same input.
func GroupBySection(list []ContentSlot) []SectionGroup {
	groups := make([]SectionGroup, 0, 4)
	index := make(map[string]int, 4)
	for _, slot := range list {
		pos, ok := index[slot.Section]
		if !ok {
			pos = len(groups)
			index[slot.Section] = pos
			groups = append(groups, SectionGroup{Section: slot.Section})
		}
		groups[pos].Slots = append(groups[pos].Slots, slot)
	}
	return groups
}
