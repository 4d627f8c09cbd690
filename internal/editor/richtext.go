package editor

import (
	"errors"

	"github.com/looprevenue/loop-cms/internal/richtext"
	"github.com/looprevenue/loop-cms/pages"
	"github.com/looprevenue/loop-cms/slots"
)

var (
	// ErrSlotUnknown indicates the slot ID is not part of the page's
	// configuration.
	ErrSlotUnknown = errors.New("editor: unknown slot")

	// ErrSlotNotRichText indicates a rich text editor was requested for a
	// plain slot.
	ErrSlotNotRichText = errors.New("editor: slot is not a rich text slot")
)

// RichTextEditor opens a structured editor over a rich text slot. The editor
// loads the resolved slot value (working override or default) and pushes every
// change back into the working override map as serialized HTML, so saving the
// session persists the latest editor state.
func (s *Session) RichTextEditor(slotID string) (*richtext.Editor, error) {
	if s.config == nil {
		return nil, ErrNotDesigned
	}

	slot, ok := s.findSlot(slotID)
	if !ok {
		return nil, ErrSlotUnknown
	}
	if slot.Type != slots.TypeRichText {
		return nil, ErrSlotNotRichText
	}

	editor := richtext.NewEditor(richtext.WithChangeFunc(func(markup string) {
		s.working[slotID] = pages.StringValue(markup)
		s.touch()
	}))
	if err := editor.LoadHTML(s.SlotValue(slot).Text); err != nil {
		return nil, err
	}
	return editor, nil
}

func (s *Session) findSlot(slotID string) (slots.ContentSlot, bool) {
	if s.config == nil {
		return slots.ContentSlot{}, false
	}
	for _, slot := range s.config.Slots {
		if slot.ID == slotID {
			return slot, true
		}
	}
	return slots.ContentSlot{}, false
}
