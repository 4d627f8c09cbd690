package slots_test

import (
	"reflect"
	"testing"

	"github.com/looprevenue/loop-cms/slots"
)

func sampleSlots() []slots.ContentSlot {
	return []slots.ContentSlot{
		{ID: "heroTitle", Section: "Hero", Type: slots.TypeText},
		{ID: "introCopy", Section: "Intro", Type: slots.TypeParagraph},
		{ID: "heroSubtitle", Section: "Hero", Type: slots.TypeText},
		{ID: "ctaLabel", Section: "Call To Action", Type: slots.TypeText},
		{ID: "introBullets", Section: "Intro", Type: slots.TypeList},
	}
}

func TestGroupBySectionPreservesOrder(t *testing.T) {
	groups := slots.GroupBySection(sampleSlots())

	if len(groups) != 3 {
		t.Fatalf("expected 3 sections got %d", len(groups))
	}
	if groups[0].Section != "Hero" || groups[1].Section != "Intro" || groups[2].Section != "Call To Action" {
		t.Fatalf("sections out of first-seen order: %+v", groups)
	}
	if groups[0].Slots[0].ID != "heroTitle" || groups[0].Slots[1].ID != "heroSubtitle" {
		t.Fatalf("intra-section order not preserved: %+v", groups[0].Slots)
	}
	if groups[1].Slots[0].ID != "introCopy" || groups[1].Slots[1].ID != "introBullets" {
		t.Fatalf("intra-section order not preserved: %+v", groups[1].Slots)
	}
}

func TestGroupBySectionStable(t *testing.T) {
	first := slots.GroupBySection(sampleSlots())
	second := slots.GroupBySection(sampleSlots())
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical grouping for identical input")
	}
}

func TestGroupBySectionEmpty(t *testing.T) {
	if groups := slots.GroupBySection(nil); len(groups) != 0 {
		t.Fatalf("expected no groups got %d", len(groups))
	}
}

func TestSlotTypeValid(t *testing.T) {
	for _, typ := range []slots.SlotType{slots.TypeText, slots.TypeParagraph, slots.TypeRichText, slots.TypeList} {
		if !typ.Valid() {
			t.Fatalf("expected %s to be valid", typ)
		}
	}
	if slots.SlotType("markdown").Valid() {
		t.Fatal("expected unknown slot type to be invalid")
	}
}
