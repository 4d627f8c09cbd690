package editor_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/looprevenue/loop-cms/internal/editor"
	internalpages "github.com/looprevenue/loop-cms/internal/pages"
	"github.com/looprevenue/loop-cms/internal/richtext"
	internalslots "github.com/looprevenue/loop-cms/internal/slots"
	"github.com/looprevenue/loop-cms/pages"
	"github.com/looprevenue/loop-cms/slots"
)

type sessionFixture struct {
	svc      pages.Service
	registry slots.Registry
	page     *pages.Page
}

func newSessionFixture(t *testing.T, slug string, slotOverrides map[string]pages.SlotValue) sessionFixture {
	t.Helper()
	svc := internalpages.NewService(internalpages.NewMemoryPageRepository())
	created, err := svc.Create(context.Background(), pages.CreatePageRequest{
		PageFields: pages.PageFields{
			Slug:         slug,
			Title:        "Seed Title",
			Status:       pages.StatusPublished,
			ContentSlots: slotOverrides,
		},
	})
	if err != nil {
		t.Fatalf("create page: %v", err)
	}
	return sessionFixture{
		svc:      svc,
		registry: internalslots.NewSiteRegistry(),
		page:     created,
	}
}

func (f sessionFixture) open(t *testing.T, opts ...editor.SessionOption) *editor.Session {
	t.Helper()
	session, err := editor.NewSession(context.Background(), f.svc, f.registry, f.page.ID, opts...)
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	return session
}

func heroTitleSlot(t *testing.T, registry slots.Registry) slots.ContentSlot {
	t.Helper()
	config, ok := registry.Config("overview/stages")
	if !ok {
		t.Fatal("expected slot configuration for overview/stages")
	}
	for _, slot := range config.Slots {
		if slot.ID == "heroTitle" {
			return slot
		}
	}
	t.Fatal("expected heroTitle slot")
	return slots.ContentSlot{}
}

func TestSlotValueFallsBackToDefault(t *testing.T) {
	f := newSessionFixture(t, "overview/stages", nil)
	session := f.open(t)

	slot := heroTitleSlot(t, f.registry)
	if got := session.SlotValue(slot); got.Text != "The Four Stages" {
		t.Fatalf("expected default value, got %q", got.Text)
	}

	if err := session.UpdateSlot("heroTitle", pages.StringValue("New Title")); err != nil {
		t.Fatalf("update slot: %v", err)
	}
	if got := session.SlotValue(slot); got.Text != "New Title" {
		t.Fatalf("expected override, got %q", got.Text)
	}
}

func TestWorkingSlotsSeededFromPersistedNotDefaults(t *testing.T) {
	f := newSessionFixture(t, "overview/stages", map[string]pages.SlotValue{
		"heroTitle": pages.StringValue("Persisted"),
	})
	session := f.open(t)

	working := session.WorkingSlots()
	if len(working) != 1 {
		t.Fatalf("expected only persisted overrides in working map, got %v", working)
	}
	if working["heroTitle"].Text != "Persisted" {
		t.Fatalf("expected persisted override, got %v", working["heroTitle"])
	}
}

func TestUpdateSlotOnGenericPage(t *testing.T) {
	f := newSessionFixture(t, "some-landing", nil)
	session := f.open(t)

	if session.Designed() {
		t.Fatal("expected generic page")
	}
	if err := session.UpdateSlot("heroTitle", pages.StringValue("x")); !errors.Is(err, editor.ErrNotDesigned) {
		t.Fatalf("expected ErrNotDesigned got %v", err)
	}
}

func TestEditsClearSavedIndicator(t *testing.T) {
	f := newSessionFixture(t, "overview/stages", nil)
	session := f.open(t)

	if err := session.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !session.Saved() {
		t.Fatal("expected saved indicator after successful save")
	}

	title := "Edited"
	session.UpdatePage(editor.PageUpdate{Title: &title})
	if session.Saved() {
		t.Fatal("expected edit to clear saved indicator")
	}

	if err := session.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := session.UpdateSlot("heroTitle", pages.StringValue("x")); err != nil {
		t.Fatalf("update slot: %v", err)
	}
	if session.Saved() {
		t.Fatal("expected slot edit to clear saved indicator")
	}
}

func TestFAQItemOperations(t *testing.T) {
	f := newSessionFixture(t, "system", nil)
	session := f.open(t)

	session.AddFAQItem()
	session.AddFAQItem()
	if err := session.UpdateFAQItem(0, editor.FAQQuestion, "What is the loop?"); err != nil {
		t.Fatalf("update faq: %v", err)
	}
	if err := session.UpdateFAQItem(1, editor.FAQAnswer, "Second answer"); err != nil {
		t.Fatalf("update faq: %v", err)
	}

	if err := session.RemoveFAQItem(0); err != nil {
		t.Fatalf("remove faq: %v", err)
	}
	items := session.Page().FAQItems
	if len(items) != 1 {
		t.Fatalf("expected one item after removal, got %d", len(items))
	}
	if items[0].Answer != "Second answer" {
		t.Fatalf("expected later item shifted down, got %+v", items[0])
	}

	if err := session.RemoveFAQItem(5); !errors.Is(err, editor.ErrFAQIndexInvalid) {
		t.Fatalf("expected ErrFAQIndexInvalid got %v", err)
	}
	if err := session.UpdateFAQItem(0, "category", "x"); !errors.Is(err, editor.ErrFAQFieldInvalid) {
		t.Fatalf("expected ErrFAQFieldInvalid got %v", err)
	}
}

func TestSavePersistsWorkingSlotsAndBumpsNonce(t *testing.T) {
	f := newSessionFixture(t, "overview/stages", nil)
	session := f.open(t)

	if err := session.UpdateSlot("heroTitle", pages.StringValue("New Title")); err != nil {
		t.Fatalf("update slot: %v", err)
	}
	if err := session.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}

	stored, err := f.svc.Get(context.Background(), f.page.ID)
	if err != nil {
		t.Fatalf("get stored: %v", err)
	}
	if stored.ContentSlots["heroTitle"].Text != "New Title" {
		t.Fatalf("expected override persisted, got %v", stored.ContentSlots)
	}
	if session.PreviewNonce() != 1 {
		t.Fatalf("expected nonce bump, got %d", session.PreviewNonce())
	}
}

func TestSaveSendsNilSlotsForGenericPages(t *testing.T) {
	f := newSessionFixture(t, "some-landing", nil)
	session := f.open(t)

	body := "<p>generic body</p>"
	session.UpdatePage(editor.PageUpdate{Body: &body})
	if err := session.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}

	stored, err := f.svc.Get(context.Background(), f.page.ID)
	if err != nil {
		t.Fatalf("get stored: %v", err)
	}
	if stored.ContentSlots != nil {
		t.Fatalf("expected nil content slots, got %v", stored.ContentSlots)
	}
	if stored.Body != body {
		t.Fatalf("expected body persisted, got %q", stored.Body)
	}
}

func TestFailedSaveLeavesWorkingStateUntouched(t *testing.T) {
	f := newSessionFixture(t, "overview/stages", nil)
	if _, err := f.svc.Create(context.Background(), pages.CreatePageRequest{
		PageFields: pages.PageFields{Slug: "taken", Title: "Other", Status: pages.StatusDraft},
	}); err != nil {
		t.Fatalf("create other page: %v", err)
	}

	session := f.open(t)
	if err := session.UpdateSlot("heroTitle", pages.StringValue("Edited")); err != nil {
		t.Fatalf("update slot: %v", err)
	}
	slug := "taken"
	session.UpdatePage(editor.PageUpdate{Slug: &slug})

	err := session.Save(context.Background())
	if !errors.Is(err, pages.ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists got %v", err)
	}

	// The attempted slug stays visible, local edits survive, and the error
	// message is surfaced for retry.
	if session.Page().Slug != "taken" {
		t.Fatalf("expected attempted slug retained, got %q", session.Page().Slug)
	}
	if session.WorkingSlots()["heroTitle"].Text != "Edited" {
		t.Fatal("expected slot edit retained after failed save")
	}
	if session.Saved() {
		t.Fatal("expected saved indicator unset")
	}
	if session.SaveError() == "" || !strings.Contains(session.SaveError(), "slug already exists") {
		t.Fatalf("expected slug-exists message, got %q", session.SaveError())
	}

	// Retry after correcting the slug succeeds.
	fixed := "overview/stages"
	session.UpdatePage(editor.PageUpdate{Slug: &fixed})
	if err := session.Save(context.Background()); err != nil {
		t.Fatalf("retry save: %v", err)
	}
	if !session.Saved() || session.SaveError() != "" {
		t.Fatal("expected clean state after successful retry")
	}
}

func TestPreviewURL(t *testing.T) {
	f := newSessionFixture(t, "system", nil)
	session := f.open(t, editor.WithPreviewBuilder(editor.NewPreviewBuilder(editor.PreviewOptions{
		BaseURL: "https://looprevenue.example",
	})))

	url, err := session.PreviewURL()
	if err != nil {
		t.Fatalf("preview url: %v", err)
	}
	if !strings.Contains(url, "system") || !strings.Contains(url, "preview=true") || !strings.Contains(url, "v=0") {
		t.Fatalf("unexpected preview url %q", url)
	}

	if err := session.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	url, err = session.PreviewURL()
	if err != nil {
		t.Fatalf("preview url: %v", err)
	}
	if !strings.Contains(url, "v=1") {
		t.Fatalf("expected bumped nonce in %q", url)
	}
}

func TestSessionRichTextEditor(t *testing.T) {
	f := newSessionFixture(t, "overview/stages", nil)
	session := f.open(t)

	rt, err := session.RichTextEditor("stagesOverview")
	if err != nil {
		t.Fatalf("rich text editor: %v", err)
	}
	if got := rt.HTML(); !strings.Contains(got, "Each stage feeds the next") {
		t.Fatalf("expected default slot content loaded, got %q", got)
	}

	if err := rt.Select(richtext.Selection{Block: 0, Start: 0, End: 4}); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := rt.ToggleBold(); err != nil {
		t.Fatalf("toggle bold: %v", err)
	}

	working := session.WorkingSlots()
	if !strings.Contains(working["stagesOverview"].Text, "<strong>Each</strong>") {
		t.Fatalf("expected editor change pushed into working slots, got %q", working["stagesOverview"].Text)
	}
	if session.Saved() {
		t.Fatal("expected edit to clear the saved indicator")
	}

	if err := session.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	stored, err := f.svc.Get(context.Background(), f.page.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.Contains(stored.ContentSlots["stagesOverview"].Text, "<strong>Each</strong>") {
		t.Fatalf("expected rich text persisted, got %q", stored.ContentSlots["stagesOverview"].Text)
	}
}

func TestSessionRichTextEditorRejectsPlainSlots(t *testing.T) {
	f := newSessionFixture(t, "overview/stages", nil)
	session := f.open(t)

	if _, err := session.RichTextEditor("heroTitle"); !errors.Is(err, editor.ErrSlotNotRichText) {
		t.Fatalf("expected ErrSlotNotRichText, got %v", err)
	}
	if _, err := session.RichTextEditor("missing"); !errors.Is(err, editor.ErrSlotUnknown) {
		t.Fatalf("expected ErrSlotUnknown, got %v", err)
	}

	generic := newSessionFixture(t, "about", nil)
	if _, err := generic.open(t).RichTextEditor("stagesOverview"); !errors.Is(err, editor.ErrNotDesigned) {
		t.Fatalf("expected ErrNotDesigned, got %v", err)
	}
}
