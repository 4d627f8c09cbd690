package editor

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/looprevenue/loop-cms/internal/logging"
	"github.com/looprevenue/loop-cms/pages"
	"github.com/looprevenue/loop-cms/pkg/interfaces"
	"github.com/looprevenue/loop-cms/slots"
)

var (
	// ErrNotDesigned indicates a slot operation on a page without a slot
	// configuration.
	ErrNotDesigned = errors.New("editor: page has no slot configuration")

	// ErrFAQIndexInvalid indicates an FAQ operation addressed a missing item.
	ErrFAQIndexInvalid = errors.New("editor: faq item index out of range")

	// ErrFAQFieldInvalid indicates an unknown FAQ item field.
	ErrFAQFieldInvalid = errors.New("editor: unknown faq item field")
)

// genericSaveError is shown when the save failure carries no message the
// editor recognizes.
const genericSaveError = "unable to save page, please try again"

// FAQField addresses one side of a question/answer pair.
type FAQField string

const (
	FAQQuestion FAQField = "question"
	FAQAnswer   FAQField = "answer"
)

// PageUpdate is a partial edit to the working page record. Nil fields are
// left unchanged. For the optional metadata fields an empty string clears the
// stored value rather than persisting an empty override.
type PageUpdate struct {
	Slug        *string
	Title       *string
	Description *string
	Body        *string
	Status      *string

	ShowInMainNav   *bool
	ShowInFooterNav *bool
	NavOrder        *int
	ParentSlug      *string

	MetaTitle       *string
	MetaDescription *string
	CanonicalURL    *string
	OGTitle         *string
	OGDescription   *string
	OGImage         *string

	SchemaType *pages.SchemaType
}

// Session is the single source of truth for all edits to one page during an
// editing session. It keeps a working copy of the record plus, for designed
// pages, a working slot override map seeded from the persisted overrides,
// never from defaults. A session is owned by one editor and is not safe for
// concurrent use.
type Session struct {
	svc      pages.Service
	registry slots.Registry
	preview  *PreviewBuilder
	logger   interfaces.Logger

	page    *pages.Page
	config  *slots.SlotConfiguration
	working map[string]pages.SlotValue

	saved     bool
	saveError string
	nonce     int
}

// SessionOption customises session construction.
type SessionOption func(*Session)

// WithPreviewBuilder wires the live preview URL builder.
func WithPreviewBuilder(builder *PreviewBuilder) SessionOption {
	return func(s *Session) {
		s.preview = builder
	}
}

// WithLogger wires the module logger.
func WithLogger(logger interfaces.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession loads the page and opens an editing session over it.
func NewSession(ctx context.Context, svc pages.Service, registry slots.Registry, pageID uuid.UUID, opts ...SessionOption) (*Session, error) {
	if svc == nil {
		return nil, errors.New("editor: page service is required")
	}

	page, err := svc.Get(ctx, pageID)
	if err != nil {
		return nil, err
	}

	s := &Session{
		svc:      svc,
		registry: registry,
		logger:   logging.NoOp(),
		page:     page,
	}
	for _, opt := range opts {
		opt(s)
	}

	if registry != nil {
		if config, ok := registry.Config(page.Slug); ok {
			s.config = config
			s.working = pages.CloneSlotValues(page.ContentSlots)
			if s.working == nil {
				s.working = make(map[string]pages.SlotValue)
			}
		}
	}
	return s, nil
}

// Designed reports whether the page has a slot configuration.
func (s *Session) Designed() bool {
	return s.config != nil
}

// Config returns the slot configuration, or nil for generic pages.
func (s *Session) Config() *slots.SlotConfiguration {
	return s.config.Clone()
}

// Page returns a copy of the working record.
func (s *Session) Page() *pages.Page {
	return s.page.Clone()
}

// WorkingSlots returns a copy of the working slot override map.
func (s *Session) WorkingSlots() map[string]pages.SlotValue {
	return pages.CloneSlotValues(s.working)
}

// Saved reports whether the last save succeeded and no edits followed.
func (s *Session) Saved() bool {
	return s.saved
}

// SaveError returns the message of the last failed save, empty otherwise.
func (s *Session) SaveError() string {
	return s.saveError
}

// PreviewNonce returns the cache-busting counter, bumped on successful saves.
func (s *Session) PreviewNonce() int {
	return s.nonce
}

// PreviewURL builds the address the preview frame should load. It reflects
// persisted state only, one save cycle behind unsaved edits.
func (s *Session) PreviewURL() (string, error) {
	if s.preview == nil {
		return "", errors.New("editor: preview not configured")
	}
	return s.preview.URL(s.page.Slug, s.nonce)
}

// UpdatePage shallow-merges the partial edit into the working record and
// clears any prior save indicator.
func (s *Session) UpdatePage(update PageUpdate) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setOptional := func(dst **string, src *string) {
		if src == nil {
			return
		}
		if *src == "" {
			*dst = nil
			return
		}
		value := *src
		*dst = &value
	}

	setString(&s.page.Slug, update.Slug)
	setString(&s.page.Title, update.Title)
	setString(&s.page.Description, update.Description)
	setString(&s.page.Body, update.Body)
	setString(&s.page.Status, update.Status)

	if update.ShowInMainNav != nil {
		s.page.ShowInMainNav = *update.ShowInMainNav
	}
	if update.ShowInFooterNav != nil {
		s.page.ShowInFooterNav = *update.ShowInFooterNav
	}
	if update.NavOrder != nil {
		s.page.NavOrder = *update.NavOrder
	}
	setOptional(&s.page.ParentSlug, update.ParentSlug)

	setOptional(&s.page.MetaTitle, update.MetaTitle)
	setOptional(&s.page.MetaDescription, update.MetaDescription)
	setOptional(&s.page.CanonicalURL, update.CanonicalURL)
	setOptional(&s.page.OGTitle, update.OGTitle)
	setOptional(&s.page.OGDescription, update.OGDescription)
	setOptional(&s.page.OGImage, update.OGImage)

	if update.SchemaType != nil {
		s.page.SchemaType = *update.SchemaType
	}

	s.touch()
}

// UpdateSlot sets one entry in the working slot override map.
func (s *Session) UpdateSlot(slotID string, value pages.SlotValue) error {
	if s.config == nil {
		return ErrNotDesigned
	}
	s.working[slotID] = value.Clone()
	s.touch()
	return nil
}

// ClearSlot removes an override so the slot falls back to its default.
func (s *Session) ClearSlot(slotID string) error {
	if s.config == nil {
		return ErrNotDesigned
	}
	delete(s.working, slotID)
	s.touch()
	return nil
}

// SlotValue resolves the current value for a slot: the working override when
// present, else the slot's default. It never comes back empty-handed.
func (s *Session) SlotValue(slot slots.ContentSlot) pages.SlotValue {
	if value, ok := s.working[slot.ID]; ok {
		return value.Clone()
	}
	if slot.Type == slots.TypeList {
		return pages.ListValue(slot.DefaultList...)
	}
	return pages.StringValue(slot.DefaultValue)
}

// AddFAQItem appends an empty question/answer pair.
func (s *Session) AddFAQItem() {
	s.page.FAQItems = append(s.page.FAQItems, pages.FAQItem{})
	s.touch()
}

// UpdateFAQItem sets one field of the item at the given index.
func (s *Session) UpdateFAQItem(index int, field FAQField, value string) error {
	if index < 0 || index >= len(s.page.FAQItems) {
		return ErrFAQIndexInvalid
	}
	switch field {
	case FAQQuestion:
		s.page.FAQItems[index].Question = value
	case FAQAnswer:
		s.page.FAQItems[index].Answer = value
	default:
		return ErrFAQFieldInvalid
	}
	s.touch()
	return nil
}

// RemoveFAQItem removes the item at the given index. Identity is positional:
// items above the removed index shift down by one.
func (s *Session) RemoveFAQItem(index int) error {
	if index < 0 || index >= len(s.page.FAQItems) {
		return ErrFAQIndexInvalid
	}
	s.page.FAQItems = append(s.page.FAQItems[:index], s.page.FAQItems[index+1:]...)
	s.touch()
	return nil
}

// Save submits the complete working record. ContentSlots carries the working
// override map for designed pages and nil otherwise. On success the session
// resyncs from the stored record and bumps the preview nonce; on failure the
// working state is left untouched and retry is simply calling Save again.
// Overlapping saves are not prevented, the last response wins.
func (s *Session) Save(ctx context.Context) error {
	req := pages.UpdatePageRequest{
		ID:         s.page.ID,
		PageFields: s.page.Fields(),
	}
	if s.config != nil {
		req.ContentSlots = pages.CloneSlotValues(s.working)
	} else {
		req.ContentSlots = nil
	}

	updated, err := s.svc.Update(ctx, req)
	if err != nil {
		s.saved = false
		s.saveError = saveErrorMessage(err)
		s.logger.Error("page save failed", "page_id", s.page.ID.String(), "error", err)
		return err
	}

	s.page = updated
	if s.config != nil {
		s.working = pages.CloneSlotValues(updated.ContentSlots)
		if s.working == nil {
			s.working = make(map[string]pages.SlotValue)
		}
	}
	s.saved = true
	s.saveError = ""
	s.nonce++
	s.logger.Info("page saved", "page_id", updated.ID.String(), "slug", updated.Slug, "preview_nonce", s.nonce)
	return nil
}

// touch marks the session dirty after an edit so a stale success indicator
// is never shown.
func (s *Session) touch() {
	s.saved = false
	s.saveError = ""
}

// saveErrorMessage maps a save failure to the message shown next to the save
// control. Validation failures surface their own text, anything else falls
// back to a generic retry prompt.
func saveErrorMessage(err error) string {
	known := []error{
		pages.ErrSlugExists,
		pages.ErrSlugRequired,
		pages.ErrSlugInvalid,
		pages.ErrTitleRequired,
		pages.ErrStatusInvalid,
		pages.ErrSchemaTypeInvalid,
		pages.ErrPageNotFound,
	}
	for _, sentinel := range known {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return genericSaveError
}
