package pages

import (
	"context"

	"github.com/google/uuid"
)

// Service describes page management capabilities. Update is a full-record
// save: the caller submits every field and the stored record is replaced
// wholesale, so concurrent editors resolve as last write wins.
type Service interface {
	Create(ctx context.Context, req CreatePageRequest) (*Page, error)
	Get(ctx context.Context, id uuid.UUID) (*Page, error)
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	List(ctx context.Context) ([]*Page, error)
	Update(ctx context.Context, req UpdatePageRequest) (*Page, error)
	Delete(ctx context.Context, req DeletePageRequest) error
}

// PageFields carries the editable payload shared by create and save requests.
type PageFields struct {
	Slug        string
	Title       string
	Description string
	Body        string
	Status      string

	ShowInMainNav   bool
	ShowInFooterNav bool
	NavOrder        int
	ParentSlug      *string

	MetaTitle       *string
	MetaDescription *string
	CanonicalURL    *string
	OGTitle         *string
	OGDescription   *string
	OGImage         *string

	SchemaType SchemaType
	FAQItems   []FAQItem

	// ContentSlots must be nil for pages without a slot configuration.
	ContentSlots map[string]SlotValue
}

// Fields extracts the editable payload from a page, for resubmitting a
// full-record save built on the current state.
func (p *Page) Fields() PageFields {
	copied := p.Clone()
	return PageFields{
		Slug:            copied.Slug,
		Title:           copied.Title,
		Description:     copied.Description,
		Body:            copied.Body,
		Status:          copied.Status,
		ShowInMainNav:   copied.ShowInMainNav,
		ShowInFooterNav: copied.ShowInFooterNav,
		NavOrder:        copied.NavOrder,
		ParentSlug:      copied.ParentSlug,
		MetaTitle:       copied.MetaTitle,
		MetaDescription: copied.MetaDescription,
		CanonicalURL:    copied.CanonicalURL,
		OGTitle:         copied.OGTitle,
		OGDescription:   copied.OGDescription,
		OGImage:         copied.OGImage,
		SchemaType:      copied.SchemaType,
		FAQItems:        copied.FAQItems,
		ContentSlots:    copied.ContentSlots,
	}
}

// CreatePageRequest captures the payload required to create a page.
type CreatePageRequest struct {
	ID uuid.UUID
	PageFields
}

// UpdatePageRequest captures the full-record save payload for an existing page.
type UpdatePageRequest struct {
	ID uuid.UUID
	PageFields
}

// DeletePageRequest captures the information required to delete a page.
type DeletePageRequest struct {
	ID         uuid.UUID
	HardDelete bool
}
