package pages

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Page statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// SchemaType enumerates the structured-data types a page can advertise.
type SchemaType string

const (
	SchemaTypeWebPage SchemaType = "WebPage"
	SchemaTypeFAQPage SchemaType = "FAQPage"
	SchemaTypeArticle SchemaType = "Article"
	SchemaTypeService SchemaType = "Service"
	SchemaTypeHowTo   SchemaType = "HowTo"
)

// Valid reports whether the schema type is one of the supported values.
// The empty value is valid and means "no structured data".
func (s SchemaType) Valid() bool {
	switch s {
	case "", SchemaTypeWebPage, SchemaTypeFAQPage, SchemaTypeArticle, SchemaTypeService, SchemaTypeHowTo:
		return true
	default:
		return false
	}
}

// ImpliesFAQ reports whether FAQ items are meaningful for this schema type.
func (s SchemaType) ImpliesFAQ() bool {
	return s == SchemaTypeFAQPage
}

// FAQItem is a question/answer pair. Item identity is positional: there is no
// stable per-item ID, and removal shifts subsequent items down.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SlotValue holds the override for a single content slot: either a scalar
// string or, for list-typed slots, an ordered sequence of strings.
type SlotValue struct {
	Text string
	List []string
}

// StringValue constructs a scalar slot value.
func StringValue(text string) SlotValue {
	return SlotValue{Text: text}
}

// ListValue constructs a list slot value.
func ListValue(items ...string) SlotValue {
	return SlotValue{List: append([]string(nil), items...)}
}

// IsList reports whether the value carries a string list.
func (v SlotValue) IsList() bool {
	return v.List != nil
}

// MarshalJSON encodes scalar values as JSON strings and list values as arrays,
// matching the persisted content_slots shape.
func (v SlotValue) MarshalJSON() ([]byte, error) {
	if v.IsList() {
		return json.Marshal(v.List)
	}
	return json.Marshal(v.Text)
}

// UnmarshalJSON accepts either a JSON string or an array of strings.
func (v *SlotValue) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*v = SlotValue{Text: text}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	if list == nil {
		list = []string{}
	}
	*v = SlotValue{List: list}
	return nil
}

// Clone returns an independent copy of the slot value.
func (v SlotValue) Clone() SlotValue {
	if !v.IsList() {
		return v
	}
	return SlotValue{List: append([]string(nil), v.List...)}
}

// Page is the unit of editable content for the marketing site. A page is
// "designed" when its slug has a matching slot configuration; in that case
// Body is unused and ContentSlots is the sole free-text payload. ContentSlots
// stores explicit overrides only; defaults resolve at read time.
type Page struct {
	bun.BaseModel `bun:"table:pages,alias:pg"`

	ID          uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Slug        string    `bun:"slug,notnull" json:"slug"`
	Title       string    `bun:"title,notnull" json:"title"`
	Description string    `bun:"description" json:"description,omitempty"`
	Body        string    `bun:"body" json:"body,omitempty"`
	Status      string    `bun:"status,notnull" json:"status"`

	ShowInMainNav   bool    `bun:"show_in_main_nav" json:"show_in_main_nav"`
	ShowInFooterNav bool    `bun:"show_in_footer_nav" json:"show_in_footer_nav"`
	NavOrder        int     `bun:"nav_order" json:"nav_order"`
	ParentSlug      *string `bun:"parent_slug" json:"parent_slug,omitempty"`

	MetaTitle       *string `bun:"meta_title" json:"meta_title,omitempty"`
	MetaDescription *string `bun:"meta_description" json:"meta_description,omitempty"`
	CanonicalURL    *string `bun:"canonical_url" json:"canonical_url,omitempty"`
	OGTitle         *string `bun:"og_title" json:"og_title,omitempty"`
	OGDescription   *string `bun:"og_description" json:"og_description,omitempty"`
	OGImage         *string `bun:"og_image" json:"og_image,omitempty"`

	SchemaType   SchemaType           `bun:"schema_type" json:"schema_type,omitempty"`
	FAQItems     []FAQItem            `bun:"faq_items,type:jsonb" json:"faq_items,omitempty"`
	ContentSlots map[string]SlotValue `bun:"content_slots,type:jsonb" json:"content_slots,omitempty"`

	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Clone returns a deep copy of the page.
func (p *Page) Clone() *Page {
	if p == nil {
		return nil
	}
	copied := *p
	copied.ParentSlug = cloneStringPointer(p.ParentSlug)
	copied.MetaTitle = cloneStringPointer(p.MetaTitle)
	copied.MetaDescription = cloneStringPointer(p.MetaDescription)
	copied.CanonicalURL = cloneStringPointer(p.CanonicalURL)
	copied.OGTitle = cloneStringPointer(p.OGTitle)
	copied.OGDescription = cloneStringPointer(p.OGDescription)
	copied.OGImage = cloneStringPointer(p.OGImage)
	copied.FAQItems = CloneFAQItems(p.FAQItems)
	copied.ContentSlots = CloneSlotValues(p.ContentSlots)
	return &copied
}

// CloneFAQItems copies an FAQ list preserving order.
func CloneFAQItems(src []FAQItem) []FAQItem {
	if src == nil {
		return nil
	}
	return append([]FAQItem(nil), src...)
}

// CloneSlotValues copies a content slot override map.
func CloneSlotValues(src map[string]SlotValue) map[string]SlotValue {
	if src == nil {
		return nil
	}
	out := make(map[string]SlotValue, len(src))
	for id, value := range src {
		out[id] = value.Clone()
	}
	return out
}

func cloneStringPointer(src *string) *string {
	if src == nil {
		return nil
	}
	value := *src
	return &value
}
