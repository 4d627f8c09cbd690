package pages

import publicpages "github.com/looprevenue/loop-cms/pages"

type (
	Page              = publicpages.Page
	FAQItem           = publicpages.FAQItem
	SlotValue         = publicpages.SlotValue
	SchemaType        = publicpages.SchemaType
	Service           = publicpages.Service
	PageFields        = publicpages.PageFields
	CreatePageRequest = publicpages.CreatePageRequest
	UpdatePageRequest = publicpages.UpdatePageRequest
	DeletePageRequest = publicpages.DeletePageRequest

	PageNotFoundError = publicpages.PageNotFoundError
	SlugExistsError   = publicpages.SlugExistsError
)

const (
	StatusDraft     = publicpages.StatusDraft
	StatusPublished = publicpages.StatusPublished
)

var (
	CloneFAQItems   = publicpages.CloneFAQItems
	CloneSlotValues = publicpages.CloneSlotValues
	StringValue     = publicpages.StringValue
)

var (
	ErrPageRequired          = publicpages.ErrPageRequired
	ErrSlugRequired          = publicpages.ErrSlugRequired
	ErrSlugInvalid           = publicpages.ErrSlugInvalid
	ErrSlugExists            = publicpages.ErrSlugExists
	ErrTitleRequired         = publicpages.ErrTitleRequired
	ErrStatusInvalid         = publicpages.ErrStatusInvalid
	ErrSchemaTypeInvalid     = publicpages.ErrSchemaTypeInvalid
	ErrPageNotFound          = publicpages.ErrPageNotFound
	ErrSoftDeleteUnsupported = publicpages.ErrSoftDeleteUnsupported
)
