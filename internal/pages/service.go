package pages

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goslug "github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/looprevenue/loop-cms/internal/logging"
	"github.com/looprevenue/loop-cms/pkg/interfaces"
)

// IDGenerator produces identities for new pages.
type IDGenerator func() uuid.UUID

// ServiceOption customises the page service.
type ServiceOption func(*service)

// WithClock overrides the timestamp source.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides the identity source.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLogger wires the module logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	repo   PageRepository
	now    func() time.Time
	id     IDGenerator
	logger interfaces.Logger
}

// NewService constructs the page service over the supplied repository.
func NewService(repo PageRepository, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		now:    time.Now,
		id:     uuid.New,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, req CreatePageRequest) (*Page, error) {
	fields, err := normalizeFields(req.PageFields)
	if err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetBySlug(ctx, fields.Slug); err == nil && existing != nil {
		return nil, &SlugExistsError{Slug: fields.Slug}
	} else if err != nil && !errors.Is(err, ErrPageNotFound) {
		return nil, err
	}

	now := s.now()
	record := &Page{
		ID:        req.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if record.ID == uuid.Nil {
		record.ID = s.id()
	}
	applyFields(record, fields)

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("page created", "page_id", created.ID.String(), "slug", created.Slug)
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Page, error) {
	if id == uuid.Nil {
		return nil, ErrPageRequired
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Page, error) {
	trimmed := strings.Trim(strings.TrimSpace(slug), "/")
	if trimmed == "" {
		return nil, ErrSlugRequired
	}
	return s.repo.GetBySlug(ctx, trimmed)
}

func (s *service) List(ctx context.Context) ([]*Page, error) {
	return s.repo.List(ctx)
}

// Update performs the full-record save. The stored record is replaced with
// the submitted fields wholesale; there is no merge with the previous state
// and no conflict detection, so concurrent saves resolve last write wins.
func (s *service) Update(ctx context.Context, req UpdatePageRequest) (*Page, error) {
	if req.ID == uuid.Nil {
		return nil, ErrPageRequired
	}

	fields, err := normalizeFields(req.PageFields)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if current.Slug != fields.Slug {
		if existing, err := s.repo.GetBySlug(ctx, fields.Slug); err == nil && existing != nil && existing.ID != req.ID {
			return nil, &SlugExistsError{Slug: fields.Slug}
		} else if err != nil && !errors.Is(err, ErrPageNotFound) {
			return nil, err
		}
	}

	record := &Page{
		ID:        current.ID,
		CreatedAt: current.CreatedAt,
		UpdatedAt: s.now(),
	}
	applyFields(record, fields)

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("page saved", "page_id", updated.ID.String(), "slug", updated.Slug)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, req DeletePageRequest) error {
	if req.ID == uuid.Nil {
		return ErrPageRequired
	}
	if err := s.repo.Delete(ctx, req.ID, req.HardDelete); err != nil {
		return err
	}
	s.logger.Info("page deleted", "page_id", req.ID.String())
	return nil
}

// normalizeFields validates and canonicalizes the submitted payload. Slugs
// may contain path separators ("overview/stages"); each segment must satisfy
// the go-slug rules independently.
func normalizeFields(fields PageFields) (PageFields, error) {
	slug := strings.Trim(strings.TrimSpace(fields.Slug), "/")
	if slug == "" {
		return fields, ErrSlugRequired
	}
	segments := strings.Split(slug, "/")
	for i, segment := range segments {
		if goslug.IsValid(segment) {
			segments[i] = segment
			continue
		}
		normalized, err := goslug.Normalize(segment)
		if err != nil || normalized == "" {
			return fields, fmt.Errorf("%w: %s", ErrSlugInvalid, segment)
		}
		segments[i] = normalized
	}
	fields.Slug = strings.Join(segments, "/")

	if strings.TrimSpace(fields.Title) == "" {
		return fields, ErrTitleRequired
	}

	switch fields.Status {
	case "":
		fields.Status = StatusDraft
	case StatusDraft, StatusPublished:
	default:
		return fields, ErrStatusInvalid
	}

	if !fields.SchemaType.Valid() {
		return fields, ErrSchemaTypeInvalid
	}

	return fields, nil
}

func applyFields(record *Page, fields PageFields) {
	record.Slug = fields.Slug
	record.Title = fields.Title
	record.Description = fields.Description
	record.Body = fields.Body
	record.Status = fields.Status
	record.ShowInMainNav = fields.ShowInMainNav
	record.ShowInFooterNav = fields.ShowInFooterNav
	record.NavOrder = fields.NavOrder
	record.ParentSlug = fields.ParentSlug
	record.MetaTitle = fields.MetaTitle
	record.MetaDescription = fields.MetaDescription
	record.CanonicalURL = fields.CanonicalURL
	record.OGTitle = fields.OGTitle
	record.OGDescription = fields.OGDescription
	record.OGImage = fields.OGImage
	record.SchemaType = fields.SchemaType
	record.FAQItems = CloneFAQItems(fields.FAQItems)
	record.ContentSlots = CloneSlotValues(fields.ContentSlots)
}
