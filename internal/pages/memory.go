package pages

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryPageRepository is an in-memory page store for scaffolding/tests.
type MemoryPageRepository struct {
	mu        sync.RWMutex
	pages     map[string]*Page
	slugIndex map[string]string
}

// NewMemoryPageRepository constructs the repository.
func NewMemoryPageRepository() *MemoryPageRepository {
	return &MemoryPageRepository{
		pages:     make(map[string]*Page),
		slugIndex: make(map[string]string),
	}
}

// Create inserts the supplied page.
func (m *MemoryPageRepository) Create(_ context.Context, record *Page) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := record.Clone()
	m.pages[copied.ID.String()] = copied
	m.slugIndex[slugKey(copied.Slug)] = copied.ID.String()
	return copied.Clone(), nil
}

// GetByID retrieves a page by identifier.
func (m *MemoryPageRepository) GetByID(_ context.Context, id uuid.UUID) (*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	page, ok := m.pages[id.String()]
	if !ok {
		return nil, &PageNotFoundError{Key: id.String()}
	}
	return page.Clone(), nil
}

// GetBySlug retrieves a page by slug.
func (m *MemoryPageRepository) GetBySlug(_ context.Context, slug string) (*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.slugIndex[slugKey(slug)]
	if !ok {
		return nil, &PageNotFoundError{Key: slug}
	}
	return m.pages[id].Clone(), nil
}

// List returns every page.
func (m *MemoryPageRepository) List(_ context.Context) ([]*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Page, 0, len(m.pages))
	for _, record := range m.pages {
		if record == nil {
			continue
		}
		out = append(out, record.Clone())
	}
	return out, nil
}

// Update replaces the stored record wholesale. Save is a full-record write,
// so no column subset is preserved from the previous state.
func (m *MemoryPageRepository) Update(_ context.Context, record *Page) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.pages[record.ID.String()]
	if !ok {
		return nil, &PageNotFoundError{Key: record.ID.String()}
	}

	if current.Slug != record.Slug {
		delete(m.slugIndex, slugKey(current.Slug))
	}

	copied := record.Clone()
	m.pages[copied.ID.String()] = copied
	m.slugIndex[slugKey(copied.Slug)] = copied.ID.String()
	return copied.Clone(), nil
}

// Delete removes the page when hard delete is requested.
func (m *MemoryPageRepository) Delete(_ context.Context, id uuid.UUID, hardDelete bool) error {
	if !hardDelete {
		return ErrSoftDeleteUnsupported
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.pages[id.String()]
	if !ok {
		return &PageNotFoundError{Key: id.String()}
	}

	delete(m.pages, id.String())
	if slug := record.Slug; slug != "" {
		delete(m.slugIndex, slugKey(slug))
	}
	return nil
}

func slugKey(slug string) string {
	return strings.Trim(strings.TrimSpace(slug), "/")
}

var _ PageRepository = (*MemoryPageRepository)(nil)
