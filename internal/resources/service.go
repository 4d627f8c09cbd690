package resources

import (
	"context"
	"strings"

	"github.com/looprevenue/loop-cms/internal/logging"
	"github.com/looprevenue/loop-cms/pkg/interfaces"
)

const (
	defaultListLimit = 20
	defaultMaxLimit  = 100
)

type service struct {
	store  *Store
	logger interfaces.Logger

	defaultLimit int
	maxLimit     int
}

// ServiceOption customises the resource service.
type ServiceOption func(*service)

// WithLogger wires the module logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLimits overrides the default and maximum listing sizes.
func WithLimits(defaultLimit, maxLimit int) ServiceOption {
	return func(s *service) {
		if defaultLimit > 0 {
			s.defaultLimit = defaultLimit
		}
		if maxLimit > 0 {
			s.maxLimit = maxLimit
		}
	}
}

// NewService constructs the listing service over the supplied index.
func NewService(store *Store, opts ...ServiceOption) Service {
	s := &service{
		store:        store,
		logger:       logging.NoOp(),
		defaultLimit: defaultListLimit,
		maxLimit:     defaultMaxLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List filters the index by type, category, and search text. Listing never
// fails: anything unusable degrades to an empty result with a log entry.
func (s *service) List(_ context.Context, query Query) []Summary {
	if s.store == nil {
		s.logger.Error("resource listing degraded", "reason", "index not configured")
		return []Summary{}
	}
	if !query.Type.Valid() {
		s.logger.Warn("resource listing degraded", "reason", "unknown type filter", "type", string(query.Type))
		return []Summary{}
	}

	limit := query.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	category := strings.ToLower(strings.TrimSpace(query.Category))
	search := strings.ToLower(strings.TrimSpace(query.Search))

	out := make([]Summary, 0, limit)
	for _, entry := range s.store.All() {
		if query.Type != "" && entry.Type != query.Type {
			continue
		}
		if category != "" && strings.ToLower(entry.Category) != category {
			continue
		}
		if search != "" && !matchesSearch(entry, search) {
			continue
		}
		out = append(out, entry)
		if len(out) == limit {
			break
		}
	}
	return out
}

func matchesSearch(entry Summary, search string) bool {
	return strings.Contains(strings.ToLower(entry.Title), search) ||
		strings.Contains(strings.ToLower(entry.Summary), search) ||
		strings.Contains(strings.ToLower(entry.Category), search)
}
