package slots

import (
	"strings"
	"sync"
)

// StaticRegistry is an in-memory slot configuration lookup keyed by page slug.
// Registration happens at wiring time; lookups afterwards are read-only, so a
// plain RWMutex keeps concurrent admin reads safe.
type StaticRegistry struct {
	mu      sync.RWMutex
	configs map[string]*SlotConfiguration
	order   []string
}

// NewStaticRegistry constructs an empty registry.
func NewStaticRegistry() *StaticRegistry {
	return &StaticRegistry{configs: make(map[string]*SlotConfiguration)}
}

// NewSiteRegistry constructs a registry seeded with the built-in marketing
// site configurations.
func NewSiteRegistry() *StaticRegistry {
	reg := NewStaticRegistry()
	for slug, cfg := range siteConfigurations() {
		reg.Register(slug, cfg)
	}
	return reg
}

// Register stores a configuration for the given slug, replacing any previous
// entry. Blank slugs and nil configurations are ignored.
func (r *StaticRegistry) Register(slug string, cfg *SlotConfiguration) {
	key := normalizeSlug(slug)
	if key == "" || cfg == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.configs[key]; !exists {
		r.order = append(r.order, key)
	}
	r.configs[key] = cfg.Clone()
}

// Config returns the configuration for a slug. The second return value is
// false when the page has no slot configuration, which callers must treat as
// "use the generic body editor", not as an error.
func (r *StaticRegistry) Config(slug string) (*SlotConfiguration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.configs[normalizeSlug(slug)]
	if !ok {
		return nil, false
	}
	return cfg.Clone(), true
}

// Slugs lists registered slugs in registration order.
func (r *StaticRegistry) Slugs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

func normalizeSlug(slug string) string {
	return strings.Trim(strings.TrimSpace(slug), "/")
}

var _ Registry = (*StaticRegistry)(nil)
