package resources

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/looprevenue/loop-cms/narration"
)

// Type categorises a resource entry.
type Type string

const (
	TypePage    Type = "page"
	TypeBlog    Type = "blog"
	TypePodcast Type = "podcast"
)

// Valid reports whether the type is supported. The empty value is valid and
// means "no type filter".
func (t Type) Valid() bool {
	switch t {
	case "", TypePage, TypeBlog, TypePodcast:
		return true
	default:
		return false
	}
}

// Summary is the unified listing entry for a resource, whatever its kind.
type Summary struct {
	ID       uuid.UUID `json:"id"`
	Type     Type      `json:"type"`
	Slug     string    `json:"slug"`
	Title    string    `json:"title"`
	Category string    `json:"category,omitempty"`
	Summary  string    `json:"summary,omitempty"`
	BodyHTML string    `json:"body_html,omitempty"`

	// Audio carries narration metadata for podcast entries and narrated pages.
	Audio *narration.Track `json:"audio,omitempty"`

	PublishedAt time.Time `json:"published_at,omitempty"`
}

// Clone returns an independent copy of the summary.
func (s Summary) Clone() Summary {
	copied := s
	if s.Audio != nil {
		audio := *s.Audio
		copied.Audio = &audio
	}
	return copied
}

// Query filters a resource listing. Zero values mean "no filter"; Limit zero
// falls back to the configured default.
type Query struct {
	Type     Type
	Category string
	Search   string
	Limit    int
}

// Service lists resources for the public site. Listing never fails: internal
// errors are logged and degrade to an empty result set.
type Service interface {
	List(ctx context.Context, query Query) []Summary
}
