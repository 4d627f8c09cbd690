package editor

import (
	"fmt"
	"strconv"

	urlkit "github.com/goliatone/go-urlkit"
)

const (
	previewGroup = "preview"
	previewRoute = "page"
)

// PreviewOptions configures the preview URL builder.
type PreviewOptions struct {
	// BaseURL is the public origin of the rendered site.
	BaseURL string
	// FlagParam marks the request as a preview. Defaults to "preview".
	FlagParam string
	// NonceParam carries the cache-busting counter. Defaults to "v".
	NonceParam string
}

// PreviewBuilder builds preview addresses for saved pages. The preview always
// renders persisted state; it trails unsaved edits by one save cycle.
type PreviewBuilder struct {
	manager    *urlkit.RouteManager
	flagParam  string
	nonceParam string
}

// NewPreviewBuilder constructs a builder for the site's preview convention,
// "/{slug}?preview=true" plus a cache-busting nonce.
func NewPreviewBuilder(opts PreviewOptions) *PreviewBuilder {
	if opts.FlagParam == "" {
		opts.FlagParam = "preview"
	}
	if opts.NonceParam == "" {
		opts.NonceParam = "v"
	}

	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    previewGroup,
				BaseURL: opts.BaseURL,
				Paths: map[string]string{
					previewRoute: "/:slug",
				},
			},
		},
	})

	return &PreviewBuilder{
		manager:    manager,
		flagParam:  opts.FlagParam,
		nonceParam: opts.NonceParam,
	}
}

// URL builds the preview address for a page slug. The nonce is bumped by the
// session on every successful save to force the frame past any cached copy.
func (b *PreviewBuilder) URL(slug string, nonce int) (string, error) {
	if b == nil || b.manager == nil {
		return "", fmt.Errorf("editor: preview builder not configured")
	}

	url, err := b.manager.Group(previewGroup).
		Builder(previewRoute).
		WithParam("slug", slug).
		WithQuery(b.flagParam, "true").
		WithQuery(b.nonceParam, strconv.Itoa(nonce)).
		Build()
	if err != nil {
		return "", fmt.Errorf("editor: build preview url: %w", err)
	}
	return url, nil
}
