package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/looprevenue/loop-cms/internal/editor"
	"github.com/looprevenue/loop-cms/internal/logging"
	"github.com/looprevenue/loop-cms/pages"
	"github.com/looprevenue/loop-cms/pkg/interfaces"
	"github.com/looprevenue/loop-cms/resources"
	"github.com/looprevenue/loop-cms/slots"
)

// AdminAPI registers the content editing endpoints: page CRUD and save, slot
// configurations, preview URLs, and the public resource listing.
type AdminAPI struct {
	basePath  string
	pages     pages.Service
	registry  slots.Registry
	resources resources.Service
	preview   *editor.PreviewBuilder
	logger    interfaces.Logger
}

// AdminOption mutates the AdminAPI configuration.
type AdminOption func(*AdminAPI)

// NewAdminAPI constructs an AdminAPI instance.
func NewAdminAPI(opts ...AdminOption) *AdminAPI {
	api := &AdminAPI{
		basePath: "/admin/api",
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the base API path (defaults to "/admin/api").
func WithBasePath(path string) AdminOption {
	return func(api *AdminAPI) {
		if api == nil {
			return
		}
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithPageService wires the page service.
func WithPageService(service pages.Service) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.pages = service
		}
	}
}

// WithSlotRegistry wires the slot configuration registry.
func WithSlotRegistry(registry slots.Registry) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.registry = registry
		}
	}
}

// WithResourceService wires the resource listing service.
func WithResourceService(service resources.Service) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.resources = service
		}
	}
}

// WithPreviewBuilder wires the live preview URL builder.
func WithPreviewBuilder(builder *editor.PreviewBuilder) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.preview = builder
		}
	}
}

// WithLogger wires the module logger.
func WithLogger(logger interfaces.Logger) AdminOption {
	return func(api *AdminAPI) {
		if api != nil && logger != nil {
			api.logger = logger
		}
	}
}

// Register attaches the endpoints to the provided mux.
func (api *AdminAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api == nil {
		return fmt.Errorf("http: admin api is nil")
	}

	base := joinPath(api.basePath, "")

	api.registerPageRoutes(mux, base)
	api.registerSlotRoutes(mux, base)
	api.registerResourceRoutes(mux, base)

	return nil
}
