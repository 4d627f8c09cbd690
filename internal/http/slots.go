package http

import (
	"net/http"
	"strings"

	"github.com/looprevenue/loop-cms/slots"
)

// slotConfigResponse is the grouped shape the editor renders: one block of
// slots per section, in declaration order.
type slotConfigResponse struct {
	Slug          string               `json:"slug"`
	ComponentPath string               `json:"component_path"`
	Sections      []slots.SectionGroup `json:"sections"`
}

type slotIndexResponse struct {
	Slugs []string `json:"slugs"`
}

func (api *AdminAPI) registerSlotRoutes(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	root := joinPath(base, "slots")
	mux.HandleFunc("GET "+root, api.handleSlotIndex)
	mux.HandleFunc("GET "+root+"/{slug...}", api.handleSlotConfig)
}

func (api *AdminAPI) handleSlotIndex(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.registry == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, slotIndexResponse{Slugs: api.registry.Slugs()})
}

// handleSlotConfig resolves the configuration for one page slug. Page slugs
// may contain path separators, so the route captures the full remainder.
// A 404 here is a valid outcome: the page uses the generic body editor.
func (api *AdminAPI) handleSlotConfig(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.registry == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	slug := strings.Trim(r.PathValue("slug"), "/")
	config, ok := api.registry.Config(slug)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: "no slot configuration for slug",
		})
		return
	}
	writeJSON(w, http.StatusOK, slotConfigResponse{
		Slug:          slug,
		ComponentPath: config.ComponentPath,
		Sections:      slots.GroupBySection(config.Slots),
	})
}
