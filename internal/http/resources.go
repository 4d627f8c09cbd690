package http

import (
	"net/http"

	"github.com/looprevenue/loop-cms/resources"
)

func (api *AdminAPI) registerResourceRoutes(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	mux.HandleFunc("GET "+joinPath(base, "resources"), api.handleResourceList)
}

// handleResourceList answers the public listing. It always returns 200 with
// an array; internal failures are logged by the service and degrade to an
// empty result set.
func (api *AdminAPI) handleResourceList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.resources == nil {
		writeJSON(w, http.StatusOK, []resources.Summary{})
		return
	}

	query := resources.Query{
		Type:     resources.Type(r.URL.Query().Get("type")),
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
		Limit:    parseIntQuery(r.URL.Query().Get("limit"), 0),
	}

	list := api.resources.List(r.Context(), query)
	if list == nil {
		list = []resources.Summary{}
	}
	writeJSON(w, http.StatusOK, list)
}
