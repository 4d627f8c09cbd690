package http

import (
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/looprevenue/loop-cms/pages"
)

// pagePayload is the full-record body shared by create and save. Save is
// wholesale: every field the caller omits is persisted at its zero value.
type pagePayload struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Body        string `json:"body,omitempty"`
	Status      string `json:"status,omitempty"`

	ShowInMainNav   bool    `json:"show_in_main_nav,omitempty"`
	ShowInFooterNav bool    `json:"show_in_footer_nav,omitempty"`
	NavOrder        int     `json:"nav_order,omitempty"`
	ParentSlug      *string `json:"parent_slug,omitempty"`

	MetaTitle       *string `json:"meta_title,omitempty"`
	MetaDescription *string `json:"meta_description,omitempty"`
	CanonicalURL    *string `json:"canonical_url,omitempty"`
	OGTitle         *string `json:"og_title,omitempty"`
	OGDescription   *string `json:"og_description,omitempty"`
	OGImage         *string `json:"og_image,omitempty"`

	SchemaType   string                     `json:"schema_type,omitempty"`
	FAQItems     []pages.FAQItem            `json:"faq_items,omitempty"`
	ContentSlots map[string]pages.SlotValue `json:"content_slots,omitempty"`
}

func (p pagePayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Slug, validation.Required),
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Status, validation.In("", pages.StatusDraft, pages.StatusPublished)),
		validation.Field(&p.NavOrder, validation.Min(0)),
	)
}

func (p pagePayload) toFields() pages.PageFields {
	return pages.PageFields{
		Slug:            p.Slug,
		Title:           p.Title,
		Description:     p.Description,
		Body:            p.Body,
		Status:          p.Status,
		ShowInMainNav:   p.ShowInMainNav,
		ShowInFooterNav: p.ShowInFooterNav,
		NavOrder:        p.NavOrder,
		ParentSlug:      p.ParentSlug,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		CanonicalURL:    p.CanonicalURL,
		OGTitle:         p.OGTitle,
		OGDescription:   p.OGDescription,
		OGImage:         p.OGImage,
		SchemaType:      pages.SchemaType(p.SchemaType),
		FAQItems:        p.FAQItems,
		ContentSlots:    p.ContentSlots,
	}
}

type previewResponse struct {
	URL string `json:"url"`
}

func (api *AdminAPI) registerPageRoutes(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	root := joinPath(base, "pages")
	mux.HandleFunc("GET "+root, api.handlePageList)
	mux.HandleFunc("POST "+root, api.handlePageCreate)
	mux.HandleFunc("GET "+root+"/{id}", api.handlePageGet)
	mux.HandleFunc("PUT "+root+"/{id}", api.handlePageSave)
	mux.HandleFunc("DELETE "+root+"/{id}", api.handlePageDelete)
	mux.HandleFunc("GET "+root+"/{id}/preview", api.handlePagePreview)
}

func (api *AdminAPI) handlePageList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.pages == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	list, err := api.pages.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (api *AdminAPI) handlePageGet(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.pages == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	record, err := api.pages.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handlePageCreate(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.pages == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload pagePayload
	if err := decodeJSON(r, &payload); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	if err := payload.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	created, err := api.pages.Create(r.Context(), pages.CreatePageRequest{
		PageFields: payload.toFields(),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// handlePageSave is the full-record save behind the editor's save button.
func (api *AdminAPI) handlePageSave(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.pages == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	var payload pagePayload
	if err := decodeJSON(r, &payload); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	if err := payload.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	updated, err := api.pages.Update(r.Context(), pages.UpdatePageRequest{
		ID:         id,
		PageFields: payload.toFields(),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (api *AdminAPI) handlePageDelete(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.pages == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	req := pages.DeletePageRequest{
		ID:         id,
		HardDelete: parseBoolQuery(r.URL.Query().Get("hard_delete"), false),
	}
	if err := api.pages.Delete(r.Context(), req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// handlePagePreview returns the preview frame address for the persisted page.
// The nonce comes from the editor session via the "v" query parameter.
func (api *AdminAPI) handlePagePreview(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.pages == nil || api.preview == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	record, err := api.pages.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	url, err := api.preview.URL(record.Slug, parseIntQuery(r.URL.Query().Get("v"), 0))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, previewResponse{URL: url})
}
