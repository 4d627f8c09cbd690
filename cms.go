package loopcms

import (
	"context"

	"github.com/google/uuid"

	"github.com/looprevenue/loop-cms/internal/di"
	"github.com/looprevenue/loop-cms/internal/editor"
	adminhttp "github.com/looprevenue/loop-cms/internal/http"
	internalresources "github.com/looprevenue/loop-cms/internal/resources"
	internalrichtext "github.com/looprevenue/loop-cms/internal/richtext"
	internalslots "github.com/looprevenue/loop-cms/internal/slots"
	"github.com/looprevenue/loop-cms/narration"
	"github.com/looprevenue/loop-cms/pages"
	"github.com/looprevenue/loop-cms/resources"
)

// PageService exports the pages service contract.
type PageService = pages.Service

// ResourceService exports the resource listing contract.
type ResourceService = resources.Service

// NarrationContext exports the shared audio context contract.
type NarrationContext = narration.Context

// SlotRegistry exports the slot configuration registry used by the editor.
type SlotRegistry = *internalslots.StaticRegistry

// ResourceImporter exports the markdown catalog importer.
type ResourceImporter = *internalresources.Importer

// EditorSession exports the page editor session type.
type EditorSession = editor.Session

// RichTextEditor exports the structured rich text editor opened by
// EditorSession.RichTextEditor.
type RichTextEditor = internalrichtext.Editor

// PreviewBuilder exports the preview URL builder.
type PreviewBuilder = editor.PreviewBuilder

// AdminAPI exports the HTTP admin surface.
type AdminAPI = adminhttp.AdminAPI

// Module is the top level content runtime façade.
type Module struct {
	container *di.Container
}

// New constructs the module from configuration plus optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Module{container: di.NewContainer(cfg, opts...)}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Pages returns the configured page service.
func (m *Module) Pages() PageService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.PageService()
}

// Slots returns the slot configuration registry.
func (m *Module) Slots() SlotRegistry {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.SlotRegistry()
}

// Resources returns the resource listing service when the feature is enabled.
func (m *Module) Resources() ResourceService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ResourceService()
}

// Importer returns the resource catalog importer when the feature is enabled.
func (m *Module) Importer() ResourceImporter {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ResourceImporter()
}

// Narration returns the shared playback context when the feature is enabled.
func (m *Module) Narration() NarrationContext {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.NarrationContext()
}

// Preview returns the preview URL builder when preview is enabled.
func (m *Module) Preview() *PreviewBuilder {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.PreviewBuilder()
}

// Admin returns the HTTP admin surface wired to the module services.
func (m *Module) Admin() *AdminAPI {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.AdminAPI()
}

// OpenEditor starts an editor session for the page with the given ID.
func (m *Module) OpenEditor(ctx context.Context, pageID uuid.UUID) (*EditorSession, error) {
	return m.container.EditorSession(ctx, pageID)
}
