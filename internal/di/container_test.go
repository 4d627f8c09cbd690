package di_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/looprevenue/loop-cms/internal/di"
	"github.com/looprevenue/loop-cms/internal/runtimeconfig"
	"github.com/looprevenue/loop-cms/pages"
)

func TestNewContainerDefaults(t *testing.T) {
	c := di.NewContainer(runtimeconfig.DefaultConfig())

	if c.PageService() == nil {
		t.Fatal("expected page service")
	}
	if c.SlotRegistry() == nil {
		t.Fatal("expected slot registry")
	}
	if c.ResourceService() == nil || c.ResourceImporter() == nil {
		t.Fatal("expected resource bindings with resources feature enabled")
	}
	if c.NarrationContext() == nil {
		t.Fatal("expected narration context with narration feature enabled")
	}
	if c.PreviewBuilder() == nil {
		t.Fatal("expected preview builder with preview enabled")
	}

	if _, ok := c.SlotRegistry().Config("overview/stages"); !ok {
		t.Fatal("expected built-in site registry entries")
	}
}

func TestNewContainerFeatureGates(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Resources = false
	cfg.Features.Narration = false
	cfg.Preview.Enabled = false

	c := di.NewContainer(cfg)

	if c.ResourceService() != nil || c.ResourceImporter() != nil {
		t.Fatal("expected resource bindings to be nil when disabled")
	}
	if c.NarrationContext() != nil {
		t.Fatal("expected narration context to be nil when disabled")
	}
	if c.PreviewBuilder() != nil {
		t.Fatal("expected preview builder to be nil when disabled")
	}
}

func TestNewContainerPanicsOnInvalidConfig(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on invalid config")
		}
	}()

	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Provider = "mongodb"
	di.NewContainer(cfg)
}

func TestContainerAdminAPIRegisters(t *testing.T) {
	c := di.NewContainer(runtimeconfig.DefaultConfig())

	api := c.AdminAPI()
	if api == nil {
		t.Fatal("expected admin API")
	}
	if api != c.AdminAPI() {
		t.Fatal("expected admin API to be memoised")
	}

	mux := http.NewServeMux()
	if err := api.Register(mux); err != nil {
		t.Fatalf("register: %v", err)
	}
}

func TestContainerEditorSession(t *testing.T) {
	c := di.NewContainer(runtimeconfig.DefaultConfig())
	ctx := context.Background()

	created, err := c.PageService().Create(ctx, pages.CreatePageRequest{
		PageFields: pages.PageFields{
			Slug:   "overview/stages",
			Title:  "The Four Stages",
			Status: pages.StatusDraft,
		},
	})
	if err != nil {
		t.Fatalf("create page: %v", err)
	}

	session, err := c.EditorSession(ctx, created.ID)
	if err != nil {
		t.Fatalf("editor session: %v", err)
	}
	if !session.Designed() {
		t.Fatal("expected designed editor for configured slug")
	}
	if _, err := session.PreviewURL(); err != nil {
		t.Fatalf("preview url: %v", err)
	}
}
