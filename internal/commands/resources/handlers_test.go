package resourcescmd_test

import (
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	resourcescmd "github.com/looprevenue/loop-cms/internal/commands/resources"
	"github.com/looprevenue/loop-cms/internal/resources"
)

type stubImporter struct {
	dir    string
	result resources.ImportResult
	err    error
}

func (s *stubImporter) ImportDirectory(_ context.Context, dir string) (resources.ImportResult, error) {
	s.dir = dir
	return s.result, s.err
}

func TestReindexHandlerExecutes(t *testing.T) {
	importer := &stubImporter{result: resources.ImportResult{Indexed: 3}}
	handler := resourcescmd.NewReindexHandler(importer, nil, resourcescmd.FeatureGates{})

	if err := handler.Execute(context.Background(), resourcescmd.ReindexCommand{Directory: "content"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if importer.dir != "content" {
		t.Fatalf("expected importer invoked with directory, got %q", importer.dir)
	}
}

func TestReindexHandlerValidatesDirectory(t *testing.T) {
	importer := &stubImporter{}
	handler := resourcescmd.NewReindexHandler(importer, nil, resourcescmd.FeatureGates{})

	err := handler.Execute(context.Background(), resourcescmd.ReindexCommand{Directory: "  "})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if importer.dir != "" {
		t.Fatal("expected importer not invoked on invalid message")
	}
}

func TestReindexHandlerHonoursFeatureGate(t *testing.T) {
	importer := &stubImporter{}
	handler := resourcescmd.NewReindexHandler(importer, nil, resourcescmd.FeatureGates{
		ResourcesEnabled: func() bool { return false },
	})

	err := handler.Execute(context.Background(), resourcescmd.ReindexCommand{Directory: "content"})
	if !errors.Is(err, resourcescmd.ErrResourcesFeatureDisabled) {
		t.Fatalf("expected ErrResourcesFeatureDisabled got %v", err)
	}
}

func TestReindexHandlerWrapsImportFailure(t *testing.T) {
	importer := &stubImporter{err: errors.New("boom")}
	handler := resourcescmd.NewReindexHandler(importer, nil, resourcescmd.FeatureGates{})

	err := handler.Execute(context.Background(), resourcescmd.ReindexCommand{Directory: "content"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}
