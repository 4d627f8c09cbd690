package resources_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/looprevenue/loop-cms/internal/resources"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestImportDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "closing-the-loop.md", `---
title: Closing the Loop
type: blog
category: methodology
summary: How the four stages feed each other
date: 2026-02-01T00:00:00Z
---
# Closing the Loop

Body **text** here.
`)
	writeFile(t, dir, "stage-two.md", `---
title: Stage Two Deep Dive
type: podcast
audio_source: /audio/stage-two.mp3
---
Episode notes.
`)
	writeFile(t, dir, "draft.md", `---
title: Unfinished
draft: true
---
Not ready.
`)
	writeFile(t, dir, "notes.txt", "not markdown")

	store := resources.NewStore()
	importer := resources.NewImporter(store)

	result, err := importer.ImportDirectory(context.Background(), dir)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.Indexed != 2 || result.Skipped != 1 || len(result.Errors) != 0 {
		t.Fatalf("unexpected result %+v", result)
	}

	entries := store.All()
	bySlug := make(map[string]resources.Summary, len(entries))
	for _, entry := range entries {
		bySlug[entry.Slug] = entry
	}

	blog, ok := bySlug["closing-the-loop"]
	if !ok {
		t.Fatalf("expected blog entry, got %v", bySlug)
	}
	if blog.Type != resources.TypeBlog || blog.Category != "methodology" {
		t.Fatalf("unexpected blog entry %+v", blog)
	}
	if !strings.Contains(blog.BodyHTML, "<strong>text</strong>") {
		t.Fatalf("expected rendered markdown, got %q", blog.BodyHTML)
	}

	podcast := bySlug["stage-two"]
	if podcast.Audio == nil || podcast.Audio.Source != "/audio/stage-two.mp3" {
		t.Fatalf("expected audio metadata, got %+v", podcast.Audio)
	}
	if podcast.Audio.Title != "Stage Two Deep Dive" {
		t.Fatalf("expected audio title fallback, got %q", podcast.Audio.Title)
	}
}

func TestImportIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "page.md", `---
title: Workshop Templates
---
Content.
`)

	store := resources.NewStore()
	importer := resources.NewImporter(store)

	first, err := importer.ImportDirectory(context.Background(), dir)
	if err != nil {
		t.Fatalf("first import: %v", err)
	}
	firstID := store.All()[0].ID

	second, err := importer.ImportDirectory(context.Background(), dir)
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if first.Indexed != second.Indexed || store.Len() != 1 {
		t.Fatalf("expected idempotent reimport, got %+v then %+v", first, second)
	}
	if store.All()[0].ID != firstID {
		t.Fatal("expected stable identity across reimports")
	}
}

func TestImportCollectsPerFileErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.md", `---
title: Fine
---
Body.
`)
	writeFile(t, dir, "bad.md", `---
type: blog
---
No title.
`)

	store := resources.NewStore()
	importer := resources.NewImporter(store)

	result, err := importer.ImportDirectory(context.Background(), dir)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.Indexed != 1 || len(result.Errors) != 1 {
		t.Fatalf("expected one entry and one error, got %+v", result)
	}
}

func TestImportRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.md", "---\ntitle: Top\n---\nBody.\n")
	writeFile(t, dir, filepath.Join("nested", "deep.md"), "---\ntitle: Deep\n---\nBody.\n")

	store := resources.NewStore()
	flat := resources.NewImporter(store)
	if _, err := flat.ImportDirectory(context.Background(), dir); err != nil {
		t.Fatalf("flat import: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("expected nested files skipped, got %d", store.Len())
	}

	deep := resources.NewImporter(store, resources.WithRecursive(true))
	if _, err := deep.ImportDirectory(context.Background(), dir); err != nil {
		t.Fatalf("recursive import: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("expected nested files indexed, got %d", store.Len())
	}
	entries := store.All()
	found := false
	for _, entry := range entries {
		if entry.Slug == "nested/deep" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected path-derived slug, got %v", entries)
	}
}
