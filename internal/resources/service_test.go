package resources_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/looprevenue/loop-cms/internal/resources"
)

func seededStore() *resources.Store {
	store := resources.NewStore()
	store.Replace([]resources.Summary{
		{
			ID:          uuid.New(),
			Type:        resources.TypeBlog,
			Slug:        "closing-the-loop",
			Title:       "Closing the Loop",
			Category:    "methodology",
			Summary:     "How the four stages feed each other",
			PublishedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          uuid.New(),
			Type:        resources.TypePodcast,
			Slug:        "stage-two-deep-dive",
			Title:       "Stage Two Deep Dive",
			Category:    "podcast",
			PublishedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          uuid.New(),
			Type:        resources.TypePage,
			Slug:        "workshop-templates",
			Title:       "Workshop Templates",
			Category:    "templates",
			PublishedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	})
	return store
}

func TestListOrdersNewestFirst(t *testing.T) {
	svc := resources.NewService(seededStore())
	out := svc.List(context.Background(), resources.Query{})
	if len(out) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(out))
	}
	if out[0].Slug != "stage-two-deep-dive" || out[2].Slug != "workshop-templates" {
		t.Fatalf("unexpected order: %s, %s, %s", out[0].Slug, out[1].Slug, out[2].Slug)
	}
}

func TestListFilters(t *testing.T) {
	svc := resources.NewService(seededStore())

	byType := svc.List(context.Background(), resources.Query{Type: resources.TypeBlog})
	if len(byType) != 1 || byType[0].Slug != "closing-the-loop" {
		t.Fatalf("type filter: %v", byType)
	}

	byCategory := svc.List(context.Background(), resources.Query{Category: "Templates"})
	if len(byCategory) != 1 || byCategory[0].Slug != "workshop-templates" {
		t.Fatalf("category filter: %v", byCategory)
	}

	bySearch := svc.List(context.Background(), resources.Query{Search: "four stages"})
	if len(bySearch) != 1 || bySearch[0].Slug != "closing-the-loop" {
		t.Fatalf("search filter: %v", bySearch)
	}
}

func TestListAppliesLimit(t *testing.T) {
	svc := resources.NewService(seededStore(), resources.WithLimits(20, 2))
	out := svc.List(context.Background(), resources.Query{Limit: 99})
	if len(out) != 2 {
		t.Fatalf("expected max limit applied, got %d", len(out))
	}

	out = svc.List(context.Background(), resources.Query{Limit: 1})
	if len(out) != 1 {
		t.Fatalf("expected explicit limit applied, got %d", len(out))
	}
}

func TestListDegradesToEmpty(t *testing.T) {
	svc := resources.NewService(nil)
	out := svc.List(context.Background(), resources.Query{})
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil result, got %v", out)
	}

	svc = resources.NewService(seededStore())
	out = svc.List(context.Background(), resources.Query{Type: "video"})
	if out == nil || len(out) != 0 {
		t.Fatalf("expected unknown type to degrade to empty result, got %v", out)
	}
}
