package session

import (
	"context"
	"errors"
	"testing"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"
)

func TestSelectDeveloper_ResetsCriteria(t *testing.T) {
	s := NewBrowseSession()

	c := models.DefaultCriteria()
	c.Zones = []string{"Norte"}
	c.PriceMax = 300000
	c.Search = "penthouse"
	s.SetCriteria(c)

	s.SelectDeveloper("dev-1")

	if s.DeveloperID != "dev-1" {
		t.Fatalf("developer not set: %q", s.DeveloperID)
	}
	defaults := models.DefaultCriteria()
	if len(s.Criteria.Zones) != 0 || s.Criteria.PriceMax != defaults.PriceMax {
		t.Fatalf("criteria were not reset: %+v", s.Criteria)
	}
	if s.Criteria.Search != "" {
		t.Fatalf("search text survived a developer switch: %q", s.Criteria.Search)
	}
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	s := NewBrowseSession()
	s.SelectDeveloper("dev-2")
	if err := store.Put(ctx, s); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.DeveloperID != "dev-2" {
		t.Fatalf("expected dev-2, got %q", got.DeveloperID)
	}

	if err := store.Delete(ctx, s.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, s.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
