package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"
)

func TestNewSeededStore_ResolvesJoins(t *testing.T) {
	store := NewSeededStore()

	projects, err := store.GetAllProjects(context.Background())
	if err != nil {
		t.Fatalf("get projects: %v", err)
	}
	if len(projects) == 0 {
		t.Fatal("seeded store has no projects")
	}

	developers, _ := store.GetAllDevelopers(context.Background())
	ids := make(map[string]bool)
	for _, d := range developers {
		ids[d.ID] = true
	}
	for _, project := range projects {
		if project.DeveloperID == "" {
			t.Errorf("project %s has no developer id after load", project.ID)
		} else if !ids[project.DeveloperID] {
			t.Errorf("project %s references unknown developer %s", project.ID, project.DeveloperID)
		}
	}
}

func TestNewMemoryStore_FillsIDFromLegacyName(t *testing.T) {
	developers := []models.Developer{{ID: "dev-1", Name: "Constructora Premium"}}
	projects := []models.Project{{ID: "p1", Name: "Viejo", Developer: "Constructora Premium"}}

	store, err := NewMemoryStore(nil, projects, developers)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	got, err := store.GetProject(context.Background(), "p1")
	if err != nil {
		t.Fatalf("get project: %v", err)
	}
	if got.DeveloperID != "dev-1" {
		t.Fatalf("expected legacy name join to resolve dev-1, got %q", got.DeveloperID)
	}
}

func TestNewMemoryStore_RejectsDanglingDeveloperID(t *testing.T) {
	projects := []models.Project{{ID: "p1", Name: "Roto", DeveloperID: "dev-nope"}}
	if _, err := NewMemoryStore(nil, projects, nil); !errors.Is(err, ErrUnknownDeveloper) {
		t.Fatalf("expected ErrUnknownDeveloper, got %v", err)
	}
}

func TestMemoryStore_ReadsReturnCopies(t *testing.T) {
	store := NewSeededStore()

	first, _ := store.GetAllProperties(context.Background())
	first[0].Title = "mutated"

	second, _ := store.GetAllProperties(context.Background())
	if second[0].Title == "mutated" {
		t.Fatal("store handed out its internal slice")
	}
}

func TestMemoryStore_AddProperty(t *testing.T) {
	store := NewSeededStore()
	ctx := context.Background()

	valid := models.Property{
		ID: "prop-new", ProjectID: "proj-1", Title: "Nueva unidad",
		Price: 150000, Zone: "Norte", Type: models.PropertyTypeApartment,
		Bedrooms: 2, Bathrooms: 1, Area: 70,
		Status: models.PropertyStatusAvailable,
	}
	if err := store.AddProperty(ctx, valid); err != nil {
		t.Fatalf("add valid property: %v", err)
	}
	if err := store.AddProperty(ctx, valid); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}

	orphan := valid
	orphan.ID = "prop-orphan"
	orphan.ProjectID = "proj-nope"
	if err := store.AddProperty(ctx, orphan); !errors.Is(err, ErrUnknownProject) {
		t.Fatalf("expected ErrUnknownProject, got %v", err)
	}

	bad := valid
	bad.ID = "prop-bad"
	bad.Price = 0
	if err := store.AddProperty(ctx, bad); err == nil {
		t.Fatal("expected validation error for non-positive price")
	}

	bad = valid
	bad.ID = "prop-bad-status"
	bad.Status = "alquilado"
	if err := store.AddProperty(ctx, bad); err == nil {
		t.Fatal("expected validation error for unknown status")
	}
}

func TestMemoryStore_AddProject(t *testing.T) {
	store := NewSeededStore()
	ctx := context.Background()

	valid := models.Project{
		ID: "proj-new", Name: "Nuevo Horizonte", Zone: "Oeste",
		Status: models.ProjectStatusPreSale, DeveloperID: "dev-2",
		TotalUnits: 20, AvailableUnits: 20,
		Area: []models.LatLng{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}, {Lat: 3, Lng: 1}},
	}
	if err := store.AddProject(ctx, valid); err != nil {
		t.Fatalf("add valid project: %v", err)
	}

	bad := valid
	bad.ID = "proj-bad-units"
	bad.AvailableUnits = 25
	if err := store.AddProject(ctx, bad); err == nil {
		t.Fatal("expected validation error for availableUnits > totalUnits")
	}

	bad = valid
	bad.ID = "proj-bad-area"
	bad.Area = []models.LatLng{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}}
	if err := store.AddProject(ctx, bad); err == nil {
		t.Fatal("expected validation error for two-point polygon")
	}

	bad = valid
	bad.ID = "proj-bad-dev"
	bad.DeveloperID = "dev-nope"
	if err := store.AddProject(ctx, bad); !errors.Is(err, ErrUnknownDeveloper) {
		t.Fatalf("expected ErrUnknownDeveloper, got %v", err)
	}
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewSeededStore()
	ctx := context.Background()

	if _, err := store.GetProperty(ctx, "prop-nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.GetProject(ctx, "proj-nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.GetDeveloper(ctx, "dev-nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
