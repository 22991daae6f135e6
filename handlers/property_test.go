package handlers

import (
	"net/http"
	"testing"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"
)

func TestListProperties_QueryCriteria(t *testing.T) {
	env := newTestEnv(t)
	pc := NewPropertyController(env.store, nil)

	tests := []struct {
		name   string
		target string
		check  func(t *testing.T, body propertyListResponse)
	}{
		{
			name:   "price range excludes below minimum",
			target: "/api/properties?price_min=200000&price_max=500000",
			check: func(t *testing.T, body propertyListResponse) {
				for _, p := range body.Properties {
					if p.Price < 200000 || p.Price > 500000 {
						t.Fatalf("property %s price %.0f outside requested range", p.ID, p.Price)
					}
					if p.ID == "prop-001" {
						t.Fatal("prop-001 (185000) must be excluded by price_min=200000")
					}
				}
			},
		},
		{
			name:   "zone and bedrooms combined",
			target: "/api/properties?zones=Norte&bedrooms=2",
			check: func(t *testing.T, body propertyListResponse) {
				if body.Total != 1 || body.Properties[0].ID != "prop-001" {
					t.Fatalf("expected exactly prop-001, got %+v", body.Properties)
				}
			},
		},
		{
			name:   "search matches accented description",
			target: "/api/properties?search=panor%C3%A1mica",
			check: func(t *testing.T, body propertyListResponse) {
				if body.Total != 1 || body.Properties[0].ID != "prop-001" {
					t.Fatalf("expected prop-001 for search, got %+v", body.Properties)
				}
			},
		},
		{
			name:   "limit paginates but total stays full",
			target: "/api/properties?limit=3&page=1",
			check: func(t *testing.T, body propertyListResponse) {
				if len(body.Properties) != 3 {
					t.Fatalf("expected 3 properties on the page, got %d", len(body.Properties))
				}
				if body.Total <= 3 {
					t.Fatalf("total must count the whole filtered set, got %d", body.Total)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := env.jsonRequest(http.MethodGet, tt.target, "")
			if err := pc.ListProperties(c); err != nil {
				t.Fatalf("list: %v", err)
			}
			expectStatus(t, rec, http.StatusOK)
			var body propertyListResponse
			decodeBody(t, rec, &body)
			tt.check(t, body)
		})
	}
}

func TestGetProperty(t *testing.T) {
	env := newTestEnv(t)
	pc := NewPropertyController(env.store, nil)

	c, rec := env.jsonRequest(http.MethodGet, "/api/properties/prop-001", "")
	c.SetParamNames("id")
	c.SetParamValues("prop-001")
	if err := pc.GetProperty(c); err != nil {
		t.Fatalf("get: %v", err)
	}
	expectStatus(t, rec, http.StatusOK)

	var property models.Property
	decodeBody(t, rec, &property)
	if property.ID != "prop-001" || property.Price != 185000 {
		t.Fatalf("unexpected property: %+v", property)
	}
}

func TestGetProperty_NotFound(t *testing.T) {
	env := newTestEnv(t)
	pc := NewPropertyController(env.store, nil)

	c, rec := env.jsonRequest(http.MethodGet, "/api/properties/prop-nope", "")
	c.SetParamNames("id")
	c.SetParamValues("prop-nope")
	if err := pc.GetProperty(c); err != nil {
		t.Fatalf("get: %v", err)
	}
	expectStatus(t, rec, http.StatusNotFound)
}
