package handlers

import (
	"net/http"
	"testing"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/session"
)

func createSession(t *testing.T, env *testEnv, sc *SessionController) session.BrowseSession {
	t.Helper()
	c, rec := env.jsonRequest(http.MethodPost, "/api/session", "")
	if err := sc.CreateSession(c); err != nil {
		t.Fatalf("create session: %v", err)
	}
	expectStatus(t, rec, http.StatusCreated)
	var s session.BrowseSession
	decodeBody(t, rec, &s)
	return s
}

func TestSessionFlow_CriteriaAndResults(t *testing.T) {
	env := newTestEnv(t)
	sc := NewSessionController(env.sessions, env.store)

	s := createSession(t, env, sc)

	// Default session browses the grouped catalog.
	c, rec := env.jsonRequest(http.MethodGet, "/api/session/"+s.ID+"/results", "")
	c.SetParamNames("id")
	c.SetParamValues(s.ID)
	if err := sc.Results(c); err != nil {
		t.Fatalf("results: %v", err)
	}
	var body browseBody
	decodeBody(t, rec, &body)
	if body.Mode != "grouped" {
		t.Fatalf("expected grouped results for a fresh session, got %q", body.Mode)
	}

	// Updating criteria flips the view to a flat filtered list.
	criteria := `{"zones":["Norte"],"types":[],"bedrooms":[],"statuses":[],"priceMin":0,"priceMax":2000000,"areaMin":0,"areaMax":1000,"search":""}`
	c, rec = env.jsonRequest(http.MethodPut, "/api/session/"+s.ID+"/criteria", criteria)
	c.SetParamNames("id")
	c.SetParamValues(s.ID)
	if err := sc.UpdateCriteria(c); err != nil {
		t.Fatalf("update criteria: %v", err)
	}
	expectStatus(t, rec, http.StatusOK)

	c, rec = env.jsonRequest(http.MethodGet, "/api/session/"+s.ID+"/results", "")
	c.SetParamNames("id")
	c.SetParamValues(s.ID)
	if err := sc.Results(c); err != nil {
		t.Fatalf("results: %v", err)
	}
	decodeBody(t, rec, &body)
	if body.Mode != "flat" {
		t.Fatalf("expected flat results with zone filter, got %q", body.Mode)
	}
	for _, p := range body.Properties {
		if p.Zone != "Norte" {
			t.Fatalf("property %s leaked through the Norte filter", p.ID)
		}
	}
}

func TestSessionFlow_DeveloperSwitchResetsCriteria(t *testing.T) {
	env := newTestEnv(t)
	sc := NewSessionController(env.sessions, env.store)

	s := createSession(t, env, sc)

	criteria := `{"zones":["Centro"],"types":[],"bedrooms":[2],"statuses":[],"priceMin":0,"priceMax":500000,"areaMin":0,"areaMax":1000,"search":"plaza"}`
	c, _ := env.jsonRequest(http.MethodPut, "/api/session/"+s.ID+"/criteria", criteria)
	c.SetParamNames("id")
	c.SetParamValues(s.ID)
	if err := sc.UpdateCriteria(c); err != nil {
		t.Fatalf("update criteria: %v", err)
	}

	c, rec := env.jsonRequest(http.MethodPut, "/api/session/"+s.ID+"/developer", `{"developerId":"dev-1"}`)
	c.SetParamNames("id")
	c.SetParamValues(s.ID)
	if err := sc.SelectDeveloper(c); err != nil {
		t.Fatalf("select developer: %v", err)
	}
	expectStatus(t, rec, http.StatusOK)

	var switched session.BrowseSession
	decodeBody(t, rec, &switched)
	if switched.DeveloperID != "dev-1" {
		t.Fatalf("developer not switched: %q", switched.DeveloperID)
	}
	if len(switched.Criteria.Zones) != 0 || len(switched.Criteria.Bedrooms) != 0 || switched.Criteria.Search != "" {
		t.Fatalf("criteria must reset on developer switch, got %+v", switched.Criteria)
	}

	// Results are now the developer's grouped catalog.
	c, rec = env.jsonRequest(http.MethodGet, "/api/session/"+s.ID+"/results", "")
	c.SetParamNames("id")
	c.SetParamValues(s.ID)
	if err := sc.Results(c); err != nil {
		t.Fatalf("results: %v", err)
	}
	var body browseBody
	decodeBody(t, rec, &body)
	if body.Mode != "grouped" {
		t.Fatalf("expected grouped results after reset, got %q", body.Mode)
	}
	for _, g := range body.Groups {
		if g.Project.DeveloperID != "dev-1" {
			t.Fatalf("project %s is outside the dev-1 scope", g.Project.ID)
		}
	}
}

func TestSession_NotFound(t *testing.T) {
	env := newTestEnv(t)
	sc := NewSessionController(env.sessions, env.store)

	c, rec := env.jsonRequest(http.MethodGet, "/api/session/nope/results", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")
	if err := sc.Results(c); err != nil {
		t.Fatalf("results: %v", err)
	}
	expectStatus(t, rec, http.StatusNotFound)
}
