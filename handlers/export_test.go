package handlers

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"
)

func TestExportProperties_FilteredCSV(t *testing.T) {
	env := newTestEnv(t)
	ec := NewExportController(env.store)

	c, rec := env.jsonRequest(http.MethodGet, "/api/export?zones=Norte", "")
	if err := ec.ExportProperties(c); err != nil {
		t.Fatalf("export: %v", err)
	}
	expectStatus(t, rec, http.StatusOK)

	if disposition := rec.Header().Get("Content-Disposition"); !strings.Contains(disposition, "attachment") {
		t.Fatalf("expected attachment disposition, got %q", disposition)
	}

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	if len(records) < 2 {
		t.Fatalf("expected header plus data rows, got %d rows", len(records))
	}
	if records[0][0] != "id" || records[0][4] != "zone" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	for _, row := range records[1:] {
		if row[4] != "Norte" {
			t.Fatalf("row leaked through the zone filter: %v", row)
		}
	}
}
