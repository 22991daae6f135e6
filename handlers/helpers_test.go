package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/accounts"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/catalog"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/session"
)

type testEnv struct {
	echo     *echo.Echo
	store    *catalog.MemoryStore
	users    *accounts.MemoryStore
	sessions *session.MemoryStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{
		echo:     echo.New(),
		store:    catalog.NewSeededStore(),
		users:    accounts.NewMemoryStore(),
		sessions: session.NewMemoryStore(),
	}
}

// jsonRequest builds an echo context for a handler under test and returns
// the recorder capturing its response.
func (env *testEnv) jsonRequest(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return env.echo.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dest); err != nil {
		t.Fatalf("failed to decode response: %v\nRaw: %s", err, rec.Body.String())
	}
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}
